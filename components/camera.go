package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Target   math.Vec2
	TweenX   *gween.Tween
	TweenY   *gween.Tween

	// Shake
	ShakeIntensity float64
	ShakeDuration  float64
	ShakeElapsed   float64
	ShakeOffset    math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// View is the shaken camera position a renderer should use.
func (c *CameraData) View() math.Vec2 {
	return math.Vec2{X: c.Position.X + c.ShakeOffset.X, Y: c.Position.Y + c.ShakeOffset.Y}
}
