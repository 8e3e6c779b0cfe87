package factory

import (
	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera already centred on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	pos := math.Vec2{X: x, Y: y}
	components.Camera.SetValue(camera, components.CameraData{Position: pos, Target: pos})
	return camera
}
