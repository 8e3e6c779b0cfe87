package systems

import (
	"math"

	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player and decays any shake.
// It runs once per rendered frame, not per fixed step.
func UpdateCamera(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(camera, dt)

	playerEntry, ok := entity.Player(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)

	// Lead ahead of the player's facing and never look below the floor.
	target := dmath.Vec2{
		X: body.X + cfg.Camera.LeadOffset*body.Facing,
		Y: math.Max(body.Y+cfg.Camera.Height, cfg.Camera.FloorY),
	}

	if camera.TweenX == nil || target != camera.Target {
		camera.Target = target
		d := float32(cfg.Camera.FollowTime)
		camera.TweenX = gween.New(float32(camera.Position.X), float32(target.X), d, ease.OutQuad)
		camera.TweenY = gween.New(float32(camera.Position.Y), float32(target.Y), d, ease.OutQuad)
	}

	x, _ := camera.TweenX.Update(float32(dt))
	y, _ := camera.TweenY.Update(float32(dt))
	camera.Position.X, camera.Position.Y = float64(x), float64(y)
}

// updateScreenShake recomputes the shake offset and counts its time down.
func updateScreenShake(camera *components.CameraData, dt float64) {
	if camera.ShakeDuration <= 0 {
		camera.ShakeOffset = dmath.Vec2{}
		return
	}

	camera.ShakeElapsed += dt
	progress := (camera.ShakeDuration - camera.ShakeElapsed) / camera.ShakeDuration
	if progress <= 0 {
		camera.ShakeIntensity, camera.ShakeDuration, camera.ShakeElapsed = 0, 0, 0
		camera.ShakeOffset = dmath.Vec2{}
		return
	}

	// Oscillate on two frequencies so the shake does not look periodic.
	intensity := camera.ShakeIntensity * progress
	t := camera.ShakeElapsed * 60
	camera.ShakeOffset = dmath.Vec2{
		X: math.Sin(t*1.1) * intensity,
		Y: math.Cos(t*1.3) * intensity,
	}
}

// TriggerScreenShake starts a shake. A weaker shake never cuts a stronger
// one short.
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.ShakeDuration > 0 && intensity < camera.ShakeIntensity {
		return
	}
	camera.ShakeIntensity = intensity
	camera.ShakeDuration = duration
	camera.ShakeElapsed = 0
}
