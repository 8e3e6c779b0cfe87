package game

import (
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/systems"
	"github.com/yohamta/donburi/ecs"
)

// shakeRelay feeds shake intents into the camera before passing them on.
type shakeRelay struct {
	intents.Renderer
	ecs *ecs.ECS
}

func (r shakeRelay) Shake(intensity, dur float64) {
	systems.TriggerScreenShake(r.ecs, intensity, dur)
	r.Renderer.Shake(intensity, dur)
}
