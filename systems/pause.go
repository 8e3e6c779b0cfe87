package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action. It only acts while the
// session is playing or already paused.
// This system should run BEFORE every system wrapped in WithGameplayChecks.
func UpdatePause(ecs *ecs.ECS) {
	g, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	game := components.Game.Get(g)
	out := components.GetIntents(ecs.World)

	if !out.Input.IsJustPressed(cfg.ActionPause) {
		return
	}
	switch game.Status {
	case components.StatusPlaying:
		game.Status = components.StatusPaused
		out.HUD.ShowPanel(intents.PanelPause, "PAUSED")
		logger.Debug("paused")
	case components.StatusPaused:
		game.Status = components.StatusPlaying
		out.HUD.HidePanel()
		logger.Debug("resumed")
	}
}

// IsPaused reports whether the session is paused.
func IsPaused(ecs *ecs.ECS) bool {
	g, ok := components.Game.First(ecs.World)
	return ok && components.Game.Get(g).Status == components.StatusPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
