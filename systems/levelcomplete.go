package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVictory checks the finish line of non-boss levels and, once a level
// is won, waits for the player to confirm advancing or restarting.
func UpdateVictory(ecs *ecs.ECS) {
	d := entity.Director(ecs.World)
	if d == nil {
		return
	}

	if pe, ok := entity.Player(ecs.World); ok && entity.Alive(pe) {
		if d.CheckPositionVictory(components.Body.Get(pe).X) {
			announceVictory(ecs.World)
		}
	}

	in := components.GetIntents(ecs.World).Input
	switch d.UpdateVictory(cfg.Physics.FixedStep, confirmed(in)) {
	case level.OutcomeAdvance:
		request(ecs.World, components.TransitionAdvance)
	case level.OutcomeRestart:
		request(ecs.World, components.TransitionRestart)
	}
}

// announceVictory flips the session to victory and raises the panel.
func announceVictory(w donburi.World) {
	text := "LEVEL COMPLETE"
	if d := entity.Director(w); d != nil && !d.HasSuccessor() {
		text = "VICTORY"
	}
	if g, ok := components.Game.First(w); ok {
		components.Game.Get(g).Status = components.StatusVictory
	}
	out := components.GetIntents(w)
	out.HUD.ShowPanel(intents.PanelVictory, text)
	out.Audio.Play(cfg.SoundVictory)
}
