package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths runs the player's game-over countdown and removes enemies
// whose death sequence has finished.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedStep
	out := components.GetIntents(ecs.World)

	if pe, ok := entity.Player(ecs.World); ok {
		if entity.TickPlayerDeath(ecs.World, pe, dt) && confirmed(out.Input) {
			request(ecs.World, components.TransitionRetry)
		}
	}

	var finished []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		life := components.Life.Get(e)
		if life.State != components.LifeDying {
			return
		}
		life.RemoveIn -= dt
		if life.RemoveIn <= 0 {
			life.State = components.LifeDead
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		boss := e.HasComponent(components.Boss)
		out.Renderer.Detach(e.Entity())
		ecs.World.Remove(e.Entity())
		if boss && entity.BossRemoved(ecs.World) {
			announceVictory(ecs.World)
		}
	}
}

// confirmed reports whether any of the accept actions was just pressed.
func confirmed(in intents.Input) bool {
	return in.IsJustPressed(cfg.ActionRestart) ||
		in.IsJustPressed(cfg.ActionJump) ||
		in.IsJustPressed(cfg.ActionAttackPrimary)
}

// request records a level transition for the session to carry out after
// the current step. The first request in a step wins.
func request(w donburi.World, t components.Transition) {
	g, ok := components.Game.First(w)
	if !ok {
		return
	}
	game := components.Game.Get(g)
	if game.Pending == components.TransitionNone {
		game.Pending = t
	}
}
