package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/player"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBrains ticks the player's state machine, then every enemy's.
func UpdateBrains(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedStep

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		hp.Invincible = max(hp.Invincible-dt, 0)
		player.Update(ecs, e, dt)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		components.Brain.Get(e).Update(dt)
	})
}
