package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss keeps bosses in their arenas and shuts the player in once
// they walk far enough into one.
func UpdateBoss(ecs *ecs.ECS) {
	pe, hasPlayer := entity.Player(ecs.World)

	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		entity.ClampToArena(e)
		if hasPlayer && entity.Alive(pe) {
			entity.LockPlayer(ecs.World, e, pe)
		}
	})

	if hasPlayer {
		entity.ClampLockedPlayer(pe)
	}
}
