package systems

import (
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints activates any checkpoint the player is standing at.
func UpdateCheckpoints(ecs *ecs.ECS) {
	pe, ok := entity.Player(ecs.World)
	if !ok {
		return
	}
	tags.Checkpoint.Each(ecs.World, func(cp *donburi.Entry) {
		entity.TryActivateCheckpoint(ecs.World, cp, pe)
	})
}
