package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner creates the enemies of every spawner the player has just
// come within range of.
func UpdateSpawner(ecs *ecs.ECS) {
	d := entity.Director(ecs.World)
	pe, ok := entity.Player(ecs.World)
	if d == nil || !ok {
		return
	}

	px := components.Body.Get(pe).X
	for _, s := range d.DueSpawns(px) {
		factory.CreateEnemy(ecs, s.X, d.SpawnHeight(s.X), s.Type)
	}
}
