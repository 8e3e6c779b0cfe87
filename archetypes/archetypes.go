package archetypes

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Life,
		components.Brain,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Health,
		components.Life,
		components.Brain,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Intents = newArchetype(
		components.Intents,
	)
	Game = newArchetype(
		components.Game,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
