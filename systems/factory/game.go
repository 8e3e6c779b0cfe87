package factory

import (
	"math/rand/v2"

	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the session singleton with an RNG seeded from seed.
func CreateGame(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	return game
}

// CreateIntents spawns the singleton holding the collaborator surfaces.
// Missing surfaces are filled with no-ops.
func CreateIntents(ecs *ecs.ECS, s intents.Surfaces) *donburi.Entry {
	entry := archetypes.Intents.Spawn(ecs)
	components.Intents.SetValue(entry, components.IntentsData{Surfaces: s.WithDefaults()})
	return entry
}
