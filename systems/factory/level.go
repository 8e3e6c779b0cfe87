package factory

import (
	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the singleton that holds the level director.
func CreateLevel(ecs *ecs.ECS, d *level.Director) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Director: d})
	return entry
}
