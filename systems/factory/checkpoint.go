package factory

import (
	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint places an inactive checkpoint at (x, y).
func CreateCheckpoint(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{X: x, Y: y})
	components.GetIntents(ecs.World).Renderer.Attach(checkpoint.Entity(), "checkpoint")
	return checkpoint
}
