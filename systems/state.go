// Package systems holds the per-step update functions of the simulation.
// Each one runs over the whole world and is registered in a fixed order by
// the game session.
package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/logging"
	"github.com/yohamta/donburi/ecs"
)

var logger = logging.New("systems")

// UpdateClock advances the session clock by one fixed step.
func UpdateClock(ecs *ecs.ECS) {
	if g, ok := components.Game.First(ecs.World); ok {
		components.Game.Get(g).Time += cfg.Physics.FixedStep
	}
}
