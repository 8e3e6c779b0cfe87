package components

import (
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/yohamta/donburi"
)

// LevelData holds the director of the loaded level.
type LevelData struct {
	*level.Director
}

var Level = donburi.NewComponentType[LevelData]()

// SpaceData exposes the collision index of the loaded level. It is swapped
// whenever the director loads a level.
type SpaceData struct {
	*geometry.Index
}

var Space = donburi.NewComponentType[SpaceData]()
