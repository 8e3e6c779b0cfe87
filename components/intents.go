package components

import (
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/yohamta/donburi"
)

// IntentsData is the singleton holding the collaborator surfaces.
type IntentsData struct {
	intents.Surfaces
}

var Intents = donburi.NewComponentType[IntentsData]()

// GetIntents returns the world's surfaces, or Nop surfaces if none are set.
func GetIntents(w donburi.World) intents.Surfaces {
	e, ok := Intents.First(w)
	if !ok {
		return intents.Surfaces{}.WithDefaults()
	}
	return Intents.Get(e).Surfaces
}
