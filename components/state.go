package components

import (
	"github.com/automoto/ghouls-n-orcs/fsm"
	"github.com/yohamta/donburi"
)

// BrainData owns the entity's state machine.
type BrainData struct {
	*fsm.Machine
}

var Brain = donburi.NewComponentType[BrainData]()
