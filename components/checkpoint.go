package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	X, Y      float64
	Activated bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
