package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Weapon        int     // index into the inventory
	ThrowCooldown float64 // seconds until the equipped weapon may fire again

	// Death sequence
	DeathTimer    float64
	GameOverShown bool
	CanRestart    bool

	// Respawn point saved by the last checkpoint
	RespawnX, RespawnY float64
	HasCheckpoint      bool

	// Arena lock applied by a boss
	Locked           bool
	LockMin, LockMax float64
}

var Player = donburi.NewComponentType[PlayerData]()
