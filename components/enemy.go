package components

import (
	"github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "orcGrunt", "gargoyle" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	SpawnX     float64

	// ShieldRaised is shown while an orc guards; damage blocking reads it.
	ShieldRaised bool
	// Aggro is set once a boss has been hit.
	Aggro bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

// BossData is the arena an Orc Warlord fights in.
type BossData struct {
	MinX, MaxX   float64
	PlayerLocked bool
}

var Boss = donburi.NewComponentType[BossData]()

// Contains reports whether x is inside the arena.
func (b *BossData) Contains(x float64) bool {
	return x >= b.MinX && x <= b.MaxX
}
