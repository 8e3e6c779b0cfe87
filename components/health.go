package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
	// Invincible is the remaining invulnerability window in seconds.
	Invincible float64
}

var Health = donburi.NewComponentType[HealthData]()

func (h *HealthData) IsInvincible() bool { return h.Invincible > 0 }

// Remove subtracts amount, clamping at zero, and returns the new value.
func (h *HealthData) Remove(amount int) int {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Percent is the share of Max left, from 0 to 100.
func (h *HealthData) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max) * 100
}

// LifeState is the active/dying/dead tri-state of a combatant.
type LifeState int

const (
	LifeActive LifeState = iota
	LifeDying
	LifeDead
)

// LifeData tracks the death sequence. RemoveIn counts down while dying;
// the entity is dead and removed once it reaches zero.
type LifeData struct {
	State    LifeState
	RemoveIn float64
}

var Life = donburi.NewComponentType[LifeData]()

func (l *LifeData) Active() bool { return l.State == LifeActive }
