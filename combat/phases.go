// Package combat resolves attacks: phase timing, melee hitboxes, thrown
// weapons and contact damage.
package combat

import (
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

// Phase is where an attack is in its anticipation, active, recovery cycle.
type Phase int

const (
	PhaseAnticipation Phase = iota
	PhaseActive
	PhaseRecovery
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseAnticipation:
		return "anticipation"
	case PhaseActive:
		return "active"
	case PhaseRecovery:
		return "recovery"
	default:
		return "done"
	}
}

// Phases holds the duration of each attack phase in seconds.
type Phases struct {
	Anticipation float64
	Active       float64
	Recovery     float64
}

func PhasesOf(c cfg.PhaseConfig) Phases {
	return Phases{Anticipation: c.Anticipation, Active: c.Active, Recovery: c.Recovery}
}

// EnemyPhases builds the telegraph, strike, recovery cycle of an enemy type.
func EnemyPhases(tc *cfg.EnemyTypeConfig) Phases {
	return Phases{Anticipation: tc.Telegraph, Active: tc.AttackDuration, Recovery: tc.Recovery}
}

func (p Phases) Total() float64 { return p.Anticipation + p.Active + p.Recovery }

// PhaseAt returns the phase an attack is in t seconds after it started.
func (p Phases) PhaseAt(t float64) Phase {
	switch {
	case t < p.Anticipation:
		return PhaseAnticipation
	case t < p.Anticipation+p.Active:
		return PhaseActive
	case t < p.Total():
		return PhaseRecovery
	default:
		return PhaseDone
	}
}

// AttackInstance is one swing. It remembers who it has hit so each target
// takes damage at most once per swing.
type AttackInstance struct {
	hit map[donburi.Entity]struct{}
}

func NewAttackInstance() *AttackInstance {
	return &AttackInstance{hit: make(map[donburi.Entity]struct{})}
}

// TryHit records id and reports whether this is the first hit on it.
func (a *AttackInstance) TryHit(id donburi.Entity) bool {
	if _, done := a.hit[id]; done {
		return false
	}
	a.hit[id] = struct{}{}
	return true
}

func (a *AttackInstance) Hits() int { return len(a.hit) }

// Reset starts a new swing.
func (a *AttackInstance) Reset() { clear(a.hit) }
