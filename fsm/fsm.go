// Package fsm is the small state machine every player and enemy brain runs on.
//
// A Machine owns named states and keeps exactly one of them current. The
// clock inside a Machine advances only through Update, so entry timestamps
// are simulation seconds and replays are deterministic.
package fsm

import (
	"github.com/automoto/ghouls-n-orcs/logging"
)

var logger = logging.New("fsm")

// Params carries the optional arguments a transition hands to Enter.
type Params struct {
	Dir      float64
	Duration float64
}

// State is one node of a behaviour graph.
type State interface {
	Enter(p Params)
	Update(dt float64)
	Exit()
}

// Base gives states no-op hooks to embed.
type Base struct{}

func (Base) Enter(Params)   {}
func (Base) Update(float64) {}
func (Base) Exit()          {}

type Machine struct {
	owner    string
	states   map[string]State
	current  string
	previous string
	enter    float64
	clock    float64
}

// New returns an empty machine. owner is used only in log lines.
func New(owner string) *Machine {
	return &Machine{
		owner:  owner,
		states: make(map[string]State),
	}
}

// AddState registers s under name, replacing any earlier registration.
func (m *Machine) AddState(name string, s State) {
	m.states[name] = s
}

// Has reports whether a state called name is registered.
func (m *Machine) Has(name string) bool {
	_, ok := m.states[name]
	return ok
}

// ChangeState moves the machine into name. It does nothing when name is
// already current or not registered; only the latter is logged. The old
// state's Exit always runs before the new state's Enter.
func (m *Machine) ChangeState(name string, p ...Params) bool {
	if name == m.current && m.current != "" {
		return false
	}

	next, ok := m.states[name]
	if !ok {
		logger.Warn("unknown state", "owner", m.owner, "state", name, "current", m.current)
		return false
	}

	if cur, ok := m.states[m.current]; ok {
		cur.Exit()
	}

	m.previous = m.current
	m.current = name
	m.enter = m.clock

	var params Params
	if len(p) > 0 {
		params = p[0]
	}
	next.Enter(params)
	return true
}

// Update advances the clock by dt and ticks the current state.
func (m *Machine) Update(dt float64) {
	m.clock += dt
	if s, ok := m.states[m.current]; ok {
		s.Update(dt)
	}
}

func (m *Machine) Current() string  { return m.current }
func (m *Machine) Previous() string { return m.previous }

// Is reports whether the current state is one of names.
func (m *Machine) Is(names ...string) bool {
	for _, n := range names {
		if m.current == n {
			return true
		}
	}
	return false
}

// EnteredAt is the machine clock value when the current state was entered.
func (m *Machine) EnteredAt() float64 { return m.enter }

// TimeInState is how long the current state has been active.
func (m *Machine) TimeInState() float64 { return m.clock - m.enter }

// Clock is the total simulated time this machine has been updated for.
func (m *Machine) Clock() float64 { return m.clock }
