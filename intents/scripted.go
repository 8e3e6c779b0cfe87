package intents

import "github.com/automoto/ghouls-n-orcs/config"

// Scripted is an Input driven by code. Press and Release edges stay visible
// until EndStep, so each one is seen by exactly one fixed step.
type Scripted struct {
	held     [config.ActionCount]bool
	pressed  [config.ActionCount]bool
	released [config.ActionCount]bool
	axis     float64
}

func NewScripted() *Scripted {
	return &Scripted{}
}

// Press starts holding a and raises its just-pressed edge.
func (s *Scripted) Press(a config.ActionID) {
	if !s.held[a] {
		s.pressed[a] = true
	}
	s.held[a] = true
}

// Release stops holding a and raises its just-released edge.
func (s *Scripted) Release(a config.ActionID) {
	if s.held[a] {
		s.released[a] = true
	}
	s.held[a] = false
}

// Tap presses and releases a within the same step.
func (s *Scripted) Tap(a config.ActionID) {
	s.Press(a)
	s.held[a] = false
	s.released[a] = true
}

func (s *Scripted) SetAxis(v float64) { s.axis = max(-1, min(1, v)) }

func (s *Scripted) IsHeld(a config.ActionID) bool         { return s.held[a] }
func (s *Scripted) IsJustPressed(a config.ActionID) bool  { return s.pressed[a] }
func (s *Scripted) IsJustReleased(a config.ActionID) bool { return s.released[a] }
func (s *Scripted) HorizontalAxis() float64               { return s.axis }

func (s *Scripted) EndStep() {
	s.pressed = [config.ActionCount]bool{}
	s.released = [config.ActionCount]bool{}
}
