package ai

import (
	"math"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/fsm"
)

const (
	hoverHeight     = 4.0 // above the player
	hoverSpringX    = 1.5
	hoverSpringY    = 1.0
	hoverBobRate    = 2.0
	hoverBob        = 0.5
	swoopChance     = 0.02 // per fixed step
	swoopMaxDX      = 3.0
	swoopSpeedScale = 3.0
	swoopClimb      = 3.0
)

func addGargoyleStates(m *fsm.Machine, a *actor) {
	m.AddState(cfg.StateIdle, &gargoyleIdle{actor: a})
	m.AddState(cfg.StateHover, &gargoyleHover{actor: a})
	m.AddState(cfg.StateSwoop, &gargoyleSwoop{actor: a})
}

// gargoyleIdle sits as a statue until the player comes near.
type gargoyleIdle struct {
	fsm.Base
	*actor
}

func (s *gargoyleIdle) Enter(fsm.Params) {
	b := s.body()
	b.VX, b.VY = 0, 0
}

func (s *gargoyleIdle) Update(float64) {
	t, _, ok := s.target()
	if !ok {
		return
	}
	b := s.body()
	if math.Hypot(t.X-b.X, t.Y-b.Y) < s.kind().DetectionRange {
		s.flash(cfg.FlashRed, 0.3)
		s.change(cfg.StateHover)
	}
}

// gargoyleHover floats above the player on a soft spring with a slow bob,
// and now and then dives.
type gargoyleHover struct {
	fsm.Base
	*actor
	bob float64
}

func (s *gargoyleHover) Enter(fsm.Params) {
	s.bob = 0
	s.animate("fly", true)
}

func (s *gargoyleHover) Update(dt float64) {
	t, _, ok := s.target()
	if !ok {
		s.change(cfg.StateIdle)
		return
	}
	b := s.body()
	tc := s.kind()

	dx := t.X - b.X
	dy := t.Y + hoverHeight - b.Y
	vx, vy := clampLength(dx*hoverSpringX, dy*hoverSpringY, tc.Speed)

	s.bob += dt * hoverBobRate
	b.VX = vx
	b.VY = vy + math.Sin(s.bob)*hoverBob
	b.Face(b.VX)

	dist := math.Hypot(t.X-b.X, t.Y-b.Y)
	if math.Abs(dx) < swoopMaxDX && dist < tc.AttackRange*2 && s.roll.Float64() < swoopChance {
		s.change(cfg.StateSwoop)
	}
}

// gargoyleSwoop dives straight at where the player was when it started.
type gargoyleSwoop struct {
	fsm.Base
	*actor
}

func (s *gargoyleSwoop) Enter(fsm.Params) {
	b := s.body()
	speed := s.kind().Speed * swoopSpeedScale
	if t, _, ok := s.target(); ok {
		b.VX, b.VY = normalize(t.X-b.X, t.Y-b.Y, speed)
		b.Face(b.VX)
	}
	s.animate("attack", false)
	s.play(cfg.SoundPunch)
}

func (s *gargoyleSwoop) Update(float64) {
	if s.machine().TimeInState() > s.kind().AttackDuration {
		s.body().VY = swoopClimb
		s.change(cfg.StateHover)
	}
}

// clampLength scales (x, y) down so its length is at most limit.
func clampLength(x, y, limit float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= limit || l == 0 {
		return x, y
	}
	return x / l * limit, y / l * limit
}

// normalize returns (x, y) scaled to length. A zero vector stays zero.
func normalize(x, y, length float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l * length, y / l * length
}
