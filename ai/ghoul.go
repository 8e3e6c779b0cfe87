package ai

import (
	"math"

	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/fsm"
)

const (
	ghoulIdleTime   = 1.0
	ghoulGiveUp     = 1.5 // detection range multiple at which pursuit ends
	strikeReachPlus = 0.5
	strikeMaxDY     = 2.0
)

func addGhoulStates(m *fsm.Machine, a *actor) {
	m.AddState(cfg.StateIdle, &ghoulIdle{actor: a})
	m.AddState(cfg.StatePatrol, &ghoulPatrol{actor: a})
	m.AddState(cfg.StatePursue, &ghoulPursue{actor: a})
	m.AddState(cfg.StateAttack, &meleeAttack{actor: a, reach: strikeReachPlus, maxDY: strikeMaxDY, next: cfg.StatePursue})
}

// sees reports whether the player is inside detection range and, when the
// type has a vertical gate, close enough in height.
func (a *actor) sees(target *components.BodyData) bool {
	b := a.body()
	tc := a.kind()
	if math.Abs(target.X-b.X) >= tc.DetectionRange {
		return false
	}
	return tc.MaxVertical <= 0 || math.Abs(target.Y-b.Y) < tc.MaxVertical
}

type ghoulIdle struct {
	fsm.Base
	*actor
}

func (s *ghoulIdle) Enter(fsm.Params) {
	s.body().VX = 0
	s.animate("idle", true)
}

func (s *ghoulIdle) Update(float64) {
	if t, _, ok := s.target(); ok && s.sees(t) {
		s.change(cfg.StatePursue)
		return
	}
	if s.machine().TimeInState() >= ghoulIdleTime {
		s.change(cfg.StatePatrol, fsm.Params{Dir: s.body().Facing})
	}
}

// ghoulPatrol walks back and forth, turning at ledges and walls.
type ghoulPatrol struct {
	fsm.Base
	*actor
	dir float64
}

func (s *ghoulPatrol) Enter(p fsm.Params) {
	s.dir = dirOr(p.Dir, s.body().Facing)
	s.body().Facing = s.dir
	s.animate("walk", true)
}

func (s *ghoulPatrol) Update(float64) {
	if t, _, ok := s.target(); ok && s.sees(t) {
		s.change(cfg.StatePursue)
		return
	}

	b := s.body()
	if s.ledgeAhead(s.dir) || b.WallHit {
		s.dir = -s.dir
		b.WallHit = false
	}
	b.Facing = s.dir
	b.VX = s.dir * s.kind().Speed * cfg.Enemy.PatrolSpeedScale
}

type ghoulPursue struct {
	fsm.Base
	*actor
}

func (s *ghoulPursue) Enter(fsm.Params) {
	s.animate("walk", true)
}

func (s *ghoulPursue) Update(float64) {
	t, _, ok := s.target()
	b := s.body()
	if !ok {
		s.change(cfg.StateIdle)
		return
	}
	tc := s.kind()
	dx := t.X - b.X
	dir := dirOr(dx, b.Facing)
	b.Face(dx)

	if math.Abs(dx) > tc.DetectionRange*ghoulGiveUp {
		s.change(cfg.StatePatrol, fsm.Params{Dir: dir})
		return
	}
	if s.ledgeAhead(dir) {
		s.change(cfg.StatePatrol, fsm.Params{Dir: -dir})
		return
	}
	if math.Abs(dx) < tc.AttackRange && (tc.MaxVertical <= 0 || math.Abs(t.Y-b.Y) < tc.MaxVertical) {
		s.change(cfg.StateAttack)
		return
	}
	b.VX = dir * tc.Speed
}

// meleeAttack is the telegraph, strike, recover cycle every walking enemy
// shares. The strike is checked once, on entering the active window.
type meleeAttack struct {
	fsm.Base
	*actor
	reach float64 // added to the type's attack range
	maxDY float64
	next  string

	phases combat.Phases
	struck bool
}

func (s *meleeAttack) Enter(fsm.Params) {
	s.body().VX = 0
	s.phases = combat.EnemyPhases(s.kind())
	s.struck = false
	s.animate("attack", false)
	s.flash(cfg.FlashOrange, s.phases.Anticipation)
}

func (s *meleeAttack) Update(float64) {
	b := s.body()
	if b.Grounded {
		b.VX = 0
	}

	switch s.phases.PhaseAt(s.machine().TimeInState()) {
	case combat.PhaseActive:
		if !s.struck {
			s.struck = true
			s.strike()
		}
	case combat.PhaseDone:
		s.change(s.next)
	}
}

func (s *meleeAttack) strike() {
	t, pe, ok := s.target()
	if !ok {
		return
	}
	tc := s.kind()
	if combat.StrikeReach(s.body(), t, tc.AttackRange+s.reach, s.maxDY) {
		entity.DamagePlayer(s.w, pe, tc.Damage)
	}
}
