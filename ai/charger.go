package ai

import (
	"math"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/fsm"
)

// chargerTraits are the knobs that separate orcs, golelings and bosses. They
// all idle until the player is near, then advance and strike.
type chargerTraits struct {
	reachPlus   float64
	maxDY       float64
	afterPatrol string
	arena       bool
}

var (
	orcTraits = chargerTraits{
		reachPlus:   0.5,
		maxDY:       2,
		afterPatrol: cfg.StateApproach,
	}
	golelingTraits = chargerTraits{
		maxDY:       1.5,
		afterPatrol: cfg.StateIdle,
	}
	bossTraits = chargerTraits{
		reachPlus:   0.5,
		maxDY:       2,
		afterPatrol: cfg.StateApproach,
		arena:       true,
	}
)

// chargeGap is how far outside attack range, in multiples of it, an aggroed
// boss starts charging.
const chargeGap = 2

func addChargerStates(m *fsm.Machine, a *actor, tr chargerTraits) {
	m.AddState(cfg.StateIdle, &chargerIdle{actor: a, traits: tr})
	m.AddState(cfg.StateApproach, &chargerApproach{actor: a, traits: tr})
	m.AddState(cfg.StatePatrol, &chargerPatrol{actor: a, traits: tr})
	m.AddState(cfg.StateAttack, &meleeAttack{actor: a, reach: tr.reachPlus, maxDY: tr.maxDY, next: cfg.StateApproach})
}

type chargerIdle struct {
	fsm.Base
	*actor
	traits chargerTraits
}

func (s *chargerIdle) Enter(fsm.Params) {
	s.body().VX = 0
	s.animate("idle", true)
}

func (s *chargerIdle) Update(float64) {
	t, _, ok := s.target()
	if !ok {
		return
	}
	if s.traits.arena && s.enemy().Aggro {
		s.change(cfg.StateApproach)
		return
	}
	if math.Abs(t.X-s.body().X) < s.kind().DetectionRange {
		s.change(cfg.StateApproach)
	}
}

// chargerApproach closes in on the player. Shielded types hold the shield
// up for the whole approach.
type chargerApproach struct {
	fsm.Base
	*actor
	traits chargerTraits
}

func (s *chargerApproach) Enter(fsm.Params) {
	s.enemy().ShieldRaised = s.kind().HasShield
	s.animate("run", true)
}

func (s *chargerApproach) Exit() {
	s.enemy().ShieldRaised = false
}

func (s *chargerApproach) Update(float64) {
	t, _, ok := s.target()
	if !ok {
		s.change(cfg.StateIdle)
		return
	}
	b := s.body()
	tc := s.kind()
	dx := t.X - b.X
	dir := dirOr(dx, b.Facing)
	b.Face(dx)

	if s.ledgeAhead(dir) {
		s.change(cfg.StatePatrol, fsm.Params{Dir: -dir, Duration: tc.RetreatTime})
		return
	}

	speed := tc.Speed
	if s.traits.arena && s.enemy().Aggro && tc.ChargeSpeed > 0 && math.Abs(dx) > tc.AttackRange*chargeGap {
		speed = tc.ChargeSpeed
	}
	b.VX = dir * speed

	if math.Abs(dx) < tc.AttackRange {
		s.change(cfg.StateAttack)
	}
}

// chargerPatrol backs away from a ledge for a fixed time.
type chargerPatrol struct {
	fsm.Base
	*actor
	traits chargerTraits
	dir    float64
	left   float64
}

func (s *chargerPatrol) Enter(p fsm.Params) {
	s.dir = dirOr(p.Dir, 1)
	s.left = p.Duration
	if s.left <= 0 {
		s.left = s.kind().RetreatTime
	}
	s.body().Facing = s.dir
	s.animate("walk", true)
}

func (s *chargerPatrol) Update(dt float64) {
	s.left -= dt
	b := s.body()
	b.VX = s.dir * s.kind().Speed
	// Never retreat over a second edge.
	if s.ledgeAhead(s.dir) {
		b.VX = 0
	}
	if s.left <= 0 {
		s.change(s.traits.afterPatrol)
	}
}
