// Package player builds the player's state graph: movement, jumping, the
// two attacks, the dodge roll and death. States poll the input surface once
// per fixed step.
package player

import (
	"math"

	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/fsm"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Flash durations of the attack cues.
const (
	cueFlash   = 0.1
	swingFlash = 0.15
	rollFlash  = 0.4
)

// pilot is the player entity a state drives.
type pilot struct {
	ecs *ecs.ECS
	id  donburi.Entity
}

func (p *pilot) self() *donburi.Entry             { return p.ecs.World.Entry(p.id) }
func (p *pilot) body() *components.BodyData       { return components.Body.Get(p.self()) }
func (p *pilot) input() intents.Input             { return components.GetIntents(p.ecs.World).Input }
func (p *pilot) machine() *fsm.Machine            { return components.Brain.Get(p.self()).Machine }
func (p *pilot) change(s string, q ...fsm.Params) { p.machine().ChangeState(s, q...) }

func (p *pilot) pressed(a cfg.ActionID) bool { return p.input().IsJustPressed(a) }

// axis is the horizontal input with the deadzone applied.
func (p *pilot) axis() float64 {
	v := p.input().HorizontalAxis()
	if math.Abs(v) <= cfg.Player.AxisDeadzone {
		return 0
	}
	return v
}

func (p *pilot) animate(clip string, loop bool) {
	components.GetIntents(p.ecs.World).Renderer.PlayAnimation(p.id, clip, loop)
}

func (p *pilot) flash(color uint32, dur float64) {
	components.GetIntents(p.ecs.World).Renderer.Flash(p.id, color, dur)
}

func (p *pilot) play(s cfg.SoundID) {
	components.GetIntents(p.ecs.World).Audio.Play(s)
}

// attack starts a throw or a heavy swing if one was just pressed.
func (p *pilot) attack() bool {
	switch {
	case p.pressed(cfg.ActionAttackPrimary):
		p.change(cfg.StateAttackThrow)
	case p.pressed(cfg.ActionAttackSecondary):
		p.change(cfg.StateAttackHeavy)
	default:
		return false
	}
	return true
}

// settle picks IDLE or JUMP_FALL once an uncancelable state finishes.
func (p *pilot) settle() {
	if p.body().Grounded {
		p.change(cfg.StateIdle)
		return
	}
	p.change(cfg.StateJumpFall)
}

// NewBrain builds the state machine for player e and enters IDLE.
func NewBrain(ecs *ecs.ECS, e *donburi.Entry) *fsm.Machine {
	p := &pilot{ecs: ecs, id: e.Entity()}
	m := fsm.New("player")
	m.AddState(cfg.StateIdle, &idle{pilot: p})
	m.AddState(cfg.StateRun, &run{pilot: p})
	m.AddState(cfg.StateJumpRise, &jumpRise{pilot: p})
	m.AddState(cfg.StateJumpFall, &jumpFall{pilot: p})
	m.AddState(cfg.StateAttackThrow, &throw{pilot: p})
	m.AddState(cfg.StateAttackHeavy, &heavy{pilot: p, hits: combat.NewAttackInstance()})
	m.AddState(cfg.StateRoll, &roll{pilot: p})
	m.AddState(cfg.StateDeath, &death{pilot: p})

	// Enter directly: the brain component is attached after this returns.
	m.ChangeState(cfg.StateIdle)
	return m
}

// Update ticks the brain, then handles the inputs that work in any
// living, non-attacking state, and runs down the throw cooldown.
func Update(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	m := components.Brain.Get(e).Machine
	m.Update(dt)

	p := components.Player.Get(e)
	if p.ThrowCooldown > 0 {
		p.ThrowCooldown = max(0, p.ThrowCooldown-dt)
	}
	if m.Is(cfg.StateAttackThrow, cfg.StateAttackHeavy, cfg.StateDeath) {
		return
	}
	in := components.GetIntents(ecs.World).Input
	if in.IsJustPressed(cfg.ActionWeaponPrev) {
		combat.CycleWeapon(ecs.World, p, -1)
	}
	if in.IsJustPressed(cfg.ActionWeaponNext) {
		combat.CycleWeapon(ecs.World, p, 1)
	}
}

type idle struct {
	fsm.Base
	*pilot
}

func (s *idle) Enter(fsm.Params) {
	s.body().VX = 0
	s.animate("idle", true)
}

func (s *idle) Update(float64) {
	switch {
	case s.pressed(cfg.ActionJump) && s.body().Grounded:
		s.change(cfg.StateJumpRise)
	case s.attack():
	case s.pressed(cfg.ActionRoll):
		s.change(cfg.StateRoll)
	case s.axis() != 0:
		s.change(cfg.StateRun)
	}
}

type run struct {
	fsm.Base
	*pilot
}

func (s *run) Enter(fsm.Params) {
	s.animate("run", true)
}

func (s *run) Update(float64) {
	b := s.body()
	h := s.axis()
	b.VX = h * cfg.Player.RunSpeed

	switch {
	case s.pressed(cfg.ActionRoll):
		s.change(cfg.StateRoll)
	case h == 0:
		s.change(cfg.StateIdle)
	case s.pressed(cfg.ActionJump) && b.Grounded:
		s.change(cfg.StateJumpRise)
	case s.attack():
	case !b.Grounded:
		s.change(cfg.StateJumpFall)
	}
}

type jumpRise struct {
	fsm.Base
	*pilot
}

func (s *jumpRise) Enter(fsm.Params) {
	b := s.body()
	b.VY = cfg.Player.JumpVelocity
	b.Grounded = false
	s.animate("jump", true)
	s.play(cfg.SoundJump)
}

func (s *jumpRise) Update(float64) {
	b := s.body()
	b.VX = s.axis() * cfg.Player.RunSpeed

	// Variable jump height.
	if s.input().IsJustReleased(cfg.ActionJump) && b.VY > 0 {
		b.VY *= cfg.Player.JumpCut
	}
	if s.attack() {
		return
	}
	if b.VY <= 0 {
		s.change(cfg.StateJumpFall)
	}
}

type jumpFall struct {
	fsm.Base
	*pilot
}

func (s *jumpFall) Update(float64) {
	b := s.body()
	h := s.axis()
	if h != 0 {
		b.VX = h * cfg.Player.RunSpeed
	}
	if s.attack() || !b.Grounded {
		return
	}
	if h != 0 {
		s.change(cfg.StateRun)
		return
	}
	s.change(cfg.StateIdle)
}

// throw releases the equipped weapon on entry and then plays out the
// throw's phases.
type throw struct {
	fsm.Base
	*pilot
	phases combat.Phases
	phase  combat.Phase
}

func (s *throw) Enter(fsm.Params) {
	s.phases = combat.PhasesOf(cfg.Attacks.Throw.PhaseConfig)
	s.phase = combat.PhaseAnticipation
	if s.body().Grounded {
		s.body().VX = 0
	}
	s.animate("attack_throw", false)
	s.flash(cfg.FlashWhite, cueFlash)
	combat.TryThrow(s.ecs, s.self())
}

func (s *throw) Update(float64) {
	ph := s.phases.PhaseAt(s.machine().TimeInState())
	if ph == combat.PhaseActive && s.phase == combat.PhaseAnticipation {
		s.flash(cfg.FlashYellow, cueFlash)
	}
	s.phase = ph
	if ph == combat.PhaseDone {
		s.settle()
	}
}

// heavy is the melee swing. Every enemy can be hit at most once per swing.
type heavy struct {
	fsm.Base
	*pilot
	phases combat.Phases
	phase  combat.Phase
	hits   *combat.AttackInstance
}

func (s *heavy) Enter(fsm.Params) {
	s.phases = combat.PhasesOf(cfg.Attacks.Heavy.PhaseConfig)
	s.phase = combat.PhaseAnticipation
	s.hits.Reset()
	if s.body().Grounded {
		s.body().VX = 0
	}
	s.animate("attack_melee", false)
	s.flash(cfg.FlashOrange, cueFlash)
}

func (s *heavy) Update(float64) {
	ph := s.phases.PhaseAt(s.machine().TimeInState())
	entering := ph != s.phase
	s.phase = ph

	switch ph {
	case combat.PhaseActive:
		if entering {
			s.flash(cfg.FlashRed, swingFlash)
			s.play(cfg.SoundSwing)
		}
		combat.ResolveHeavy(s.ecs.World, s.self(), s.hits)
	case combat.PhaseRecovery:
		if entering {
			s.flash(cfg.FlashCool, cueFlash)
		}
	case combat.PhaseDone:
		s.settle()
	}
}

type roll struct {
	fsm.Base
	*pilot
}

func (s *roll) Enter(fsm.Params) {
	b := s.body()
	b.VX = cfg.Player.RunSpeed * cfg.Player.RollSpeedScale * b.Facing
	b.VY = 0

	hp := components.Health.Get(s.self())
	hp.Invincible = max(hp.Invincible, cfg.Player.RollDuration)

	s.animate("jump", true)
	s.flash(cfg.FlashBlue, rollFlash)
}

func (s *roll) Update(float64) {
	if s.machine().TimeInState() > cfg.Player.RollDuration {
		s.change(cfg.StateIdle)
	}
}

func (s *roll) Exit() {
	s.body().VX = 0
}

// death never transitions onward. The entity package runs the game over
// sequence.
type death struct {
	fsm.Base
	*pilot
}

func (s *death) Enter(fsm.Params) {
	b := s.body()
	b.VX, b.VY = 0, 0
	s.animate("death", false)
}
