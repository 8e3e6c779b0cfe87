// Package ai builds the behaviour graphs enemies run. Every archetype gets
// its own set of states on a fsm.Machine; states read the world through an
// actor and never mutate entity collections.
package ai

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/fsm"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/yohamta/donburi"
)

// Roller is the random source behaviours draw from. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// actor is the enemy a state belongs to. The entry is looked up on every
// use so states never hold a stale pointer.
type actor struct {
	w    donburi.World
	id   donburi.Entity
	roll Roller
}

func (a *actor) self() *donburi.Entry             { return a.w.Entry(a.id) }
func (a *actor) body() *components.BodyData       { return components.Body.Get(a.self()) }
func (a *actor) enemy() *components.EnemyData     { return components.Enemy.Get(a.self()) }
func (a *actor) kind() *cfg.EnemyTypeConfig       { return a.enemy().TypeConfig }
func (a *actor) index() *geometry.Index           { return entity.Index(a.w) }
func (a *actor) machine() *fsm.Machine            { return components.Brain.Get(a.self()).Machine }
func (a *actor) change(s string, p ...fsm.Params) { a.machine().ChangeState(s, p...) }

// target returns the player's body while the player is alive.
func (a *actor) target() (*components.BodyData, *donburi.Entry, bool) {
	pe, ok := entity.Player(a.w)
	if !ok || !entity.Alive(pe) {
		return nil, nil, false
	}
	return components.Body.Get(pe), pe, true
}

// ledgeAhead looks for ground lookahead units in dir.
func (a *actor) ledgeAhead(dir float64) bool {
	b := a.body()
	tc := a.kind()
	return a.index().IsLedge(b.X+dir*tc.LedgeLookahead, b.Y, tc.LedgeDrop)
}

func (a *actor) animate(clip string, loop bool) {
	components.GetIntents(a.w).Renderer.PlayAnimation(a.id, clip, loop)
}

func (a *actor) play(id cfg.SoundID) {
	components.GetIntents(a.w).Audio.Play(id)
}

func (a *actor) flash(color uint32, dur float64) {
	components.GetIntents(a.w).Renderer.Flash(a.id, color, dur)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// dirOr is the sign of v, or fallback when v is zero.
func dirOr(v, fallback float64) float64 {
	if s := sign(v); s != 0 {
		return s
	}
	if fallback == 0 {
		return 1
	}
	return sign(fallback)
}

// NewBrain builds the state machine for enemy e according to its
// archetype and enters its starting state.
func NewBrain(w donburi.World, e *donburi.Entry, roll Roller) *fsm.Machine {
	enemy := components.Enemy.Get(e)
	a := &actor{w: w, id: e.Entity(), roll: roll}
	m := fsm.New(enemy.TypeName)

	start := cfg.StateIdle
	switch enemy.TypeConfig.Archetype {
	case cfg.ArchetypeGhoul:
		addGhoulStates(m, a)
		start = cfg.StatePatrol
	case cfg.ArchetypeOrc:
		addChargerStates(m, a, orcTraits)
	case cfg.ArchetypeGoleling:
		addChargerStates(m, a, golelingTraits)
	case cfg.ArchetypeBoss:
		addChargerStates(m, a, bossTraits)
	case cfg.ArchetypeGargoyle:
		addGargoyleStates(m, a)
	}
	m.AddState(cfg.StateDeath, &deathState{actor: a})

	// The brain component is not attached yet, so enter through the
	// machine directly.
	m.ChangeState(start, fsm.Params{Dir: dirOr(components.Body.Get(e).Facing, -1)})
	return m
}

type deathState struct {
	fsm.Base
	*actor
}

func (s *deathState) Enter(fsm.Params) {
	s.body().VX = 0
	s.animate("death", false)
}
