package player

import (
	"testing"

	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/fsm"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dt = 1.0 / 60

type testWorld struct {
	ecs *ecs.ECS
	rec *intents.Recorder
	in  *intents.Scripted
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	rec := intents.NewRecorder()
	in := intents.NewScripted()
	ie := archetypes.Intents.Spawn(e)
	components.Intents.SetValue(ie, components.IntentsData{
		Surfaces: intents.Surfaces{Renderer: rec, Audio: rec, HUD: rec, Input: in},
	})
	return &testWorld{ecs: e, rec: rec, in: in}
}

func (tw *testWorld) player() *donburi.Entry {
	e := archetypes.Player.Spawn(tw.ecs)
	components.Body.SetValue(e, components.BodyData{
		Facing: 1, Grounded: true,
		Width: cfg.Player.HurtWidth, Height: cfg.Player.HurtHeight,
	})
	components.Health.SetValue(e, components.HealthData{Current: 3, Max: 3})
	components.Brain.SetValue(e, components.BrainData{Machine: NewBrain(tw.ecs, e)})
	return e
}

func (tw *testWorld) enemy(typeName string, x float64) *donburi.Entry {
	tc := cfg.Enemy.Types[typeName]
	e := archetypes.Enemy.Spawn(tw.ecs)
	components.Enemy.SetValue(e, components.EnemyData{TypeName: typeName, TypeConfig: &tc})
	components.Body.SetValue(e, components.BodyData{Facing: 1, Width: tc.Width, Height: tc.Height, Grounded: true})
	components.Body.Get(e).X = x
	components.Health.SetValue(e, components.HealthData{Current: tc.Health, Max: tc.Health})
	m := fsm.New(typeName)
	m.AddState(cfg.StateIdle, fsm.Base{})
	m.AddState(cfg.StateDeath, fsm.Base{})
	m.ChangeState(cfg.StateIdle)
	components.Brain.SetValue(e, components.BrainData{Machine: m})
	return e
}

func (tw *testWorld) step(e *donburi.Entry, n int) {
	for i := 0; i < n; i++ {
		Update(tw.ecs, e, dt)
		tw.in.EndStep()
	}
}

func state(e *donburi.Entry) string { return components.Brain.Get(e).Current() }

func (tw *testWorld) flashed(color uint32) bool {
	for _, f := range tw.rec.Flashes {
		if f.Color == color {
			return true
		}
	}
	return false
}

func TestRunAndStop(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	require.Equal(t, cfg.StateIdle, state(p))

	tw.in.SetAxis(0.05)
	tw.step(p, 1)
	assert.Equal(t, cfg.StateIdle, state(p), "inside the deadzone")

	tw.in.SetAxis(-0.5)
	tw.step(p, 2)
	require.Equal(t, cfg.StateRun, state(p))
	assert.Equal(t, -3.0, components.Body.Get(p).VX)

	tw.in.SetAxis(0)
	tw.step(p, 1)
	assert.Equal(t, cfg.StateIdle, state(p))
	assert.Zero(t, components.Body.Get(p).VX)
}

func TestRun_WalkOffLedgeFalls(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	tw.in.SetAxis(1)
	tw.step(p, 1)
	require.Equal(t, cfg.StateRun, state(p))

	components.Body.Get(p).Grounded = false
	tw.step(p, 1)
	assert.Equal(t, cfg.StateJumpFall, state(p))
}

func TestJump_CutAndLand(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	b := components.Body.Get(p)

	tw.in.Press(cfg.ActionJump)
	tw.step(p, 1)
	require.Equal(t, cfg.StateJumpRise, state(p))
	assert.Equal(t, cfg.Player.JumpVelocity, b.VY)
	assert.False(t, b.Grounded)
	assert.Equal(t, 1, tw.rec.Played(cfg.SoundJump))

	tw.in.Release(cfg.ActionJump)
	tw.step(p, 1)
	assert.Equal(t, cfg.Player.JumpVelocity*cfg.Player.JumpCut, b.VY)

	b.VY = -0.1
	tw.step(p, 1)
	require.Equal(t, cfg.StateJumpFall, state(p))

	b.Grounded = true
	tw.step(p, 1)
	assert.Equal(t, cfg.StateIdle, state(p))
}

func TestJump_NeedsGround(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	components.Body.Get(p).Grounded = false

	tw.in.Press(cfg.ActionJump)
	tw.step(p, 1)
	assert.Equal(t, cfg.StateIdle, state(p))
	assert.Zero(t, tw.rec.Played(cfg.SoundJump))
}

func TestThrow_SpawnsOnceAndSettles(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()

	tw.in.Press(cfg.ActionAttackPrimary)
	tw.step(p, 1)
	require.Equal(t, cfg.StateAttackThrow, state(p))
	assert.Equal(t, 1, combat.LiveProjectiles(tw.ecs.World, components.OwnerPlayer))
	assert.InDelta(t, cfg.Weapons["spear"].FireRate-dt, components.Player.Get(p).ThrowCooldown, 1e-9)

	// 0.08 + 0.05 + 0.15 seconds.
	tw.step(p, 18)
	assert.Equal(t, cfg.StateIdle, state(p))
	assert.True(t, tw.flashed(cfg.FlashWhite))
	assert.True(t, tw.flashed(cfg.FlashYellow))
	assert.Equal(t, 1, combat.LiveProjectiles(tw.ecs.World, components.OwnerPlayer))
}

func TestThrow_AirborneSettlesFalling(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	b := components.Body.Get(p)
	b.Grounded = false
	b.VX = 4

	tw.in.Press(cfg.ActionAttackPrimary)
	tw.step(p, 1)
	require.Equal(t, cfg.StateAttackThrow, state(p))
	assert.Equal(t, 4.0, b.VX, "momentum kept in the air")

	tw.step(p, 18)
	assert.Equal(t, cfg.StateJumpFall, state(p))
}

func TestHeavy_HitsOncePerSwing(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	boss := tw.enemy("orcWarlord", 1)

	tw.in.Press(cfg.ActionAttackSecondary)
	tw.step(p, 1)
	require.Equal(t, cfg.StateAttackHeavy, state(p))

	// 0.18 + 0.1 + 0.3 seconds.
	tw.step(p, 36)
	assert.Equal(t, cfg.StateIdle, state(p))
	assert.Equal(t, 38, components.Health.Get(boss).Current)
	assert.Equal(t, cfg.Attacks.Heavy.Knockback, components.Body.Get(boss).VX)
	assert.Equal(t, 1, tw.rec.Played(cfg.SoundSwing))
	assert.True(t, tw.flashed(cfg.FlashRed))
	assert.True(t, tw.flashed(cfg.FlashCool))

	tw.in.Release(cfg.ActionAttackSecondary)
	tw.in.Press(cfg.ActionAttackSecondary)
	tw.step(p, 37)
	assert.Equal(t, 36, components.Health.Get(boss).Current, "a new swing hits again")
}

func TestRoll(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	components.Body.Get(p).Facing = -1

	tw.in.Press(cfg.ActionRoll)
	tw.step(p, 1)
	require.Equal(t, cfg.StateRoll, state(p))
	assert.Equal(t, -cfg.Player.RunSpeed*cfg.Player.RollSpeedScale, components.Body.Get(p).VX)
	assert.Equal(t, cfg.Player.RollDuration, components.Health.Get(p).Invincible)
	assert.True(t, tw.flashed(cfg.FlashBlue))

	tw.step(p, 32)
	assert.Equal(t, cfg.StateIdle, state(p))
	assert.Zero(t, components.Body.Get(p).VX)
}

func TestRoll_KeepsLongerInvincibility(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	components.Health.Get(p).Invincible = 1.2

	tw.in.Press(cfg.ActionRoll)
	tw.step(p, 1)
	require.Equal(t, cfg.StateRoll, state(p))
	assert.Equal(t, 1.2, components.Health.Get(p).Invincible)
}

func TestWeaponCycling(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	pd := components.Player.Get(p)

	tw.in.Press(cfg.ActionWeaponPrev)
	tw.step(p, 1)
	assert.Equal(t, "torch", combat.EquippedWeapon(pd))
	tw.in.Release(cfg.ActionWeaponPrev)

	tw.in.Press(cfg.ActionWeaponNext)
	tw.in.Press(cfg.ActionAttackPrimary)
	tw.step(p, 1)
	require.Equal(t, cfg.StateAttackThrow, state(p))
	assert.Equal(t, "torch", combat.EquippedWeapon(pd), "no switching mid-attack")
}

func TestDeath_IgnoresInput(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player()
	components.Brain.Get(p).ChangeState(cfg.StateDeath)

	tw.in.SetAxis(1)
	tw.in.Press(cfg.ActionJump)
	tw.in.Press(cfg.ActionWeaponNext)
	tw.step(p, 30)
	assert.Equal(t, cfg.StateDeath, state(p))
	assert.Zero(t, components.Body.Get(p).VX)
	assert.Zero(t, components.Player.Get(p).Weapon)
}
