package game

import (
	"testing"

	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/automoto/ghouls-n-orcs/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLevels = `
levels:
  - id: flat
    name: Flat
    playerSpawn: {x: 0, y: 5}
    platforms:
      - {x: 0, y: 0.5, w: 20, h: 1, type: ground}
    next: arena
  - id: ledge
    name: Ledge
    playerSpawn: {x: 30, y: 1}
    platforms:
      - {x: 0, y: 0.5, w: 10, h: 1, type: ground}
      - {x: 30, y: 0.5, w: 20, h: 1, type: ground}
  - id: arena
    name: Arena
    hasBoss: true
    playerSpawn: {x: 0, y: 1}
    platforms:
      - {x: 0, y: 0.5, w: 100, h: 1, type: ground}
`

type testSession struct {
	*Session
	rec   *intents.Recorder
	input *intents.Scripted
}

func newTestSession(t *testing.T, levelID string) *testSession {
	t.Helper()
	cfg.Reset()
	cfg.Level.Start = "flat"

	r, err := level.Parse([]byte(scenarioLevels))
	require.NoError(t, err)

	rec := intents.NewRecorder()
	in := intents.NewScripted()
	s := NewSession(r, intents.Surfaces{Renderer: rec, Audio: rec, HUD: rec, Input: in}, 7)
	require.NoError(t, s.LoadLevel(levelID))
	return &testSession{Session: s, rec: rec, input: in}
}

// steps runs n fixed steps through the accumulator.
func (ts *testSession) steps(n int) {
	for range n {
		ts.Advance(cfg.Physics.FixedStep)
	}
}

func TestScenario_PlayerSettlesOnGround(t *testing.T) {
	ts := newTestSession(t, "flat")
	pe, ok := ts.Player()
	require.True(t, ok)

	ts.steps(120)

	body := components.Body.Get(pe)
	assert.Equal(t, 1.0, body.Y)
	assert.True(t, body.Grounded)
	assert.Zero(t, body.VY)
}

func TestScenario_EnemyDiesOnLethalHit(t *testing.T) {
	ts := newTestSession(t, "flat")
	ghoul := factory.CreateEnemy(ts.ECS(), 5, 1, "ghoulShambling")
	require.Equal(t, 1, components.Health.Get(ghoul).Current)

	require.True(t, entity.DamageEnemy(ts.World(), ghoul, 1, nil))

	assert.False(t, components.Life.Get(ghoul).Active())
	assert.False(t, entity.Alive(ghoul))
	assert.Positive(t, ts.rec.ParticleCount(cfg.ParticleGreenBlood))
	assert.Equal(t, cfg.StateDeath, components.Brain.Get(ghoul).Current())
}

func TestScenario_PlayerInvincibilityWindow(t *testing.T) {
	ts := newTestSession(t, "flat")
	pe, _ := ts.Player()
	hp := components.Health.Get(pe)
	require.Equal(t, 3, hp.Current)
	require.False(t, hp.IsInvincible())

	require.True(t, entity.DamagePlayer(ts.World(), pe, 1))
	assert.Equal(t, 2, hp.Current)
	assert.True(t, hp.IsInvincible())
	assert.Equal(t, cfg.Player.InvincibleTime, hp.Invincible)

	assert.False(t, entity.DamagePlayer(ts.World(), pe, 1))
	assert.Equal(t, 2, hp.Current)
}

func TestScenario_FinalBossRestartsGame(t *testing.T) {
	ts := newTestSession(t, "arena")
	require.False(t, ts.Director().HasSuccessor())

	pe, _ := ts.Player()
	components.Player.Get(pe).Weapon = 2

	boss := factory.CreateEnemy(ts.ECS(), 20, 1, "orcWarlord")
	require.True(t, ts.rec.BossBar)
	require.True(t, entity.DamageEnemy(ts.World(), boss, 40, nil))
	assert.False(t, ts.Director().Victory(), "victory waits for the body to be removed")

	// The warlord lingers for its removal time.
	ts.steps(int(cfg.Enemy.Types["orcWarlord"].RemoveTime/cfg.Physics.FixedStep) + 5)
	assert.False(t, boss.Valid())
	require.True(t, ts.Director().Victory())
	assert.False(t, ts.rec.BossBar)
	assert.Equal(t, components.StatusVictory, ts.Status())

	panel, ok := ts.rec.LastPanel()
	require.True(t, ok)
	assert.Equal(t, intents.PanelVictory, panel.Kind)
	assert.Equal(t, 1, ts.rec.Played(cfg.SoundVictory))

	// Confirming after the gate takes the no-successor branch.
	ts.steps(int(cfg.Level.VictoryGate/cfg.Physics.FixedStep) + 5)
	ts.input.Tap(cfg.ActionRestart)
	ts.steps(1)

	assert.Equal(t, "flat", ts.Director().Level().ID, "restart goes back to the first level")
	assert.False(t, ts.Director().Victory())
	assert.Equal(t, components.StatusPlaying, ts.Status())
	assert.Zero(t, components.Player.Get(pe).Weapon, "a new game starts with the first weapon")
}

func TestScenario_RetryKeepsWeapon(t *testing.T) {
	ts := newTestSession(t, "flat")
	pe, _ := ts.Player()
	components.Player.Get(pe).Weapon = 1

	entity.KillPlayer(ts.World(), pe)
	ts.steps(int((cfg.Player.GameOverDelay+cfg.Player.RestartDelay)/cfg.Physics.FixedStep) + 5)
	ts.input.Tap(cfg.ActionRestart)
	ts.steps(1)

	assert.True(t, entity.Alive(pe))
	assert.Equal(t, components.StatusPlaying, ts.Status())
	assert.Equal(t, 1, components.Player.Get(pe).Weapon)
}

func TestScenario_PlayerStaysOnGroundAnywhere(t *testing.T) {
	for _, x := range []float64{-8.7, -3, -0.55, 0.45, 1, 2.5, 4.2, 6.03, 7.9} {
		ts := newTestSession(t, "flat")
		pe, _ := ts.Player()
		body := components.Body.Get(pe)
		body.X, body.Y = x, 5

		ts.steps(120)

		assert.Equalf(t, 1.0, body.Y, "x=%v", x)
		assert.Truef(t, body.Grounded, "x=%v", x)
		assert.Truef(t, entity.Alive(pe), "x=%v", x)
	}
}

func TestScenario_PatrolFlipsAtLedge(t *testing.T) {
	ts := newTestSession(t, "ledge")
	ghoul := factory.CreateEnemy(ts.ECS(), -3, 1, "ghoulShambling")
	body := components.Body.Get(ghoul)
	require.Equal(t, cfg.StatePatrol, components.Brain.Get(ghoul).Current())
	require.Equal(t, -1.0, body.Facing)

	flipped := false
	for range 240 {
		ts.steps(1)
		require.GreaterOrEqual(t, body.X, -5.0, "never walks off the edge")
		if body.Facing > 0 {
			flipped = true
			break
		}
	}
	assert.True(t, flipped)
	assert.True(t, body.Grounded)
	assert.Equal(t, cfg.StatePatrol, components.Brain.Get(ghoul).Current())
}
