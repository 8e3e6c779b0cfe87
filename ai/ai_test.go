package ai

import (
	"math"
	"testing"

	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/fsm"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const step = 1.0 / 60

// fixedRoll always rolls v.
type fixedRoll float64

func (f fixedRoll) Float64() float64 { return float64(f) }

type testWorld struct {
	ecs *ecs.ECS
	rec *intents.Recorder
}

func newTestWorld(t *testing.T, colliders ...geometry.Collider) *testWorld {
	t.Helper()
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	rec := intents.NewRecorder()
	ie := archetypes.Intents.Spawn(e)
	components.Intents.SetValue(ie, components.IntentsData{
		Surfaces: intents.Surfaces{Renderer: rec, Audio: rec, HUD: rec}.WithDefaults(),
	})
	se := archetypes.Space.Spawn(e)
	components.Space.SetValue(se, components.SpaceData{Index: geometry.NewIndex(colliders)})
	return &testWorld{ecs: e, rec: rec}
}

func ground(minX, maxX, top float64) geometry.Collider {
	return geometry.Collider{Box: geometry.Box{MinX: minX, MaxX: maxX, MinY: top - 1, MaxY: top}, Kind: geometry.KindGround}
}

func (tw *testWorld) player(x, y float64) *donburi.Entry {
	p := archetypes.Player.Spawn(tw.ecs)
	components.Body.SetValue(p, components.BodyData{Facing: 1, Width: cfg.Player.HurtWidth, Height: cfg.Player.HurtHeight})
	b := components.Body.Get(p)
	b.X, b.Y = x, y
	components.Health.SetValue(p, components.HealthData{Current: 3, Max: 3})
	m := fsm.New("player")
	for _, n := range []string{cfg.StateIdle, cfg.StateJumpFall, cfg.StateDeath} {
		m.AddState(n, fsm.Base{})
	}
	m.ChangeState(cfg.StateIdle)
	components.Brain.SetValue(p, components.BrainData{Machine: m})
	return p
}

func (tw *testWorld) enemy(typeName string, x, y, facing float64, roll Roller) *donburi.Entry {
	tc := cfg.Enemy.Types[typeName]
	e := archetypes.Enemy.Spawn(tw.ecs)
	components.Enemy.SetValue(e, components.EnemyData{TypeName: typeName, TypeConfig: &tc, SpawnX: x})
	components.Body.SetValue(e, components.BodyData{Facing: facing, Width: tc.Width, Height: tc.Height, Flying: tc.IsFlying, Grounded: !tc.IsFlying})
	b := components.Body.Get(e)
	b.X, b.Y = x, y
	components.Health.SetValue(e, components.HealthData{Current: tc.Health, Max: tc.Health})
	if roll == nil {
		roll = fixedRoll(1)
	}
	components.Brain.SetValue(e, components.BrainData{Machine: NewBrain(tw.ecs.World, e, roll)})
	return e
}

func tick(e *donburi.Entry, n int) {
	for i := 0; i < n; i++ {
		components.Brain.Get(e).Update(step)
	}
}

func state(e *donburi.Entry) string { return components.Brain.Get(e).Current() }

func TestNewBrain_StartingStates(t *testing.T) {
	tw := newTestWorld(t, ground(-50, 50, 0))
	assert.Equal(t, cfg.StatePatrol, state(tw.enemy("ghoulShambling", 0, 0, 1, nil)))
	assert.Equal(t, cfg.StateIdle, state(tw.enemy("orcGrunt", 0, 0, 1, nil)))
	assert.Equal(t, cfg.StateIdle, state(tw.enemy("goleling", 0, 0, 1, nil)))
	assert.Equal(t, cfg.StateIdle, state(tw.enemy("gargoyle", 0, 6, 1, nil)))
	assert.Equal(t, cfg.StateIdle, state(tw.enemy("orcWarlord", 0, 0, 1, nil)))
}

func TestGhoulPatrol_FlipsAtLedge(t *testing.T) {
	tw := newTestWorld(t, ground(-5, 5, 0))
	g := tw.enemy("ghoulShambling", 3.5, 0, 1, nil)

	tick(g, 1)
	b := components.Body.Get(g)
	assert.Equal(t, 1.0, b.Facing, "ground still ahead at 4.5")
	assert.Greater(t, b.VX, 0.0)

	b.X = 4.5
	tick(g, 1)
	assert.Equal(t, -1.0, b.Facing, "no ground at 5.5")
	assert.Less(t, b.VX, 0.0)
	assert.Equal(t, cfg.StatePatrol, state(g))
}

func TestGhoulPatrol_FlipsOnWallAndOffLevel(t *testing.T) {
	tw := newTestWorld(t)
	g := tw.enemy("ghoulCrawler", 0, 0, -1, nil)
	tick(g, 1)
	assert.Equal(t, 1.0, components.Body.Get(g).Facing, "an empty level is all ledge")

	tw = newTestWorld(t, ground(-20, 20, 0))
	g = tw.enemy("ghoulCrawler", 0, 0, 1, nil)
	components.Body.Get(g).WallHit = true
	tick(g, 1)
	assert.Equal(t, -1.0, components.Body.Get(g).Facing)
}

func TestGhoul_PursuesAndStrikesOnce(t *testing.T) {
	tw := newTestWorld(t, ground(-20, 20, 0))
	g := tw.enemy("ghoulShambling", 0, 0, 1, nil)
	p := tw.player(5, 0)

	tick(g, 1)
	require.Equal(t, cfg.StatePursue, state(g))
	tick(g, 1)
	assert.Equal(t, cfg.Enemy.Types["ghoulShambling"].Speed, components.Body.Get(g).VX)

	components.Body.Get(p).X = 1
	tick(g, 1)
	require.Equal(t, cfg.StateAttack, state(g))

	// Telegraph 0.5, strike 0.15, recovery 0.6.
	tick(g, 40)
	assert.Equal(t, 2, components.Health.Get(p).Current)
	components.Health.Get(p).Invincible = 0
	tick(g, 10)
	assert.Equal(t, 2, components.Health.Get(p).Current, "one strike per attack")

	components.Body.Get(p).X = 5
	tick(g, 40)
	assert.Equal(t, cfg.StatePursue, state(g))
}

func TestOrc_LedgeSendsPatrolThenApproach(t *testing.T) {
	tw := newTestWorld(t, ground(-10, 2, 0))
	o := tw.enemy("orcGrunt", 0, 0, 1, nil)
	p := tw.player(8, 0)

	tick(o, 1)
	require.Equal(t, cfg.StateApproach, state(o))
	assert.True(t, components.Enemy.Get(o).ShieldRaised)

	tick(o, 1)
	require.Equal(t, cfg.StatePatrol, state(o), "ground ends before x+2.5")
	assert.False(t, components.Enemy.Get(o).ShieldRaised)
	b := components.Body.Get(o)
	assert.Equal(t, -1.0, b.Facing)
	tick(o, 1)
	assert.Equal(t, -cfg.Enemy.Types["orcGrunt"].Speed, b.VX)

	// With the player behind it the approach leads away from the edge.
	components.Body.Get(p).X = -6
	tick(o, 181)
	assert.Equal(t, cfg.StateApproach, state(o), "back after three seconds")
	assert.True(t, components.Enemy.Get(o).ShieldRaised)
}

func TestOrc_ShieldFollowsType(t *testing.T) {
	tests := []struct {
		typeName string
		raised   bool
	}{
		{"orcGrunt", true},
		{"orcBerserker", false},
		{"orcWarlord", true},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			tw := newTestWorld(t, ground(-20, 20, 0))
			o := tw.enemy(tt.typeName, 0, 0, 1, nil)
			tw.player(8, 0)

			tick(o, 1)
			require.Equal(t, cfg.StateApproach, state(o))
			assert.Equal(t, tt.raised, components.Enemy.Get(o).ShieldRaised)
		})
	}
}

func TestOrc_AttackReach(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		hit    bool
	}{
		{"in reach", 1.4, 0, true},
		{"bonus reach", 1.9, 0, true},
		{"too high", 1.4, 2.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t, ground(-20, 20, 0))
			o := tw.enemy("orcGrunt", 0, 0, 1, nil)
			p := tw.player(1.4, 0)
			tick(o, 2)
			require.Equal(t, cfg.StateAttack, state(o))

			pb := components.Body.Get(p)
			pb.X, pb.Y = tt.px, tt.py
			tick(o, 60)
			if tt.hit {
				assert.Equal(t, 1, components.Health.Get(p).Current)
			} else {
				assert.Equal(t, 3, components.Health.Get(p).Current)
			}
		})
	}
}

func TestGoleling_RetreatReturnsToIdle(t *testing.T) {
	tw := newTestWorld(t, ground(-10, 1, 0))
	g := tw.enemy("goleling", 0, 0, 1, nil)
	p := tw.player(6, 0)

	tick(g, 2)
	require.Equal(t, cfg.StatePatrol, state(g))
	assert.False(t, components.Enemy.Get(g).ShieldRaised)

	components.Body.Get(p).X = 20
	tick(g, 91)
	assert.Equal(t, cfg.StateIdle, state(g))
}

func TestGargoyle_HoverAndSwoop(t *testing.T) {
	tw := newTestWorld(t, ground(-20, 20, 0))
	p := tw.player(0, 0)

	calm := tw.enemy("gargoyle", 2, 6, -1, fixedRoll(0.5))
	tick(calm, 1)
	require.Equal(t, cfg.StateHover, state(calm))
	tick(calm, 1)
	b := components.Body.Get(calm)
	assert.Less(t, b.VX, 0.0, "drifts toward the player")
	tick(calm, 120)
	assert.Equal(t, cfg.StateHover, state(calm), "never rolls under the swoop chance")

	diver := tw.enemy("gargoyle", 1, 4, -1, fixedRoll(0))
	tick(diver, 2)
	require.Equal(t, cfg.StateSwoop, state(diver))
	db := components.Body.Get(diver)
	assert.Less(t, db.VY, 0.0, "diving")
	assert.InDelta(t, 3.5*3, math.Hypot(db.VX, db.VY), 1e-9)
	assert.Equal(t, 1, tw.rec.Played(cfg.SoundPunch))

	tick(diver, 59)
	require.Equal(t, cfg.StateSwoop, state(diver))
	components.Body.Get(p).X = 10
	tick(diver, 3)
	assert.Equal(t, cfg.StateHover, state(diver))
}

func TestBoss_AggroWakesAndCharges(t *testing.T) {
	tw := newTestWorld(t, ground(-100, 100, 0))
	b := tw.enemy("orcWarlord", 0, 0, -1, nil)
	tw.player(-30, 0)

	tick(b, 1)
	require.Equal(t, cfg.StateIdle, state(b), "player outside detection range")

	components.Enemy.Get(b).Aggro = true
	tick(b, 2)
	require.Equal(t, cfg.StateApproach, state(b))
	assert.Equal(t, -9.0, components.Body.Get(b).VX)
}

func TestDeathState_IsTerminal(t *testing.T) {
	tw := newTestWorld(t, ground(-20, 20, 0))
	g := tw.enemy("ghoulShambling", 0, 0, 1, nil)
	tw.player(1, 0)

	components.Brain.Get(g).ChangeState(cfg.StateDeath)
	tick(g, 120)
	assert.Equal(t, cfg.StateDeath, state(g))
	assert.Zero(t, components.Body.Get(g).VX)
}
