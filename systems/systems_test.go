package systems

import (
	"testing"

	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/automoto/ghouls-n-orcs/systems/factory"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testLevels = `
levels:
  - id: field
    name: Field
    playerSpawn: {x: 0, y: 1}
    platforms:
      - {x: 0, y: 0.5, w: 40, h: 1, type: ground}
      - {x: 10, y: 3.5, w: 4, h: 1}
    spawners:
      - {x: 10, type: ghoulShambling, triggerDist: 4}
`

type testWorld struct {
	ecs   *ecs.ECS
	rec   *intents.Recorder
	input *intents.Scripted
	level *level.Director
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.Reset()

	r, err := level.Parse([]byte(testLevels))
	require.NoError(t, err)
	d := level.NewDirector(r)
	require.NoError(t, d.Load("field"))

	e := ecs.NewECS(donburi.NewWorld())
	rec := intents.NewRecorder()
	in := intents.NewScripted()
	factory.CreateIntents(e, intents.Surfaces{Renderer: rec, Audio: rec, HUD: rec, Input: in})
	factory.CreateGame(e, 1)
	factory.CreateLevel(e, d)
	factory.CreateSpace(e, d.Index())
	factory.CreateCamera(e, 0, 0)
	return &testWorld{ecs: e, rec: rec, input: in, level: d}
}

func (tw *testWorld) game() *components.GameData {
	g, _ := components.Game.First(tw.ecs.World)
	return components.Game.Get(g)
}

func countEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestUpdatePhysics_LandsAndStays(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 3)

	for range 90 {
		UpdatePhysics(tw.ecs)
	}
	body := components.Body.Get(pe)
	assert.True(t, body.Grounded)
	assert.Equal(t, 1.0, body.Y)
}

func TestUpdatePhysics_KillPlane(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 100, cfg.Physics.KillPlaneY+0.01)
	components.Health.Get(pe).Invincible = 5
	ghoul := factory.CreateEnemy(tw.ecs, -100, cfg.Physics.KillPlaneY+0.01, "ghoulCrawler")

	for range 10 {
		UpdatePhysics(tw.ecs)
	}
	assert.False(t, entity.Alive(pe), "the kill plane ignores invincibility")
	assert.False(t, entity.Alive(ghoul))
}

func TestUpdatePhysics_FlyersHold(t *testing.T) {
	tw := newTestWorld(t)
	garg := factory.CreateEnemy(tw.ecs, 0, 6, "gargoyle")

	for range 30 {
		UpdatePhysics(tw.ecs)
	}
	body := components.Body.Get(garg)
	assert.Equal(t, 6.0, body.Y)
	assert.False(t, body.Grounded)
}

func TestUpdatePhysics_FacingFollowsVelocity(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 1)
	body := components.Body.Get(pe)

	body.VX = -3
	UpdatePhysics(tw.ecs)
	assert.Equal(t, -1.0, body.Facing)

	body.VX = 0
	UpdatePhysics(tw.ecs)
	assert.Equal(t, -1.0, body.Facing, "standing still keeps facing")
}

func TestUpdateProjectiles_RemovesSpent(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreatePlayer(tw.ecs, 0, 1)
	spear := combat.SpawnProjectile(tw.ecs, "spear", 0, 2, 1, components.OwnerPlayer)
	id := spear.Entity()
	require.Contains(t, tw.rec.Attached, id)

	steps := int(cfg.Projectile.LifeTime/cfg.Physics.FixedStep) + 2
	for range steps {
		UpdateProjectiles(tw.ecs)
	}
	assert.False(t, tw.ecs.World.Valid(id))
	assert.NotContains(t, tw.rec.Attached, id)
}

func TestUpdateProjectiles_HitRemovesAndDamages(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreatePlayer(tw.ecs, 0, 1)
	orc := factory.CreateEnemy(tw.ecs, 3, 1, "orcBerserker")
	combat.SpawnProjectile(tw.ecs, "spear", 2.5, 2, 1, components.OwnerPlayer)

	UpdateProjectiles(tw.ecs)

	assert.Equal(t, 1, components.Health.Get(orc).Current)
	assert.Zero(t, combat.LiveProjectiles(tw.ecs.World, components.OwnerPlayer))
}

func TestUpdateSpawner_FiresOnceOnGround(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 1)

	UpdateSpawner(tw.ecs)
	assert.Zero(t, countEnemies(tw.ecs.World))

	components.Body.Get(pe).X = 7
	UpdateSpawner(tw.ecs)
	UpdateSpawner(tw.ecs)
	require.Equal(t, 1, countEnemies(tw.ecs.World))

	ghoul, _ := tags.Enemy.First(tw.ecs.World)
	body := components.Body.Get(ghoul)
	assert.Equal(t, 10.0, body.X)
	assert.Equal(t, 4.0, body.Y, "spawns on the highest surface at x")
	assert.Equal(t, "enemy:ghoulShambling", tw.rec.Attached[ghoul.Entity()])
}

func TestUpdatePause_Toggle(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 5)
	physics := WithGameplayChecks(UpdatePhysics)

	tw.input.Tap(cfg.ActionPause)
	UpdatePause(tw.ecs)
	tw.input.EndStep()
	assert.Equal(t, components.StatusPaused, tw.game().Status)
	panel, ok := tw.rec.LastPanel()
	require.True(t, ok)
	assert.Equal(t, intents.PanelPause, panel.Kind)

	physics(tw.ecs)
	assert.Equal(t, 5.0, components.Body.Get(pe).Y, "paused systems do not run")

	tw.input.Tap(cfg.ActionPause)
	UpdatePause(tw.ecs)
	assert.Equal(t, components.StatusPlaying, tw.game().Status)
	assert.False(t, tw.rec.PanelOpen)

	physics(tw.ecs)
	assert.Less(t, components.Body.Get(pe).Y, 5.0)
}

func TestUpdatePause_IgnoredAfterGameOver(t *testing.T) {
	tw := newTestWorld(t)
	tw.game().Status = components.StatusGameOver

	tw.input.Tap(cfg.ActionPause)
	UpdatePause(tw.ecs)
	assert.Equal(t, components.StatusGameOver, tw.game().Status)
}

func TestUpdateDeaths_RemovesAfterCountdown(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreatePlayer(tw.ecs, 0, 1)
	ghoul := factory.CreateEnemy(tw.ecs, 5, 1, "ghoulShambling")
	id := ghoul.Entity()
	entity.Die(tw.ecs.World, ghoul)

	UpdateDeaths(tw.ecs)
	assert.True(t, tw.ecs.World.Valid(id))

	steps := int(cfg.Enemy.Types["ghoulShambling"].RemoveTime/cfg.Physics.FixedStep) + 2
	for range steps {
		UpdateDeaths(tw.ecs)
	}
	assert.False(t, tw.ecs.World.Valid(id))
	assert.NotContains(t, tw.rec.Attached, id)
}

func TestUpdateDeaths_PlayerRetryAfterGate(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 1)
	entity.KillPlayer(tw.ecs.World, pe)

	tw.input.Tap(cfg.ActionRestart)
	UpdateDeaths(tw.ecs)
	tw.input.EndStep()
	assert.Equal(t, components.TransitionNone, tw.game().Pending, "restart gate closed")

	gate := cfg.Player.GameOverDelay + cfg.Player.RestartDelay
	for range int(gate/cfg.Physics.FixedStep) + 2 {
		UpdateDeaths(tw.ecs)
	}
	assert.Equal(t, components.StatusGameOver, tw.game().Status)

	tw.input.Tap(cfg.ActionJump)
	UpdateDeaths(tw.ecs)
	assert.Equal(t, components.TransitionRetry, tw.game().Pending)
}

func TestUpdateVictory_FinishLine(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 1)

	UpdateVictory(tw.ecs)
	assert.False(t, tw.level.Victory())

	components.Body.Get(pe).X = 19
	UpdateVictory(tw.ecs)
	require.True(t, tw.level.Victory())
	assert.Equal(t, components.StatusVictory, tw.game().Status)
	assert.Equal(t, 1, tw.rec.Played(cfg.SoundVictory))
	panel, _ := tw.rec.LastPanel()
	assert.Equal(t, "VICTORY", panel.Text, "field has no successor")

	tw.input.Tap(cfg.ActionAttackPrimary)
	UpdateVictory(tw.ecs)
	tw.input.EndStep()
	assert.Equal(t, components.TransitionNone, tw.game().Pending)

	for range int(cfg.Level.VictoryGate/cfg.Physics.FixedStep) + 2 {
		UpdateVictory(tw.ecs)
	}
	tw.input.Tap(cfg.ActionAttackPrimary)
	UpdateVictory(tw.ecs)
	assert.Equal(t, components.TransitionRestart, tw.game().Pending)
}

func TestUpdateBoss_LocksPlayer(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 0, 1)
	factory.CreateEnemy(tw.ecs, 10, 1, "orcWarlord")

	UpdateBoss(tw.ecs)
	p := components.Player.Get(pe)
	require.True(t, p.Locked)
	assert.Equal(t, 1, tw.rec.Played(cfg.SoundBossRoar))

	components.Body.Get(pe).X = -30
	UpdateBoss(tw.ecs)
	assert.Equal(t, p.LockMin, components.Body.Get(pe).X)
}

func TestCamera_FollowAndShake(t *testing.T) {
	tw := newTestWorld(t)
	pe := factory.CreatePlayer(tw.ecs, 10, 1)
	ce, _ := components.Camera.First(tw.ecs.World)
	camera := components.Camera.Get(ce)

	for range 60 {
		UpdateCamera(tw.ecs, 1.0/60)
	}
	body := components.Body.Get(pe)
	assert.InDelta(t, body.X+cfg.Camera.LeadOffset, camera.Position.X, 1e-3)
	assert.InDelta(t, body.Y+cfg.Camera.Height, camera.Position.Y, 1e-3)

	TriggerScreenShake(tw.ecs, 0.5, 0.2)
	TriggerScreenShake(tw.ecs, 0.1, 1.0)
	assert.Equal(t, 0.5, camera.ShakeIntensity, "weaker shake ignored")

	UpdateCamera(tw.ecs, 1.0/60)
	assert.NotZero(t, camera.ShakeOffset)
	for range 20 {
		UpdateCamera(tw.ecs, 1.0/60)
	}
	assert.Zero(t, camera.ShakeOffset)
	assert.Zero(t, camera.ShakeDuration)
}
