package factory

import (
	"math/rand/v2"

	"github.com/automoto/ghouls-n-orcs/ai"
	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/logging"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = logging.New("factory")

// fallbackEnemy is spawned for type names missing from the enemy table.
const fallbackEnemy = "ghoulShambling"

// CreateEnemy spawns an enemy of typeName standing on (x, y), facing left.
// Bosses also get their arena and reveal the boss bar.
func CreateEnemy(ecs *ecs.ECS, x, y float64, typeName string) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		logger.Warn("unknown enemy type", "type", typeName, "fallback", fallbackEnemy)
		typeName = fallbackEnemy
		enemyType = cfg.Enemy.Types[typeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs, tags.ForArchetype(enemyType.Archetype))

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   typeName,
		TypeConfig: &enemyType,
		SpawnX:     x,
	})
	components.Body.SetValue(enemy, components.BodyData{
		Facing:  -1,
		Gravity: cfg.Physics.Gravity,
		MaxFall: cfg.Physics.TerminalFall,
		Flying:  enemyType.IsFlying,
		Width:   enemyType.Width,
		Height:  enemyType.Height,
	})
	body := components.Body.Get(enemy)
	body.X, body.Y = x, y

	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	out := components.GetIntents(ecs.World)
	if enemyType.IsBoss {
		enemy.AddComponent(components.Boss)
		components.Boss.SetValue(enemy, entity.NewArena(x))
		out.HUD.ShowBossBar(true)
		out.HUD.SetBossHealth(100)
	}

	components.Brain.SetValue(enemy, components.BrainData{
		Machine: ai.NewBrain(ecs.World, enemy, roller(ecs.World)),
	})
	out.Renderer.Attach(enemy.Entity(), "enemy:"+typeName)

	logger.Debug("enemy spawned", "type", typeName, "x", x, "y", y)
	return enemy
}

// roller is the session RNG, or a fixed-seed one outside a session.
func roller(w donburi.World) ai.Roller {
	if g, ok := components.Game.First(w); ok {
		if r := components.Game.Get(g).Rand; r != nil {
			return r
		}
	}
	return rand.New(rand.NewPCG(1, 2))
}
