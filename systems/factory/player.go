package factory

import (
	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	playerai "github.com/automoto/ghouls-n-orcs/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Body.SetValue(player, components.BodyData{
		Facing:  1,
		Gravity: cfg.Player.Gravity,
		MaxFall: cfg.Player.MaxFallSpeed,
		Width:   cfg.Player.HurtWidth,
		Height:  cfg.Player.HurtHeight,
	})
	body := components.Body.Get(player)
	body.X, body.Y = x, y

	components.Player.SetValue(player, components.PlayerData{
		RespawnX: x,
		RespawnY: y,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxArmor,
		Max:     cfg.Player.MaxArmor,
	})
	components.Brain.SetValue(player, components.BrainData{
		Machine: playerai.NewBrain(ecs, player),
	})

	out := components.GetIntents(ecs.World)
	out.Renderer.Attach(player.Entity(), "player")
	out.HUD.SetArmor(cfg.Player.MaxArmor, cfg.Player.MaxArmor)

	return player
}
