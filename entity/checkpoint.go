package entity

import (
	"math"

	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

// TryActivateCheckpoint saves cp as the player's respawn point when the
// player stands close enough to it. Each checkpoint activates once.
func TryActivateCheckpoint(w donburi.World, cp, player *donburi.Entry) bool {
	c := components.Checkpoint.Get(cp)
	if c.Activated || !Alive(player) {
		return false
	}
	body := components.Body.Get(player)
	if math.Hypot(body.X-c.X, body.Y-c.Y) >= cfg.Level.CheckpointDist {
		return false
	}

	c.Activated = true
	p := components.Player.Get(player)
	p.RespawnX, p.RespawnY = c.X, c.Y
	p.HasCheckpoint = true

	out := components.GetIntents(w)
	out.Audio.Play(cfg.SoundCheckpoint)
	out.Renderer.Flash(cp.Entity(), cfg.FlashYellow, hitFlash)
	logger.Info("checkpoint", "x", c.X, "y", c.Y)
	return true
}
