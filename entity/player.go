package entity

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/yohamta/donburi"
)

const hurtFlash = 0.2

// DamagePlayer applies amount to the player. It does nothing while the
// player is invincible or already at zero health. A surviving player is
// knocked back and given a window of invincibility; otherwise the death
// sequence starts. It reports whether damage was applied.
func DamagePlayer(w donburi.World, e *donburi.Entry, amount int) bool {
	hp := components.Health.Get(e)
	if hp.IsInvincible() || hp.Current <= 0 || !Alive(e) {
		return false
	}

	body := components.Body.Get(e)
	out := components.GetIntents(w)

	hp.Remove(amount)
	out.Audio.Play(cfg.SoundHit)
	out.HUD.SetArmor(hp.Current, hp.Max)
	out.Renderer.Flash(e.Entity(), cfg.FlashHurt, hurtFlash)
	logger.Debug("player hit", "amount", amount, "health", hp.Current)

	if shards, ok := cfg.Player.ArmorShardCounts[hp.Current]; ok && hp.Current > 0 {
		out.Renderer.EmitParticles(cfg.ParticleArmor, body.X, body.Y+body.Height*0.8, shards, 2)
		out.Audio.Play(cfg.SoundArmorBreak)
	}

	if hp.Current <= 0 {
		killPlayer(w, e)
		return true
	}

	hp.Invincible = cfg.Player.InvincibleTime
	body.VY = cfg.Player.KnockbackY
	body.VX = -cfg.Player.KnockbackX * body.Facing
	body.Grounded = false
	components.Brain.Get(e).ChangeState(cfg.StateJumpFall)
	return true
}

// KillPlayer ends the player's run regardless of invincibility. The kill
// plane uses it.
func KillPlayer(w donburi.World, e *donburi.Entry) {
	if !Alive(e) {
		return
	}
	hp := components.Health.Get(e)
	hp.Current = 0
	components.GetIntents(w).HUD.SetArmor(0, hp.Max)
	killPlayer(w, e)
}

func killPlayer(w donburi.World, e *donburi.Entry) {
	life := components.Life.Get(e)
	if !life.Active() {
		return
	}
	life.State = components.LifeDying

	p := components.Player.Get(e)
	p.DeathTimer = 0
	p.GameOverShown = false
	p.CanRestart = false

	body := components.Body.Get(e)
	body.VX, body.VY = 0, 0

	components.Brain.Get(e).ChangeState(cfg.StateDeath)
	components.GetIntents(w).Audio.Play(cfg.SoundDeath)
	logger.Info("player died", "x", body.X, "y", body.Y)
}

// TickPlayerDeath advances the death countdown. The game-over panel shows
// after the first delay and restart input is accepted after the second.
// It reports whether restart is now accepted.
func TickPlayerDeath(w donburi.World, e *donburi.Entry, dt float64) bool {
	if components.Life.Get(e).Active() {
		return false
	}
	p := components.Player.Get(e)
	p.DeathTimer += dt

	if !p.GameOverShown && p.DeathTimer >= cfg.Player.GameOverDelay {
		p.GameOverShown = true
		components.GetIntents(w).HUD.ShowPanel(intents.PanelGameOver, "GAME OVER")
		if g, ok := components.Game.First(w); ok {
			components.Game.Get(g).Status = components.StatusGameOver
		}
	}
	if p.GameOverShown && p.DeathTimer >= cfg.Player.GameOverDelay+cfg.Player.RestartDelay {
		p.CanRestart = true
	}
	return p.CanRestart
}

// ResetPlayer puts the player back at (x, y) with full health and no
// lingering death or arena state.
func ResetPlayer(w donburi.World, e *donburi.Entry, x, y float64) {
	hp := components.Health.Get(e)
	hp.Current = hp.Max
	hp.Invincible = 0

	life := components.Life.Get(e)
	life.State = components.LifeActive
	life.RemoveIn = 0

	body := components.Body.Get(e)
	body.X, body.Y = x, y
	body.VX, body.VY = 0, 0
	body.Facing = 1
	body.Grounded = false

	p := components.Player.Get(e)
	p.DeathTimer = 0
	p.GameOverShown = false
	p.CanRestart = false
	p.ThrowCooldown = 0
	p.Locked = false

	components.Brain.Get(e).ChangeState(cfg.StateIdle)
	components.GetIntents(w).HUD.SetArmor(hp.Current, hp.Max)
}
