package entity

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

const (
	hitFlash    = 0.1
	sparkCount  = 5
	boneScale   = 1.0
	armorScale  = 1.5
	shieldReach = 0.5
)

// Blocks reports whether a shielded enemy turns aside a hit coming from
// srcX. The shield only covers the facing side, and only while the enemy is
// advancing with it raised.
func Blocks(e *donburi.Entry, srcX float64) bool {
	enemy := components.Enemy.Get(e)
	if enemy.TypeConfig == nil || !enemy.TypeConfig.HasShield {
		return false
	}
	if !components.Brain.Get(e).Is(cfg.StateApproach) {
		return false
	}
	body := components.Body.Get(e)
	toSource := srcX - body.X
	return (body.FacingRight() && toSource > 0) || (!body.FacingRight() && toSource < 0)
}

// DamageEnemy applies amount to an enemy. src is the x of the attack
// source, or nil when the hit has no direction. It reports whether any
// damage was dealt.
func DamageEnemy(w donburi.World, e *donburi.Entry, amount int, src *float64) bool {
	if !Alive(e) {
		return false
	}
	out := components.GetIntents(w)
	body := components.Body.Get(e)
	enemy := components.Enemy.Get(e)

	if src != nil && Blocks(e, *src) {
		out.Renderer.EmitParticles(cfg.ParticleSpark, body.X+shieldReach*body.Facing, body.Y+1, sparkCount, 1)
		out.Audio.Play(cfg.SoundClang)
		logger.Debug("hit blocked", "enemy", enemy.TypeName)
		return false
	}

	hp := components.Health.Get(e)
	hp.Remove(amount)
	out.Renderer.Flash(e.Entity(), cfg.FlashWhite, hitFlash)
	out.Audio.Play(cfg.SoundEnemyHit)

	if e.HasComponent(components.Boss) {
		enemy.Aggro = true
		out.HUD.SetBossHealth(hp.Percent())
	}

	if hp.Current <= 0 {
		Die(w, e)
	}
	return true
}

// Die starts an enemy's death sequence. Calling it again is a no-op.
func Die(w donburi.World, e *donburi.Entry) {
	life := components.Life.Get(e)
	if !life.Active() {
		return
	}

	enemy := components.Enemy.Get(e)
	tc := enemy.TypeConfig
	body := components.Body.Get(e)
	out := components.GetIntents(w)

	life.State = components.LifeDying
	life.RemoveIn = tc.RemoveTime
	enemy.ShieldRaised = false

	cx, cy := body.X, body.Y+body.Height/2
	out.Renderer.EmitParticles(tc.BloodKind, cx, cy, tc.BloodCount, tc.BloodScale)
	out.Renderer.EmitParticles(cfg.ParticleBone, cx, cy, cfg.Enemy.BoneCount, boneScale)
	if tc.Archetype == cfg.ArchetypeOrc || tc.Archetype == cfg.ArchetypeBoss {
		out.Renderer.EmitParticles(cfg.ParticleArmor, cx, cy, cfg.Enemy.ArmorScrapCount, armorScale)
	}
	out.Audio.Play(cfg.SoundEnemyDeath)

	// Flyers drop out of the sky.
	body.Flying = false
	body.Grounded = false
	body.VX = 0

	components.Brain.Get(e).ChangeState(cfg.StateDeath)
	logger.Debug("enemy died", "enemy", enemy.TypeName, "x", body.X)
}
