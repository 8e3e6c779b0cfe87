package combat

import (
	"math"

	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/yohamta/donburi"
)

const (
	heavyHitParticles = 12
	heavyHitScale     = 2
)

// HeavyHitbox is the swing area in front of body.
func HeavyHitbox(body *components.BodyData) geometry.Box {
	h := cfg.Attacks.Heavy
	return geometry.BoxAt(body.X+h.OffsetX*body.Facing, body.Y+h.OffsetY, h.HitboxWidth, h.HitboxHeight)
}

// ResolveHeavy tests the attacker's swing against every active enemy and
// hits each one at most once for atk. It returns the number of new hits.
func ResolveHeavy(w donburi.World, attacker *donburi.Entry, atk *AttackInstance) int {
	body := components.Body.Get(attacker)
	box := HeavyHitbox(body)
	out := components.GetIntents(w)
	h := cfg.Attacks.Heavy
	srcX := body.X

	hits := 0
	for _, e := range entity.ActiveEnemies(w) {
		eb := components.Body.Get(e)
		if !box.Intersects(eb.Hurtbox()) || !atk.TryHit(e.Entity()) {
			continue
		}
		hits++

		entity.DamageEnemy(w, e, h.Damage, &srcX)
		eb.VX = body.Facing * h.Knockback
		eb.VY = h.KnockbackUp
		eb.Grounded = false

		out.Renderer.EmitParticles(cfg.ParticleHit, eb.X, eb.Y+eb.Height/2, heavyHitParticles, heavyHitScale)
		out.Renderer.Shake(cfg.Camera.ShakeHeavy, cfg.Camera.ShakeTimeHit)
	}
	return hits
}

// StrikeReach reports whether a forward strike from attacker lands on
// target: within reach along the facing direction and within maxDY
// vertically.
func StrikeReach(attacker, target *components.BodyData, reach, maxDY float64) bool {
	dx := target.X - attacker.X
	if dx == 0 || (dx > 0) != attacker.FacingRight() {
		return false
	}
	return math.Abs(dx) < reach && math.Abs(target.Y-attacker.Y) < maxDY
}
