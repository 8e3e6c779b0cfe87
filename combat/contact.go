package combat

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/yohamta/donburi"
)

const (
	contactBlood      = 15
	contactBloodScale = 2
	contactShakeTime  = 0.4
)

// CanDealContact reports whether an enemy's body hurts on touch. Only an
// enemy in the middle of an attack or a swoop does.
func CanDealContact(enemy *donburi.Entry) bool {
	return components.Brain.Get(enemy).Is(cfg.StateAttack, cfg.StateSwoop)
}

// ResolveContact damages the player for each attacking enemy they overlap.
// Both boxes are shrunk slightly first. It reports whether the player was
// hurt.
func ResolveContact(w donburi.World) bool {
	pe, ok := entity.Player(w)
	if !ok || !entity.Alive(pe) {
		return false
	}
	hp := components.Health.Get(pe)
	if hp.IsInvincible() {
		return false
	}

	body := components.Body.Get(pe)
	shrink := cfg.Enemy.ContactShrink
	pbox := body.Hurtbox().Shrink(shrink)
	out := components.GetIntents(w)

	hurt := false
	for _, e := range entity.ActiveEnemies(w) {
		if !CanDealContact(e) {
			continue
		}
		if !pbox.Intersects(components.Body.Get(e).Hurtbox().Shrink(shrink)) {
			continue
		}
		damage := components.Enemy.Get(e).TypeConfig.Damage
		if damage <= 0 {
			damage = 1
		}
		if entity.DamagePlayer(w, pe, damage) {
			out.Renderer.EmitParticles(cfg.ParticleBlood, body.X, body.Y, contactBlood, contactBloodScale)
			out.Renderer.Shake(cfg.Camera.ShakeHurt, contactShakeTime)
			hurt = true
		}
	}
	return hurt
}
