package combat

import (
	"github.com/automoto/ghouls-n-orcs/archetypes"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	projectileHitParticles = 8
	projectileHitScale     = 1.5
)

// Launch returns the initial velocity and gravity of a weapon thrown in
// direction dir.
func Launch(wc cfg.WeaponConfig, dir float64) (vx, vy, gravity float64) {
	switch wc.Trajectory {
	case cfg.TrajectoryArc:
		return wc.Speed * dir, wc.ArcHeight * cfg.Projectile.ArcLiftScale, cfg.Projectile.Gravity
	case cfg.TrajectoryLob:
		return wc.Speed * cfg.Projectile.LobSpeedScale * dir, cfg.Projectile.LobLift, cfg.Projectile.Gravity
	default:
		return wc.Speed * dir, 0, 0
	}
}

// SpawnProjectile creates a weapon in flight at (x, y) heading in dir.
func SpawnProjectile(ecs *ecs.ECS, weapon string, x, y, dir float64, owner components.Owner) *donburi.Entry {
	wc := cfg.Weapons[weapon]
	vx, vy, g := Launch(wc, dir)

	e := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(e, components.ProjectileData{
		Mover:      geometry.Mover{X: x, Y: y, VX: vx, VY: vy},
		Owner:      owner,
		Weapon:     weapon,
		Trajectory: wc.Trajectory,
		Damage:     wc.Damage,
		Gravity:    g,
		LifeTime:   cfg.Projectile.LifeTime,
		Width:      cfg.Projectile.Width,
		Height:     cfg.Projectile.Height,
	})
	components.GetIntents(ecs.World).Renderer.Attach(e.Entity(), "projectile:"+weapon)
	return e
}

// LiveProjectiles counts the projectiles in flight thrown by owner.
func LiveProjectiles(w donburi.World, owner components.Owner) int {
	n := 0
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Owner == owner {
			n++
		}
	})
	return n
}

// EquippedWeapon is the inventory key the player currently throws.
func EquippedWeapon(p *components.PlayerData) string {
	inv := cfg.Player.Inventory
	if len(inv) == 0 {
		return ""
	}
	return inv[((p.Weapon%len(inv))+len(inv))%len(inv)]
}

// CycleWeapon moves the equipped weapon by step through the inventory.
func CycleWeapon(w donburi.World, p *components.PlayerData, step int) string {
	n := len(cfg.Player.Inventory)
	if n == 0 {
		return ""
	}
	p.Weapon = ((p.Weapon+step)%n + n) % n
	components.GetIntents(w).Audio.Play(cfg.SoundSwitch)
	return EquippedWeapon(p)
}

// TryThrow throws the player's equipped weapon. The throw is refused while
// the weapon is cooling down or the on-screen cap is reached.
func TryThrow(ecs *ecs.ECS, player *donburi.Entry) bool {
	p := components.Player.Get(player)
	if p.ThrowCooldown > 0 {
		return false
	}
	if LiveProjectiles(ecs.World, components.OwnerPlayer) >= cfg.Attacks.Throw.MaxOnScreen {
		return false
	}
	weapon := EquippedWeapon(p)
	wc, ok := cfg.Weapons[weapon]
	if !ok {
		return false
	}

	body := components.Body.Get(player)
	t := cfg.Attacks.Throw
	SpawnProjectile(ecs, weapon, body.X+t.SpawnOffsetX*body.Facing, body.Y+t.SpawnOffsetY, body.Facing, components.OwnerPlayer)
	p.ThrowCooldown = wc.FireRate
	components.GetIntents(ecs.World).Audio.Play(cfg.SoundThrow)
	return true
}

// StepProjectile integrates one projectile over dt. It reports whether the
// projectile has left play, either by age or by dropping past its floor.
func StepProjectile(p *components.ProjectileData, dt float64) bool {
	p.Age += dt
	p.VY -= p.Gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	return p.Expired() || p.Y < cfg.Projectile.FloorY
}

// ResolveProjectile checks a projectile against whoever it can hurt. It
// reports whether the projectile hit something and should be removed.
func ResolveProjectile(w donburi.World, e *donburi.Entry) bool {
	p := components.Projectile.Get(e)
	box := p.Box()
	out := components.GetIntents(w)

	switch p.Owner {
	case components.OwnerPlayer:
		for _, enemy := range entity.ActiveEnemies(w) {
			eb := components.Body.Get(enemy)
			if !box.Intersects(eb.Hurtbox()) {
				continue
			}
			out.Renderer.EmitParticles(cfg.ParticleBlood, eb.X, eb.Y, projectileHitParticles, projectileHitScale)
			out.Renderer.Shake(cfg.Camera.ShakeHit, cfg.Camera.ShakeTimeHit)
			src := p.X
			entity.DamageEnemy(w, enemy, p.Damage, &src)
			return true
		}
	case components.OwnerEnemy:
		pe, ok := entity.Player(w)
		if !ok || !entity.Alive(pe) {
			return false
		}
		if box.Intersects(components.Body.Get(pe).Hurtbox()) {
			entity.DamagePlayer(w, pe, p.Damage)
			return true
		}
	}
	return false
}
