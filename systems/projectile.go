package systems

import (
	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile and removes the ones that hit
// something or left play.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedStep

	var spent []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if combat.StepProjectile(p, dt) || p.Y < cfg.Physics.KillPlaneY {
			spent = append(spent, e)
			return
		}
		if combat.ResolveProjectile(ecs.World, e) {
			spent = append(spent, e)
		}
	})

	out := components.GetIntents(ecs.World)
	for _, e := range spent {
		out.Renderer.Detach(e.Entity())
		ecs.World.Remove(e.Entity())
	}
}
