package systems

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every body by one fixed step and applies the
// kill plane.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedStep
	ix := entity.Index(ecs.World)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		integrate(ix, body, dt)
		body.Face(body.VX)
		if body.Y < cfg.Physics.KillPlaneY {
			entity.KillPlayer(ecs.World, e)
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		integrate(ix, body, dt)
		if body.Y < cfg.Physics.KillPlaneY {
			entity.Die(ecs.World, e)
		}
	})
}

// integrate applies gravity, then moves and resolves Y before X.
func integrate(ix *geometry.Index, body *components.BodyData, dt float64) {
	if !body.Flying && !body.Grounded {
		g := body.Gravity
		if g == 0 {
			g = cfg.Physics.Gravity
		}
		maxFall := body.MaxFall
		if maxFall == 0 {
			maxFall = cfg.Physics.TerminalFall
		}
		body.VY = max(body.VY-g*dt, -maxFall)
	}

	body.Y += body.VY * dt
	if !body.Flying {
		body.Grounded = ix.ResolveGround(&body.Mover)
	}

	body.X += body.VX * dt
	body.WallHit = false
	if !body.Flying {
		body.WallHit = ix.ResolveWalls(&body.Mover, body.Height)
	}
}
