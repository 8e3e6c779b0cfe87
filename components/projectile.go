package components

import (
	"github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/yohamta/donburi"
)

// Owner is who threw a projectile, and so who it can hurt.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// ProjectileData is a thrown weapon in flight. Position is its centre.
type ProjectileData struct {
	geometry.Mover
	Owner      Owner
	Weapon     string
	Trajectory config.Trajectory
	Damage     int
	Gravity    float64
	Age        float64
	LifeTime   float64
	Width      float64
	Height     float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

func (p *ProjectileData) Box() geometry.Box {
	return geometry.BoxAt(p.X, p.Y, p.Width, p.Height)
}

// Expired reports whether the projectile outlived its lifetime.
func (p *ProjectileData) Expired() bool { return p.Age >= p.LifeTime }
