package components

import (
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/yohamta/donburi"
)

// BodyData is the kinematic state of anything that the integrator moves.
// Position is the bottom-centre of the hurtbox.
type BodyData struct {
	geometry.Mover
	Facing   float64 // +1 right, -1 left
	Grounded bool
	Gravity  float64
	MaxFall  float64
	Flying   bool
	Width    float64
	Height   float64
	WallHit  bool // set by the last wall resolve
}

var Body = donburi.NewComponentType[BodyData]()

// Hurtbox is the region that can receive damage.
func (b *BodyData) Hurtbox() geometry.Box {
	return geometry.FeetBox(b.X, b.Y, b.Width, b.Height)
}

func (b *BodyData) FacingRight() bool { return b.Facing >= 0 }

// Face turns toward dx. Zero keeps the current facing.
func (b *BodyData) Face(dx float64) {
	switch {
	case dx > 0:
		b.Facing = 1
	case dx < 0:
		b.Facing = -1
	}
}
