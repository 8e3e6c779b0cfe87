// Package geometry holds the static level colliders and answers the ground,
// surface and wall queries the integrator and AI make every tick.
package geometry

// Kind tags a collider as solid ground or a thinner platform.
type Kind string

const (
	KindGround   Kind = "ground"
	KindPlatform Kind = "platform"
)

// Box is an axis-aligned box in world units with y pointing up.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoxAt builds a box from a centre point and full extents.
func BoxAt(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MaxX: cx + w/2,
		MinY: cy - h/2,
		MaxY: cy + h/2,
	}
}

// FeetBox builds a box standing on (x, y) with the given width and height.
func FeetBox(x, y, w, h float64) Box {
	return Box{
		MinX: x - w/2,
		MaxX: x + w/2,
		MinY: y,
		MaxY: y + h,
	}
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

func (b Box) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }
func (b Box) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Intersects reports whether b and o share any area. Touching edges count.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Overlap returns the penetration depth on each axis, or zeros if the boxes
// are apart.
func (b Box) Overlap(o Box) (x, y float64) {
	x = min(b.MaxX, o.MaxX) - max(b.MinX, o.MinX)
	y = min(b.MaxY, o.MaxY) - max(b.MinY, o.MinY)
	if x <= 0 || y <= 0 {
		return 0, 0
	}
	return x, y
}

// Shrink returns b inset by d on every side.
func (b Box) Shrink(d float64) Box {
	return Box{MinX: b.MinX + d, MaxX: b.MaxX - d, MinY: b.MinY + d, MaxY: b.MaxY - d}
}

// ContainsX reports whether x lies inside [MinX, MaxX].
func (b Box) ContainsX(x float64) bool {
	return x >= b.MinX && x <= b.MaxX
}

// Collider is one static piece of level geometry.
type Collider struct {
	Box
	Kind Kind
}

// Mover is the kinematic state that the resolvers read and correct.
// X, Y is the bottom-centre of the body.
type Mover struct {
	X, Y   float64
	VX, VY float64
}
