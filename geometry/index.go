package geometry

import (
	"math"
	"sort"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/solarlune/resolv"
)

const (
	tagCollider = "collider"
	tagQuery    = "query"

	// spaceMargin pads the broad phase around the level so queries just off the
	// edges still land in valid cells.
	spaceMargin = 32.0

	// pixelsPerUnit scales world units into resolv space. resolv bins an
	// object by its pixel span [X, X+W-1], so every rectangle is also padded
	// by one pixel on each side to keep sub-pixel edges in the right cells.
	pixelsPerUnit = 16
)

// Index stores the colliders of the loaded level. Candidate lookups go
// through a resolv Space; every answer is confirmed with an exact box test.
type Index struct {
	colliders []Collider
	bounds    Box
	space     *resolv.Space
	cursor    *resolv.Object
	originX   float64
	originY   float64
}

// NewIndex builds an index over colliders. The slice order is kept and is
// the order wall resolution walks.
func NewIndex(colliders []Collider) *Index {
	ix := &Index{colliders: append([]Collider(nil), colliders...)}

	if len(colliders) == 0 {
		return ix
	}

	ix.bounds = colliders[0].Box
	for _, c := range colliders[1:] {
		ix.bounds.MinX = min(ix.bounds.MinX, c.MinX)
		ix.bounds.MaxX = max(ix.bounds.MaxX, c.MaxX)
		ix.bounds.MinY = min(ix.bounds.MinY, c.MinY)
		ix.bounds.MaxY = max(ix.bounds.MaxY, c.MaxY)
	}

	cell := cfg.Collision.SpaceCellSize
	if cell <= 0 {
		cell = 2
	}
	ix.originX = ix.bounds.MinX - spaceMargin
	ix.originY = ix.bounds.MinY - spaceMargin
	cellPx := cell * pixelsPerUnit
	w := cellSpan((ix.bounds.Width()+2*spaceMargin)*pixelsPerUnit, cellPx)
	h := cellSpan((ix.bounds.Height()+2*spaceMargin)*pixelsPerUnit, cellPx)
	ix.space = resolv.NewSpace(w, h, cellPx, cellPx)

	for i, c := range ix.colliders {
		x, y, bw, bh := ix.toSpace(c.Box)
		obj := resolv.NewObject(x, y, bw, bh, tagCollider, string(c.Kind))
		obj.Data = i
		ix.space.Add(obj)
	}

	ix.cursor = resolv.NewObject(0, 0, 1, 1, tagQuery)
	ix.space.Add(ix.cursor)

	return ix
}

func cellSpan(extent float64, cell int) int {
	n := int(math.Ceil(extent / float64(cell)))
	if n < 1 {
		n = 1
	}
	return n * cell
}

// Colliders returns the colliders in level order. Callers must not modify it.
func (ix *Index) Colliders() []Collider {
	return ix.colliders
}

// Bounds returns the box enclosing every collider.
func (ix *Index) Bounds() Box {
	return ix.bounds
}

// Empty reports whether the index holds no geometry.
func (ix *Index) Empty() bool {
	return len(ix.colliders) == 0
}

// RightmostEdge returns the largest MaxX of any collider.
func (ix *Index) RightmostEdge() (float64, bool) {
	if ix.Empty() {
		return 0, false
	}
	return ix.bounds.MaxX, true
}

// Query returns the indices of colliders intersecting area, in level order.
func (ix *Index) Query(area Box) []int {
	if ix.space == nil || !area.Intersects(ix.bounds) {
		return nil
	}

	ix.cursor.X, ix.cursor.Y, ix.cursor.W, ix.cursor.H = ix.toSpace(area)

	check := ix.cursor.Check(0, 0, tagCollider)
	if check == nil {
		return nil
	}

	var hits []int
	for _, obj := range check.ObjectsByTags(tagCollider) {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if ix.colliders[i].Intersects(area) {
			hits = append(hits, i)
		}
	}
	sort.Ints(hits)
	return hits
}

// toSpace converts b to a padded pixel rectangle in resolv space.
func (ix *Index) toSpace(b Box) (x, y, w, h float64) {
	x = (b.MinX-ix.originX)*pixelsPerUnit - 1
	y = (b.MinY-ix.originY)*pixelsPerUnit - 1
	w = b.Width()*pixelsPerUnit + 2
	h = b.Height()*pixelsPerUnit + 2
	return x, y, w, h
}

// column is a full-height box one hair wide at x.
func (ix *Index) column(x float64) Box {
	return Box{MinX: x, MaxX: x, MinY: ix.bounds.MinY, MaxY: ix.bounds.MaxY}
}

// GroundBelow returns the collider whose [MinX, MaxX] contains x with the
// highest top surface. ok is false when nothing spans x.
func (ix *Index) GroundBelow(x float64) (c Collider, ok bool) {
	for _, i := range ix.Query(ix.column(x)) {
		cand := ix.colliders[i]
		if !cand.ContainsX(x) {
			continue
		}
		if !ok || cand.MaxY > c.MaxY {
			c, ok = cand, true
		}
	}
	return c, ok
}

// SurfaceUnder returns the highest collider spanning x whose top is not
// above y by more than the landing tolerance. It answers "what would I land
// on from here" for ledge checks.
func (ix *Index) SurfaceUnder(x, y float64) (c Collider, ok bool) {
	limit := y + cfg.Collision.SnapBelow
	for _, i := range ix.Query(ix.column(x)) {
		cand := ix.colliders[i]
		if !cand.ContainsX(x) || cand.MaxY > limit {
			continue
		}
		if !ok || cand.MaxY > c.MaxY {
			c, ok = cand, true
		}
	}
	return c, ok
}

// IsLedge reports whether walking to x from feet height y would drop more
// than maxDrop, or find no ground at all.
func (ix *Index) IsLedge(x, y, maxDrop float64) bool {
	ground, ok := ix.SurfaceUnder(x, y)
	if !ok {
		return true
	}
	return y-ground.MaxY > maxDrop
}

// ResolveGround lands m on a top surface when its feet are inside the snap
// band. It only acts while m is not moving upward. When several surfaces
// qualify the highest one wins.
func (ix *Index) ResolveGround(m *Mover) bool {
	if m.VY > 0 {
		return false
	}

	hw := cfg.Collision.GroundHalfWidth
	band := Box{
		MinX: m.X - hw,
		MaxX: m.X + hw,
		MinY: m.Y - cfg.Collision.SnapAbove,
		MaxY: m.Y + cfg.Collision.SnapBelow,
	}

	var best Collider
	found := false
	for _, i := range ix.Query(band) {
		c := ix.colliders[i]
		yDiff := m.Y - c.MaxY
		if yDiff < -cfg.Collision.SnapBelow || yDiff >= cfg.Collision.SnapAbove {
			continue
		}
		if !found || c.MaxY > best.MaxY {
			best, found = c, true
		}
	}

	if !found {
		return false
	}
	m.Y = best.MaxY
	m.VY = 0
	return true
}

// ResolveWalls pushes m out of any collider its side box overlaps
// horizontally. The side box is narrower than the body and starts above the
// feet so the floor never reads as a wall. Colliders are handled one at a
// time in level order. It reports whether any wall was hit.
func (ix *Index) ResolveWalls(m *Mover, height float64) bool {
	hw := cfg.Collision.WallHalfWidth
	hit := false

	for _, i := range ix.Query(ix.sideBox(m, height)) {
		c := ix.colliders[i]
		side := ix.sideBox(m, height)
		ox, oy := side.Overlap(c.Box)
		if ox == 0 || ox >= oy || oy <= cfg.Collision.WallMinVerticalOverlap {
			continue
		}

		if m.X < c.CenterX() {
			m.X = c.MinX - hw - cfg.Collision.WallPushMargin
		} else {
			m.X = c.MaxX + hw + cfg.Collision.WallPushMargin
		}
		m.VX = 0
		hit = true
	}
	return hit
}

func (ix *Index) sideBox(m *Mover, height float64) Box {
	hw := cfg.Collision.WallHalfWidth
	return Box{
		MinX: m.X - hw,
		MaxX: m.X + hw,
		MinY: m.Y + cfg.Collision.WallFloorClearance,
		MaxY: m.Y + height,
	}
}
