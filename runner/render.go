package runner

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	particleLife    = 0.6
	particleSpeed   = 6.0
	particleGravity = 20.0
	particleSize    = 3
)

var (
	colorBG         = color.RGBA{20, 18, 28, 255}
	colorGround     = color.RGBA{70, 64, 80, 255}
	colorPlatform   = color.RGBA{100, 90, 110, 255}
	colorPlayer     = color.RGBA{200, 200, 220, 255}
	colorEnemy      = color.RGBA{140, 180, 90, 255}
	colorBoss       = color.RGBA{200, 80, 60, 255}
	colorProjectile = color.RGBA{255, 210, 120, 255}
	colorCheckpoint = color.RGBA{90, 120, 200, 255}
	colorLit        = color.RGBA{255, 230, 90, 255}
	colorHurtbox    = color.RGBA{0, 255, 255, 160}
	colorHitbox     = color.RGBA{255, 60, 60, 200}
)

var particleColors = map[cfg.ParticleKind]color.RGBA{
	cfg.ParticleBlood:      {170, 20, 20, 255},
	cfg.ParticleGreenBlood: {60, 170, 40, 255},
	cfg.ParticleBone:       {230, 225, 200, 255},
	cfg.ParticleArmor:      {150, 150, 160, 255},
	cfg.ParticleSpark:      {255, 240, 150, 255},
	cfg.ParticleHit:        {255, 255, 255, 255},
}

type flash struct {
	color     color.RGBA
	remaining float64
}

type particle struct {
	kind   cfg.ParticleKind
	x, y   float64
	vx, vy float64
	life   float64
	scale  float64
}

// Renderer draws the world as flat shapes and keeps the transient visual
// state the simulation asks for.
type Renderer struct {
	visuals   map[donburi.Entity]string
	clips     map[donburi.Entity]string
	flashes   map[donburi.Entity]flash
	particles []particle
	rng       *rand.Rand

	// Debug draws hurtboxes, the heavy hitbox and state labels.
	Debug bool
}

func NewRenderer(seed uint64) *Renderer {
	return &Renderer{
		visuals: make(map[donburi.Entity]string),
		clips:   make(map[donburi.Entity]string),
		flashes: make(map[donburi.Entity]flash),
		rng:     rand.New(rand.NewPCG(seed, 0)),
	}
}

func (r *Renderer) Attach(id donburi.Entity, visual string) { r.visuals[id] = visual }

func (r *Renderer) Detach(id donburi.Entity) {
	delete(r.visuals, id)
	delete(r.clips, id)
	delete(r.flashes, id)
}

func (r *Renderer) PlayAnimation(id donburi.Entity, clip string, _ bool) { r.clips[id] = clip }

func (r *Renderer) EmitParticles(kind cfg.ParticleKind, x, y float64, count int, scale float64) {
	for range count {
		angle := r.rng.Float64() * math.Pi
		speed := particleSpeed * (0.5 + r.rng.Float64()) * math.Sqrt(scale)
		r.particles = append(r.particles, particle{
			kind:  kind,
			x:     x,
			y:     y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			life:  particleLife,
			scale: scale,
		})
	}
}

func (r *Renderer) Flash(id donburi.Entity, c uint32, dur float64) {
	r.flashes[id] = flash{color: rgb(c), remaining: dur}
}

// Shake is applied to the camera by the session.
func (r *Renderer) Shake(float64, float64) {}

// Update ages flashes and particles by one rendered frame.
func (r *Renderer) Update(dt float64) {
	for id, f := range r.flashes {
		f.remaining -= dt
		if f.remaining <= 0 {
			delete(r.flashes, id)
			continue
		}
		r.flashes[id] = f
	}

	live := r.particles[:0]
	for _, p := range r.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.vy -= particleGravity * dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		live = append(live, p)
	}
	r.particles = live
}

// view converts world units (y up) to screen pixels around the camera.
type view struct {
	cam           dmath.Vec2
	width, height float64
	scale         float64
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x-v.cam.X)*v.scale + v.width/2), float32(v.height/2 - (y-v.cam.Y)*v.scale)
}

func (v view) rect(b geometry.Box) (x, y, w, h float32) {
	x, y = v.point(b.MinX, b.MaxY)
	return x, y, float32(b.Width() * v.scale), float32(b.Height() * v.scale)
}

// Draw renders level geometry, checkpoints, bodies, projectiles and
// particles in that order.
func (r *Renderer) Draw(screen *ebiten.Image, w donburi.World, scale float64) {
	screen.Fill(colorBG)

	v := view{
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
		scale:  scale,
	}
	if ce, ok := components.Camera.First(w); ok {
		v.cam = components.Camera.Get(ce).View()
	}

	for _, c := range entity.Index(w).Colliders() {
		clr := colorPlatform
		if c.Kind == geometry.KindGround {
			clr = colorGround
		}
		x, y, bw, bh := v.rect(c.Box)
		vector.FillRect(screen, x, y, bw, bh, clr, false)
	}

	tags.Checkpoint.Each(w, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		clr := colorCheckpoint
		if cp.Activated {
			clr = colorLit
		}
		x, y, bw, bh := v.rect(geometry.FeetBox(cp.X, cp.Y, 0.3, 1.5))
		vector.FillRect(screen, x, y, bw, bh, r.tint(e.Entity(), clr), false)
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		clr := colorEnemy
		if e.HasComponent(components.Boss) {
			clr = colorBoss
		}
		r.drawBody(screen, v, e, clr)
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		r.drawBody(screen, v, e, colorPlayer)
		if r.Debug && components.Brain.Get(e).Is(cfg.StateAttackHeavy) {
			x, y, bw, bh := v.rect(combat.HeavyHitbox(components.Body.Get(e)))
			vector.StrokeRect(screen, x, y, bw, bh, 1, colorHitbox, false)
		}
	})

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		x, y, bw, bh := v.rect(components.Projectile.Get(e).Box())
		vector.FillRect(screen, x, y, bw, bh, colorProjectile, false)
	})

	for _, p := range r.particles {
		x, y := v.point(p.x, p.y)
		size := float32(particleSize * math.Max(1, p.scale/2))
		vector.FillRect(screen, x, y, size, size, particleColors[p.kind], false)
	}
}

func (r *Renderer) drawBody(screen *ebiten.Image, v view, e *donburi.Entry, clr color.RGBA) {
	body := components.Body.Get(e)
	box := body.Hurtbox()
	x, y, bw, bh := v.rect(box)
	vector.FillRect(screen, x, y, bw, bh, r.tint(e.Entity(), clr), false)

	// Facing notch at head height.
	nx, ny := v.point(box.CenterX()+body.Facing*box.Width()/2, box.MaxY-box.Height()/4)
	vector.FillRect(screen, nx-2, ny-2, 4, 4, colorBG, false)

	if !r.Debug {
		return
	}
	vector.StrokeRect(screen, x, y, bw, bh, 1, colorHurtbox, false)
	label := components.Brain.Get(e).Current()
	if clip, ok := r.clips[e.Entity()]; ok {
		label = fmt.Sprintf("%s/%s", label, clip)
	}
	ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-16)
}

// tint returns the flash color while one is running on id.
func (r *Renderer) tint(id donburi.Entity, base color.RGBA) color.RGBA {
	if f, ok := r.flashes[id]; ok {
		return f.color
	}
	return base
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}
