package intents

import (
	"github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

type ParticleBurst struct {
	Kind  config.ParticleKind
	X, Y  float64
	Count int
	Scale float64
}

type Animation struct {
	ID   donburi.Entity
	Clip string
	Loop bool
}

type FlashEvent struct {
	ID       donburi.Entity
	Color    uint32
	Duration float64
}

type ShakeEvent struct {
	Intensity, Duration float64
}

type ArmorUpdate struct {
	Current, Max int
}

type Panel struct {
	Kind PanelKind
	Text string
}

// Recorder implements Renderer, Audio and HUD by keeping every intent it
// receives, in order. It is what the simulation tests assert against.
type Recorder struct {
	Attached   map[donburi.Entity]string
	Animations []Animation
	Particles  []ParticleBurst
	Flashes    []FlashEvent
	Shakes     []ShakeEvent
	Sounds     []config.SoundID
	Armor      []ArmorUpdate
	BossHealth []float64
	BossBar    bool
	Panels     []Panel
	PanelOpen  bool
}

func NewRecorder() *Recorder {
	return &Recorder{Attached: make(map[donburi.Entity]string)}
}

func (r *Recorder) Attach(id donburi.Entity, visual string) { r.Attached[id] = visual }
func (r *Recorder) Detach(id donburi.Entity)                { delete(r.Attached, id) }

func (r *Recorder) PlayAnimation(id donburi.Entity, clip string, loop bool) {
	r.Animations = append(r.Animations, Animation{ID: id, Clip: clip, Loop: loop})
}

func (r *Recorder) EmitParticles(kind config.ParticleKind, x, y float64, count int, scale float64) {
	r.Particles = append(r.Particles, ParticleBurst{Kind: kind, X: x, Y: y, Count: count, Scale: scale})
}

func (r *Recorder) Flash(id donburi.Entity, color uint32, dur float64) {
	r.Flashes = append(r.Flashes, FlashEvent{ID: id, Color: color, Duration: dur})
}

func (r *Recorder) Shake(intensity, dur float64) {
	r.Shakes = append(r.Shakes, ShakeEvent{Intensity: intensity, Duration: dur})
}

func (r *Recorder) Play(s config.SoundID) { r.Sounds = append(r.Sounds, s) }

func (r *Recorder) SetArmor(n, total int) {
	r.Armor = append(r.Armor, ArmorUpdate{Current: n, Max: total})
}

func (r *Recorder) SetBossHealth(pct float64) { r.BossHealth = append(r.BossHealth, pct) }
func (r *Recorder) ShowBossBar(visible bool)  { r.BossBar = visible }

func (r *Recorder) ShowPanel(kind PanelKind, text string) {
	r.Panels = append(r.Panels, Panel{Kind: kind, Text: text})
	r.PanelOpen = true
}

func (r *Recorder) HidePanel() { r.PanelOpen = false }

// ParticleCount sums the particles emitted of kind.
func (r *Recorder) ParticleCount(kind config.ParticleKind) int {
	n := 0
	for _, p := range r.Particles {
		if p.Kind == kind {
			n += p.Count
		}
	}
	return n
}

// Played counts how often s was played.
func (r *Recorder) Played(s config.SoundID) int {
	n := 0
	for _, got := range r.Sounds {
		if got == s {
			n++
		}
	}
	return n
}

// LastPanel returns the most recent panel shown.
func (r *Recorder) LastPanel() (Panel, bool) {
	if len(r.Panels) == 0 {
		return Panel{}, false
	}
	return r.Panels[len(r.Panels)-1], true
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	*r = *NewRecorder()
}
