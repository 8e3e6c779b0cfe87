// Package intents defines the surfaces the simulation talks to but does not
// own: rendering, audio, input and the HUD. The core only names what should
// happen; implementations decide how.
package intents

import (
	"github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

// Renderer receives visual intents.
type Renderer interface {
	Attach(id donburi.Entity, visual string)
	Detach(id donburi.Entity)
	PlayAnimation(id donburi.Entity, clip string, loop bool)
	EmitParticles(kind config.ParticleKind, x, y float64, count int, scale float64)
	Flash(id donburi.Entity, color uint32, dur float64)
	Shake(intensity, dur float64)
}

// Audio plays fire-and-forget sound events.
type Audio interface {
	Play(s config.SoundID)
}

// Input is polled once per fixed step over logical actions.
type Input interface {
	IsHeld(a config.ActionID) bool
	IsJustPressed(a config.ActionID) bool
	IsJustReleased(a config.ActionID) bool
	HorizontalAxis() float64
}

// StepLatch is implemented by inputs that keep press edges alive until a
// fixed step has consumed them.
type StepLatch interface {
	EndStep()
}

// PanelKind selects which overlay panel the HUD shows.
type PanelKind string

const (
	PanelVictory  PanelKind = "victory"
	PanelGameOver PanelKind = "game_over"
	PanelPause    PanelKind = "pause"
)

// HUD receives overlay updates.
type HUD interface {
	SetArmor(n, total int)
	SetBossHealth(pct float64)
	ShowBossBar(visible bool)
	ShowPanel(kind PanelKind, text string)
	HidePanel()
}

// Surfaces bundles one implementation of each collaborator.
type Surfaces struct {
	Renderer Renderer
	Audio    Audio
	HUD      HUD
	Input    Input
}

// WithDefaults fills any missing surface with Nop.
func (s Surfaces) WithDefaults() Surfaces {
	if s.Renderer == nil {
		s.Renderer = Nop{}
	}
	if s.Audio == nil {
		s.Audio = Nop{}
	}
	if s.HUD == nil {
		s.HUD = Nop{}
	}
	if s.Input == nil {
		s.Input = Nop{}
	}
	return s
}

// Nop implements every surface and ignores all of it.
type Nop struct{}

func (Nop) Attach(donburi.Entity, string)                                     {}
func (Nop) Detach(donburi.Entity)                                             {}
func (Nop) PlayAnimation(donburi.Entity, string, bool)                        {}
func (Nop) EmitParticles(config.ParticleKind, float64, float64, int, float64) {}
func (Nop) Flash(donburi.Entity, uint32, float64)                             {}
func (Nop) Shake(float64, float64)                                            {}
func (Nop) Play(config.SoundID)                                               {}
func (Nop) IsHeld(config.ActionID) bool                                       { return false }
func (Nop) IsJustPressed(config.ActionID) bool                                { return false }
func (Nop) IsJustReleased(config.ActionID) bool                               { return false }
func (Nop) HorizontalAxis() float64                                           { return 0 }
func (Nop) SetArmor(int, int)                                                 {}
func (Nop) SetBossHealth(float64)                                             {}
func (Nop) ShowBossBar(bool)                                                  {}
func (Nop) ShowPanel(PanelKind, string)                                       {}
func (Nop) HidePanel()                                                        {}
