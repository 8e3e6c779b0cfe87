// Package runner puts a game session in an ebiten window: keyboard and
// gamepad input, flat-shape rendering, a HUD and sound playback.
package runner

import (
	"errors"
	"io/fs"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/game"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/automoto/ghouls-n-orcs/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

var logger = logging.New("runner")

const (
	screenWidth  = 960
	screenHeight = 540
	unitPixels   = 32
	windowTitle  = "Ghouls 'n Orcs"
)

// Options configure a windowed run.
type Options struct {
	Registry *level.Registry
	// Level overrides the configured start level when set.
	Level    string
	Seed     uint64
	Sounds   fs.FS
	Volume   float64
	Debug    bool
}

// Game adapts a Session to ebiten.Game.
type Game struct {
	session  *game.Session
	input    *Input
	renderer *Renderer
	hud      *HUD
}

func NewGame(opts Options) (*Game, error) {
	if opts.Registry == nil {
		return nil, errors.New("runner: no level registry")
	}

	g := &Game{
		input:    NewInput(),
		renderer: NewRenderer(opts.Seed),
		hud:      NewHUD(),
	}
	g.renderer.Debug = opts.Debug

	sound := NewAudio(opts.Sounds, opts.Volume)
	sound.Preload(cfg.AllSounds...)

	g.session = game.NewSession(opts.Registry, intents.Surfaces{
		Renderer: g.renderer,
		Audio:    sound,
		Input:    g.input,
		HUD:      g.hud,
	}, opts.Seed)

	var err error
	if opts.Level != "" {
		err = g.session.LoadLevel(opts.Level)
	} else {
		err = g.session.Start()
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.input.Poll()
	g.session.Advance(dt)
	g.session.Frame(dt)
	g.renderer.Update(dt)
	g.hud.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.World(), unitPixels)

	name := ""
	if l := g.session.Director().Level(); l != nil {
		name = l.Name
	}
	g.hud.Draw(screen, g.session.World(), name)
}

func (g *Game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("window opened", "level", g.session.Director().Level().ID, "seed", opts.Seed)
	return ebiten.RunGame(g)
}
