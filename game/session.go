// Package game assembles the ECS world and drives it with a fixed-step
// accumulator. A Session is the only thing a front end needs to hold.
package game

import (
	"errors"
	"slices"

	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/automoto/ghouls-n-orcs/logging"
	"github.com/automoto/ghouls-n-orcs/systems"
	"github.com/automoto/ghouls-n-orcs/systems/factory"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = logging.New("game")

// ErrNoLevel is returned by operations that need a loaded level.
var ErrNoLevel = errors.New("no level loaded")

// stepEpsilon absorbs float drift when frame deltas are exact multiples of
// the fixed step.
const stepEpsilon = 1e-9

// Session owns one running game.
type Session struct {
	ecs      *ecs.ECS
	director *level.Director
	input    intents.Input
	start    string

	accumulator float64
	steps       uint64
}

// NewSession builds a world over registry r. Missing surfaces are filled
// with no-ops. seed feeds the RNG behind every random AI decision.
func NewSession(r *level.Registry, s intents.Surfaces, seed uint64) *Session {
	s = s.WithDefaults()
	e := ecs.NewECS(donburi.NewWorld())

	session := &Session{
		ecs:      e,
		director: level.NewDirector(r),
		input:    s.Input,
		start:    startLevel(r),
	}
	s.Renderer = shakeRelay{Renderer: s.Renderer, ecs: e}

	factory.CreateIntents(e, s)
	factory.CreateGame(e, seed)
	factory.CreateLevel(e, session.director)
	factory.CreateSpace(e, session.director.Index())
	factory.CreateCamera(e, 0, cfg.Camera.Height)

	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBoss))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBrains))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCheckpoints))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateVictory))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))

	return session
}

// startLevel is the configured first level, or the first registered one
// when the configured id is missing.
func startLevel(r *level.Registry) string {
	ids := r.IDs()
	if slices.Contains(ids, cfg.Level.Start) || len(ids) == 0 {
		return cfg.Level.Start
	}
	logger.Warn("start level not registered", "level", cfg.Level.Start, "using", ids[0])
	return ids[0]
}

func (s *Session) ECS() *ecs.ECS                 { return s.ecs }
func (s *Session) World() donburi.World          { return s.ecs.World }
func (s *Session) Director() *level.Director     { return s.director }
func (s *Session) Steps() uint64                 { return s.steps }
func (s *Session) Time() float64                 { return s.game().Time }
func (s *Session) Status() components.GameStatus { return s.game().Status }

func (s *Session) game() *components.GameData {
	g, _ := components.Game.First(s.ecs.World)
	return components.Game.Get(g)
}

// Player returns the player entry once a level is loaded.
func (s *Session) Player() (*donburi.Entry, bool) {
	return entity.Player(s.ecs.World)
}

// Start loads the first level.
func (s *Session) Start() error {
	return s.LoadLevel(s.start)
}

// LoadLevel replaces the running level with id and puts the player at its
// spawn point. On error nothing changes.
func (s *Session) LoadLevel(id string) error {
	if err := s.director.Load(id); err != nil {
		return err
	}
	l := s.director.Level()
	s.populate(l)

	spawn := l.PlayerSpawn
	pe := s.placePlayer(spawn.X, spawn.Y)
	p := components.Player.Get(pe)
	p.RespawnX, p.RespawnY = spawn.X, spawn.Y
	p.HasCheckpoint = false
	return nil
}

// Retry reloads the current level with the player at the last checkpoint,
// or at the level spawn when none was reached.
func (s *Session) Retry() error {
	l := s.director.Level()
	if l == nil {
		return ErrNoLevel
	}
	pe, ok := s.Player()
	if !ok {
		return s.LoadLevel(l.ID)
	}
	p := *components.Player.Get(pe)

	if err := s.director.Load(l.ID); err != nil {
		return err
	}
	s.populate(l)
	s.placePlayer(p.RespawnX, p.RespawnY)

	restored := components.Player.Get(pe)
	restored.RespawnX, restored.RespawnY = p.RespawnX, p.RespawnY
	restored.HasCheckpoint = p.HasCheckpoint
	restored.Weapon = p.Weapon
	return nil
}

// Restart starts the whole game over from the first level with the
// starting weapon equipped.
func (s *Session) Restart() error {
	if err := s.LoadLevel(s.start); err != nil {
		return err
	}
	if pe, ok := s.Player(); ok {
		components.Player.Get(pe).Weapon = 0
	}
	return nil
}

// populate clears every level-scoped entity and rebuilds the static ones
// for l. The director must already have loaded l.
func (s *Session) populate(l *level.Level) {
	w := s.ecs.World
	out := components.GetIntents(w)

	var stale []*donburi.Entry
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Enemy, tags.Projectile, tags.Checkpoint} {
		tag.Each(w, func(e *donburi.Entry) { stale = append(stale, e) })
	}
	for _, e := range stale {
		out.Renderer.Detach(e.Entity())
		w.Remove(e.Entity())
	}

	if se, ok := components.Space.First(w); ok {
		components.Space.Get(se).Index = s.director.Index()
	}
	for _, cp := range l.Checkpoints {
		factory.CreateCheckpoint(s.ecs, cp.X, cp.Y)
	}

	game := s.game()
	game.Status = components.StatusPlaying
	game.Pending = components.TransitionNone

	out.HUD.HidePanel()
	out.HUD.ShowBossBar(false)
}

// placePlayer creates the player at (x, y) or resets the existing one
// there, and snaps the camera onto it.
func (s *Session) placePlayer(x, y float64) *donburi.Entry {
	pe, ok := s.Player()
	if ok {
		entity.ResetPlayer(s.ecs.World, pe, x, y)
	} else {
		pe = factory.CreatePlayer(s.ecs, x, y)
	}

	if ce, ok := components.Camera.First(s.ecs.World); ok {
		camera := components.Camera.Get(ce)
		camera.Position.X, camera.Position.Y = x, y+cfg.Camera.Height
		camera.Target = camera.Position
		camera.TweenX, camera.TweenY = nil, nil
	}
	return pe
}

// Advance feeds frameDelta seconds into the accumulator and runs as many
// fixed steps as it covers. The delta is clamped so a stalled frame cannot
// trigger a burst of catch-up steps. It returns the number of steps run.
func (s *Session) Advance(frameDelta float64) int {
	frameDelta = max(0, min(frameDelta, cfg.Physics.MaxFrameDelta))
	s.accumulator += frameDelta

	n := 0
	dt := cfg.Physics.FixedStep
	for s.accumulator+stepEpsilon >= dt {
		s.accumulator -= dt
		s.Step()
		n++
	}
	s.accumulator = max(s.accumulator, 0)
	return n
}

// Step runs exactly one fixed step, then any level transition a system
// asked for.
func (s *Session) Step() {
	s.ecs.Update()
	s.steps++
	if latch, ok := s.input.(intents.StepLatch); ok {
		latch.EndStep()
	}
	s.applyTransition()
}

// Frame runs the presentational updates for one rendered frame.
func (s *Session) Frame(dt float64) {
	systems.UpdateCamera(s.ecs, dt)
}

func (s *Session) applyTransition() {
	game := s.game()
	t := game.Pending
	game.Pending = components.TransitionNone

	var err error
	switch t {
	case components.TransitionNone:
		return
	case components.TransitionRetry:
		err = s.Retry()
	case components.TransitionAdvance:
		err = s.LoadLevel(s.director.Level().Next)
	case components.TransitionRestart:
		err = s.Restart()
	}
	if err != nil {
		logger.Error("level transition failed", "transition", t, "err", err)
		return
	}
	logger.Info("level transition", "transition", t, "level", s.director.Level().ID)
}
