package level

import (
	"math"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/logging"
)

var logger = logging.New("level")

// Outcome is what the player chose once a level was won.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeAdvance loads the successor level.
	OutcomeAdvance
	// OutcomeRestart starts the whole game over.
	OutcomeRestart
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvance:
		return "advance"
	case OutcomeRestart:
		return "restart"
	default:
		return "none"
	}
}

// Director owns the loaded level: its collision index, its armed spawners
// and the victory sequence.
type Director struct {
	registry *Registry
	current  *Level
	index    *geometry.Index
	spawners []Spawner

	victory    bool
	victoryAge float64
}

func NewDirector(r *Registry) *Director {
	return &Director{
		registry: r,
		index:    geometry.NewIndex(nil),
	}
}

// Load swaps in level id. An unknown id is logged and returned as
// ErrUnknownLevel with the previous level left in place.
func (d *Director) Load(id string) error {
	l, err := d.registry.Get(id)
	if err != nil {
		logger.Error("level load aborted", "level", id, "err", err)
		return err
	}

	d.current = l
	d.index = geometry.NewIndex(l.Colliders())
	d.Rearm()
	logger.Info("level loaded", "level", l.ID, "name", l.Name,
		"platforms", len(l.Platforms), "spawners", len(l.Spawners))
	return nil
}

// Rearm resets every spawner and the victory state of the current level.
func (d *Director) Rearm() {
	d.victory = false
	d.victoryAge = 0
	d.spawners = nil
	if d.current == nil {
		return
	}
	d.spawners = make([]Spawner, len(d.current.Spawners))
	copy(d.spawners, d.current.Spawners)
}

func (d *Director) Registry() *Registry    { return d.registry }
func (d *Director) Level() *Level          { return d.current }
func (d *Director) Index() *geometry.Index { return d.index }

// Spawners returns the live spawner state. Callers must not modify it.
func (d *Director) Spawners() []Spawner { return d.spawners }

// DueSpawns returns the spawners playerX has just come within range of and
// marks them fired. A spawner is returned at most once per load.
func (d *Director) DueSpawns(playerX float64) []Spawner {
	var due []Spawner
	for i := range d.spawners {
		s := &d.spawners[i]
		if s.Spawned {
			continue
		}
		if math.Abs(s.X-playerX) < s.TriggerDist {
			s.Spawned = true
			due = append(due, *s)
		}
	}
	return due
}

// SpawnHeight resolves where an enemy spawned at x should stand. Without
// ground it falls back to a fixed elevated height.
func (d *Director) SpawnHeight(x float64) float64 {
	if g, ok := d.index.GroundBelow(x); ok {
		return g.MaxY
	}
	return cfg.Level.SpawnFallbackY
}

// CheckPositionVictory triggers victory on non-boss levels once playerX
// passes the right edge of the level geometry minus a margin.
func (d *Director) CheckPositionVictory(playerX float64) bool {
	if d.current == nil || d.current.HasBoss || d.victory {
		return false
	}
	edge, ok := d.index.RightmostEdge()
	if !ok || playerX <= edge-cfg.Level.FinishMargin {
		return false
	}
	return d.TriggerVictory()
}

// TriggerVictory starts the victory sequence. It reports false if the
// sequence was already running.
func (d *Director) TriggerVictory() bool {
	if d.victory || d.current == nil {
		return false
	}
	d.victory = true
	d.victoryAge = 0
	logger.Info("level complete", "level", d.current.ID, "next", d.current.Next)
	return true
}

func (d *Director) Victory() bool { return d.victory }

// HasSuccessor reports whether winning this level advances to another.
func (d *Director) HasSuccessor() bool {
	return d.current != nil && d.current.Next != ""
}

// UpdateVictory ages the victory sequence. Confirm input is ignored until
// the gate delay has passed, then picks advance or restart.
func (d *Director) UpdateVictory(dt float64, confirm bool) Outcome {
	if !d.victory {
		return OutcomeNone
	}
	d.victoryAge += dt
	if d.victoryAge < cfg.Level.VictoryGate || !confirm {
		return OutcomeNone
	}
	if d.HasSuccessor() {
		return OutcomeAdvance
	}
	return OutcomeRestart
}

// AcceptingInput reports whether the victory gate has opened.
func (d *Director) AcceptingInput() bool {
	return d.victory && d.victoryAge >= cfg.Level.VictoryGate
}
