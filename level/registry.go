package level

import (
	_ "embed"
	"errors"
	"fmt"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml
var builtinLevels []byte

var (
	// ErrUnknownLevel is returned when a level id is not registered.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrInvalidLevel wraps every level data validation failure.
	ErrInvalidLevel = errors.New("invalid level")
)

// Registry maps level ids to their reference data, keeping declaration order.
type Registry struct {
	levels map[string]*Level
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{levels: make(map[string]*Level)}
}

// Builtin returns a registry holding the levels shipped with the game.
func Builtin() (*Registry, error) {
	return Parse(builtinLevels)
}

// Parse reads a YAML document with a top-level "levels" list.
func Parse(data []byte) (*Registry, error) {
	var doc struct {
		Levels []*Level `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}

	r := NewRegistry()
	for _, l := range doc.Levels {
		if err := r.Add(l); err != nil {
			return nil, err
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Add registers l. A later level with the same id replaces the earlier one.
func (r *Registry) Add(l *Level) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, exists := r.levels[l.ID]; !exists {
		r.order = append(r.order, l.ID)
	}
	r.levels[l.ID] = l
	return nil
}

// Get looks up a level by id.
func (r *Registry) Get(id string) (*Level, error) {
	l, ok := r.levels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}
	return l, nil
}

// IDs returns the registered ids in declaration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Validate checks that every successor id resolves.
func (r *Registry) Validate() error {
	var errs []error
	for _, id := range r.order {
		l := r.levels[id]
		if l.Next == "" {
			continue
		}
		if _, ok := r.levels[l.Next]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: next level %q is not registered", ErrInvalidLevel, id, l.Next))
		}
	}
	return errors.Join(errs...)
}

// Validate checks a single level's data against the enemy table.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}

	var errs []error
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s: platform %d has non-positive size", ErrInvalidLevel, l.ID, i))
		}
	}
	for i, s := range l.Spawners {
		if _, ok := cfg.Enemy.Types[s.Type]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: spawner %d has unknown enemy type %q", ErrInvalidLevel, l.ID, i, s.Type))
		}
		if s.TriggerDist <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s: spawner %d needs a positive triggerDist", ErrInvalidLevel, l.ID, i))
		}
	}
	return errors.Join(errs...)
}
