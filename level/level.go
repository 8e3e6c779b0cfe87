// Package level holds the level reference data and the director that loads a
// level, fires its spawners and decides when it is complete.
package level

import (
	"github.com/automoto/ghouls-n-orcs/geometry"
)

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Platform is one block of level geometry, centred on X, Y.
type Platform struct {
	X    float64       `yaml:"x"`
	Y    float64       `yaml:"y"`
	W    float64       `yaml:"w"`
	H    float64       `yaml:"h"`
	Type geometry.Kind `yaml:"type"`
}

// Collider converts the platform to its axis-aligned collision box.
func (p Platform) Collider() geometry.Collider {
	kind := p.Type
	if kind == "" {
		kind = geometry.KindPlatform
	}
	return geometry.Collider{Box: geometry.BoxAt(p.X, p.Y, p.W, p.H), Kind: kind}
}

// Spawner creates one enemy of Type the first time the player comes within
// TriggerDist of X.
type Spawner struct {
	X           float64 `yaml:"x"`
	Type        string  `yaml:"type"`
	TriggerDist float64 `yaml:"triggerDist"`
	Spawned     bool    `yaml:"-"`
}

// Level is immutable reference data. The director works on copies of the
// spawner list.
type Level struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Length      float64    `yaml:"length"`
	HasBoss     bool       `yaml:"hasBoss"`
	Next        string     `yaml:"next"`
	PlayerSpawn Point      `yaml:"playerSpawn"`
	Checkpoints []Point    `yaml:"checkpoints"`
	Platforms   []Platform `yaml:"platforms"`
	Spawners    []Spawner  `yaml:"spawners"`
}

// Colliders returns the collision boxes in platform order.
func (l *Level) Colliders() []geometry.Collider {
	out := make([]geometry.Collider, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		out = append(out, p.Collider())
	}
	return out
}
