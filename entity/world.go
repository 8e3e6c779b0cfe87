// Package entity implements the damage, death and arena rules shared by the
// player and every enemy.
package entity

import (
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/automoto/ghouls-n-orcs/logging"
	"github.com/automoto/ghouls-n-orcs/tags"
	"github.com/yohamta/donburi"
)

var logger = logging.New("entity")

// Player returns the player entry, if one is alive in w.
func Player(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// Director returns the level director of w, or nil if no level is loaded.
func Director(w donburi.World) *level.Director {
	e, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e).Director
}

// Index returns the collision index of w. An empty index stands in when no
// level has been loaded.
func Index(w donburi.World) *geometry.Index {
	e, ok := components.Space.First(w)
	if !ok || components.Space.Get(e).Index == nil {
		return geometry.NewIndex(nil)
	}
	return components.Space.Get(e).Index
}

// Now is the session clock in simulated seconds.
func Now(w donburi.World) float64 {
	e, ok := components.Game.First(w)
	if !ok {
		return 0
	}
	return components.Game.Get(e).Time
}

// Alive reports whether e is valid and has not started dying.
func Alive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if !e.HasComponent(components.Life) {
		return true
	}
	return components.Life.Get(e).Active()
}

// ActiveEnemies returns every enemy that can still fight.
func ActiveEnemies(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if Alive(e) {
			out = append(out, e)
		}
	})
	return out
}
