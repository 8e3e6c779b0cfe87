package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// GameStatus is the session-wide play state.
type GameStatus int

const (
	StatusPlaying GameStatus = iota
	StatusPaused
	StatusGameOver
	StatusVictory
)

func (s GameStatus) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	case StatusVictory:
		return "victory"
	default:
		return "playing"
	}
}

// Transition is a level change a system asked for. The session carries it
// out between fixed steps, never inside one.
type Transition int

const (
	TransitionNone Transition = iota
	// TransitionRetry reloads the current level at the respawn point.
	TransitionRetry
	// TransitionAdvance loads the successor level.
	TransitionAdvance
	// TransitionRestart starts over from the first level.
	TransitionRestart
)

func (t Transition) String() string {
	switch t {
	case TransitionRetry:
		return "retry"
	case TransitionAdvance:
		return "advance"
	case TransitionRestart:
		return "restart"
	default:
		return "none"
	}
}

// GameData is the singleton with the simulation clock and the shared RNG.
type GameData struct {
	Status  GameStatus
	Time    float64 // simulated seconds since the session started
	Rand    *rand.Rand
	Pending Transition
}

var Game = donburi.NewComponentType[GameData]()
