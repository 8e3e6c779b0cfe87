package runner

import (
	"math"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// stickDeadzone is applied to the raw left stick before the player's own
// axis deadzone.
const stickDeadzone = 0.2

// Input polls keyboard and gamepads once per rendered frame. Edges stay
// raised until the next fixed step ends, so a press on a frame that runs no
// step is not lost.
type Input struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	pressed  [cfg.ActionCount]bool
	released [cfg.ActionCount]bool
	axis     float64

	gamepads []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

// Poll samples every device and derives this frame's edges.
func (in *Input) Poll() {
	in.previous = in.current
	in.current = [cfg.ActionCount]bool{}
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])

	for id, b := range bindings {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				in.current[id] = true
			}
		}
		for _, gp := range in.gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					in.current[id] = true
				}
			}
		}
	}

	for id := range in.current {
		if in.current[id] && !in.previous[id] {
			in.pressed[id] = true
		}
		if !in.current[id] && in.previous[id] {
			in.released[id] = true
		}
	}

	in.axis = in.digitalAxis()
	if stick := in.stick(); math.Abs(stick) > stickDeadzone {
		in.axis = stick
	}
}

func (in *Input) digitalAxis() float64 {
	axis := 0.0
	if in.current[cfg.ActionMoveLeft] {
		axis--
	}
	if in.current[cfg.ActionMoveRight] {
		axis++
	}
	return axis
}

// stick returns the strongest left stick deflection across pads.
func (in *Input) stick() float64 {
	best := 0.0
	for _, gp := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(h) > math.Abs(best) {
			best = h
		}
	}
	return best
}

func (in *Input) IsHeld(a cfg.ActionID) bool         { return in.current[a] }
func (in *Input) IsJustPressed(a cfg.ActionID) bool  { return in.pressed[a] }
func (in *Input) IsJustReleased(a cfg.ActionID) bool { return in.released[a] }
func (in *Input) HorizontalAxis() float64            { return in.axis }

// EndStep clears the latched edges once a fixed step has seen them.
func (in *Input) EndStep() {
	in.pressed = [cfg.ActionCount]bool{}
	in.released = [cfg.ActionCount]bool{}
}
