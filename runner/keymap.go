package runner

import (
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding maps one logical action to physical keys and pad buttons.
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionMoveLeft: {
		keys:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		keys:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionAttackPrimary: {
		keys:    []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionAttackSecondary: {
		keys:    []ebiten.Key{ebiten.KeyK, ebiten.KeyX},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionRoll: {
		keys:    []ebiten.Key{ebiten.KeyL, ebiten.KeyShiftLeft},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionWeaponPrev: {
		keys:    []ebiten.Key{ebiten.KeyQ},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	cfg.ActionWeaponNext: {
		keys:    []ebiten.Key{ebiten.KeyE},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	cfg.ActionPause: {
		keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionRestart: {
		keys:    []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}
