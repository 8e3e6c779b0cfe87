package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttackPrimary
	ActionAttackSecondary
	ActionRoll
	ActionWeaponPrev
	ActionWeaponNext
	ActionPause
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:            "none",
	ActionMoveLeft:        "moveLeft",
	ActionMoveRight:       "moveRight",
	ActionJump:            "jump",
	ActionAttackPrimary:   "attackPrimary",
	ActionAttackSecondary: "attackSecondary",
	ActionRoll:            "roll",
	ActionWeaponPrev:      "weaponPrev",
	ActionWeaponNext:      "weaponNext",
	ActionPause:           "pause",
	ActionRestart:         "restart",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a logical action name back to its ID.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}
