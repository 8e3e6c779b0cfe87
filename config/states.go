package config

// State names shared by the player and enemy behavior graphs.
const (
	StateIdle   = "IDLE"
	StateDeath  = "DEATH"
	StateAttack = "ATTACK"

	// Player
	StateRun         = "RUN"
	StateJumpRise    = "JUMP_RISE"
	StateJumpFall    = "JUMP_FALL"
	StateAttackThrow = "ATTACK_THROW"
	StateAttackHeavy = "ATTACK_HEAVY"
	StateRoll        = "ROLL"

	// Enemies
	StatePatrol   = "PATROL"
	StatePursue   = "PURSUE"
	StateApproach = "APPROACH"
	StateHover    = "HOVER"
	StateSwoop    = "SWOOP"
)
