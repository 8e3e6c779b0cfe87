package config

// SoundID represents a logical sound effect
type SoundID string

const (
	// Player
	SoundJump       SoundID = "jump"
	SoundThrow      SoundID = "spear_thrust"
	SoundSwing      SoundID = "swing"
	SoundSwitch     SoundID = "switch"
	SoundHit        SoundID = "hit"
	SoundArmorBreak SoundID = "armor_break"
	SoundDeath      SoundID = "death"

	// Enemies
	SoundEnemyHit   SoundID = "enemy_hit"
	SoundEnemyDeath SoundID = "enemy_death"
	SoundClang      SoundID = "clang"
	SoundBossRoar   SoundID = "boss_roar"
	SoundPunch      SoundID = "punch"

	// Level
	SoundCheckpoint SoundID = "checkpoint"
	SoundVictory    SoundID = "victory"
)

// AllSounds lists every sound the game can emit.
var AllSounds = []SoundID{
	SoundJump, SoundThrow, SoundSwing, SoundSwitch, SoundHit, SoundArmorBreak, SoundDeath,
	SoundEnemyHit, SoundEnemyDeath, SoundClang, SoundBossRoar, SoundPunch,
	SoundCheckpoint, SoundVictory,
}
