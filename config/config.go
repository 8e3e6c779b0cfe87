package config

// PhysicsConfig contains global simulation timing and world physics values
type PhysicsConfig struct {
	FixedStep     float64 `yaml:"fixedStep"`     // seconds per simulation tick
	MaxFrameDelta float64 `yaml:"maxFrameDelta"` // accumulator clamp per rendered frame
	Gravity       float64 `yaml:"gravity"`       // enemy gravity (units/s^2)
	TerminalFall  float64 `yaml:"terminalFall"`
	KillPlaneY    float64 `yaml:"killPlaneY"`
}

// CollisionConfig contains the ground snap and wall push tuning
type CollisionConfig struct {
	SnapAbove              float64 `yaml:"snapAbove"` // feet may hover this far above a top surface and still land
	SnapBelow              float64 `yaml:"snapBelow"` // feet may sink this far into a top surface and still land
	GroundHalfWidth        float64 `yaml:"groundHalfWidth"`
	WallHalfWidth          float64 `yaml:"wallHalfWidth"`
	WallFloorClearance     float64 `yaml:"wallFloorClearance"`
	WallMinVerticalOverlap float64 `yaml:"wallMinVerticalOverlap"`
	WallPushMargin         float64 `yaml:"wallPushMargin"`
	// SpaceCellSize is the resolv broad phase cell edge in world units.
	SpaceCellSize int `yaml:"spaceCellSize"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	RunSpeed     float64 `yaml:"runSpeed"`
	JumpVelocity float64 `yaml:"jumpVelocity"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	JumpCut      float64 `yaml:"jumpCut"`
	AxisDeadzone float64 `yaml:"axisDeadzone"`

	// Roll
	RollSpeedScale float64 `yaml:"rollSpeedScale"`
	RollDuration   float64 `yaml:"rollDuration"`

	// Combat
	MaxArmor         int         `yaml:"maxArmor"`
	InvincibleTime   float64     `yaml:"invincibleTime"`
	KnockbackX       float64     `yaml:"knockbackX"`
	KnockbackY       float64     `yaml:"knockbackY"`
	Inventory        []string    `yaml:"inventory"`
	ArmorShardCounts map[int]int `yaml:"armorShardCounts"` // remaining armor -> shard burst

	// Death sequence
	GameOverDelay float64 `yaml:"gameOverDelay"`
	RestartDelay  float64 `yaml:"restartDelay"`

	// Dimensions
	HurtWidth  float64 `yaml:"hurtWidth"`
	HurtHeight float64 `yaml:"hurtHeight"`
}

// PhaseConfig is the anticipation/active/recovery timing of one attack
type PhaseConfig struct {
	Anticipation float64 `yaml:"anticipation"`
	Active       float64 `yaml:"active"`
	Recovery     float64 `yaml:"recovery"`
}

// ThrowConfig configures the player's ranged attack
type ThrowConfig struct {
	PhaseConfig  `yaml:",inline"`
	MaxOnScreen  int     `yaml:"maxOnScreen"`
	SpawnOffsetX float64 `yaml:"spawnOffsetX"`
	SpawnOffsetY float64 `yaml:"spawnOffsetY"`
}

// HeavyConfig configures the player's melee swing
type HeavyConfig struct {
	PhaseConfig  `yaml:",inline"`
	Damage       int     `yaml:"damage"`
	Knockback    float64 `yaml:"knockback"`
	KnockbackUp  float64 `yaml:"knockbackUp"`
	HitboxWidth  float64 `yaml:"hitboxWidth"`
	HitboxHeight float64 `yaml:"hitboxHeight"`
	OffsetX      float64 `yaml:"offsetX"`
	OffsetY      float64 `yaml:"offsetY"`
}

// AttacksConfig groups the player attack definitions
type AttacksConfig struct {
	Throw ThrowConfig `yaml:"throw"`
	Heavy HeavyConfig `yaml:"heavy"`
}

// Trajectory names the flight model of a projectile
type Trajectory string

const (
	TrajectoryStraight Trajectory = "straight"
	TrajectoryArc      Trajectory = "arc"
	TrajectoryLob      Trajectory = "lob"
)

// WeaponConfig describes one throwable weapon
type WeaponConfig struct {
	Name       string     `yaml:"name"`
	Damage     int        `yaml:"damage"`
	Speed      float64    `yaml:"speed"`
	FireRate   float64    `yaml:"fireRate"` // seconds between throws
	Trajectory Trajectory `yaml:"trajectory"`
	ArcHeight  float64    `yaml:"arcHeight"`
}

// ProjectileConfig contains the shared projectile flight values
type ProjectileConfig struct {
	LifeTime      float64 `yaml:"lifeTime"`
	Gravity       float64 `yaml:"gravity"`
	ArcLiftScale  float64 `yaml:"arcLiftScale"` // arc initial vy = arcHeight * scale
	LobLift       float64 `yaml:"lobLift"`
	LobSpeedScale float64 `yaml:"lobSpeedScale"`
	FloorY        float64 `yaml:"floorY"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
}

// Archetype selects which behavior graph an enemy type runs
type Archetype string

const (
	ArchetypeGhoul    Archetype = "ghoul"
	ArchetypeOrc      Archetype = "orc"
	ArchetypeGargoyle Archetype = "gargoyle"
	ArchetypeGoleling Archetype = "goleling"
	ArchetypeBoss     Archetype = "boss"
)

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name      string    `yaml:"name"`
	Archetype Archetype `yaml:"archetype"`
	Health    int       `yaml:"health"`
	Damage    int       `yaml:"damage"`

	// Movement
	Speed       float64 `yaml:"speed"`
	ChargeSpeed float64 `yaml:"chargeSpeed"`

	// Perception
	DetectionRange float64 `yaml:"detectionRange"`
	AttackRange    float64 `yaml:"attackRange"`
	MaxVertical    float64 `yaml:"maxVertical"` // vertical gate for IDLE wake-up, 0 = ungated

	// Attack timing (seconds)
	Telegraph      float64 `yaml:"telegraph"`
	AttackDuration float64 `yaml:"attackDuration"`
	Recovery       float64 `yaml:"recovery"`

	// Ledge probing
	LedgeLookahead float64 `yaml:"ledgeLookahead"`
	LedgeDrop      float64 `yaml:"ledgeDrop"`
	RetreatTime    float64 `yaml:"retreatTime"`

	// Capabilities
	HasShield bool `yaml:"hasShield"`
	IsFlying  bool `yaml:"isFlying"`
	IsBoss    bool `yaml:"isBoss"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Death feedback
	BloodKind  ParticleKind `yaml:"bloodKind"`
	BloodCount int          `yaml:"bloodCount"`
	BloodScale float64      `yaml:"bloodScale"`
	RemoveTime float64      `yaml:"removeTime"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"-"`

	BoneCount        int     `yaml:"boneCount"`
	ArmorScrapCount  int     `yaml:"armorScrapCount"`
	ContactShrink    float64 `yaml:"contactShrink"`
	PatrolSpeedScale float64 `yaml:"patrolSpeedScale"`
}

// BossConfig contains the arena fight values shared by every boss type
type BossConfig struct {
	ArenaHalfWidth float64 `yaml:"arenaHalfWidth"`
	LockInset      float64 `yaml:"lockInset"`
}

// LevelConfig contains level progression values
type LevelConfig struct {
	Start          string  `yaml:"start"`
	SpawnFallbackY float64 `yaml:"spawnFallbackY"`
	FinishMargin   float64 `yaml:"finishMargin"`
	VictoryGate    float64 `yaml:"victoryGate"`
	CheckpointDist float64 `yaml:"checkpointDist"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadOffset   float64 `yaml:"leadOffset"`
	Height       float64 `yaml:"height"`
	FloorY       float64 `yaml:"floorY"`
	FollowTime   float64 `yaml:"followTime"` // seconds for a follow tween to settle
	ShakeHit     float64 `yaml:"shakeHit"`
	ShakeHeavy   float64 `yaml:"shakeHeavy"`
	ShakeHurt    float64 `yaml:"shakeHurt"`
	ShakeTimeHit float64 `yaml:"shakeTimeHit"`
}

var Physics PhysicsConfig
var Collision CollisionConfig
var Player PlayerConfig
var Attacks AttacksConfig
var Weapons map[string]WeaponConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Boss BossConfig
var Level LevelConfig
var Camera CameraConfig

func init() {
	Reset()
}

// Reset restores every section to the built-in defaults.
func Reset() {
	Physics = PhysicsConfig{
		FixedStep:     1.0 / 60.0,
		MaxFrameDelta: 0.1,
		Gravity:       28,
		TerminalFall:  18,
		KillPlaneY:    -10,
	}

	Collision = CollisionConfig{
		SnapAbove:              0.5,
		SnapBelow:              0.1,
		GroundHalfWidth:        0.4,
		WallHalfWidth:          0.4,
		WallFloorClearance:     0.1,
		WallMinVerticalOverlap: 0.2,
		WallPushMargin:         0.01,
		SpaceCellSize:          2,
	}

	Player = PlayerConfig{
		RunSpeed:     6.0,
		JumpVelocity: 10,
		Gravity:      28,
		MaxFallSpeed: 18,
		JumpCut:      0.5,
		AxisDeadzone: 0.1,

		RollSpeedScale: 1.8,
		RollDuration:   0.5,

		MaxArmor:         3,
		InvincibleTime:   1.5,
		KnockbackX:       5,
		KnockbackY:       5,
		Inventory:        []string{"spear", "knife", "axe", "torch"},
		ArmorShardCounts: map[int]int{2: 3, 1: 5},

		GameOverDelay: 2.0,
		RestartDelay:  1.0,

		HurtWidth:  0.6,
		HurtHeight: 1.8,
	}

	Attacks = AttacksConfig{
		Throw: ThrowConfig{
			PhaseConfig:  PhaseConfig{Anticipation: 0.08, Active: 0.05, Recovery: 0.15},
			MaxOnScreen:  2,
			SpawnOffsetX: 0.8,
			SpawnOffsetY: 2.2,
		},
		Heavy: HeavyConfig{
			PhaseConfig:  PhaseConfig{Anticipation: 0.18, Active: 0.1, Recovery: 0.3},
			Damage:       2,
			Knockback:    3,
			KnockbackUp:  2,
			HitboxWidth:  1.5,
			HitboxHeight: 1.2,
			OffsetX:      0.8,
			OffsetY:      1.0,
		},
	}

	Weapons = map[string]WeaponConfig{
		"spear": {Name: "Spear", Damage: 1, Speed: 14, FireRate: 0.4, Trajectory: TrajectoryStraight},
		"knife": {Name: "Throwing Knives", Damage: 1, Speed: 18, FireRate: 0.2, Trajectory: TrajectoryStraight},
		"axe":   {Name: "War Axe", Damage: 2, Speed: 10, FireRate: 0.6, Trajectory: TrajectoryArc, ArcHeight: 2},
		"torch": {Name: "Cursed Torch", Damage: 1, Speed: 8, FireRate: 0.8, Trajectory: TrajectoryLob},
	}

	Projectile = ProjectileConfig{
		LifeTime:      3.0,
		Gravity:       20,
		ArcLiftScale:  5,
		LobLift:       8,
		LobSpeedScale: 0.6,
		FloorY:        -15,
		Width:         0.5,
		Height:        0.3,
	}

	Enemy = EnemyConfig{
		BoneCount:        4,
		ArmorScrapCount:  5,
		ContactShrink:    0.1,
		PatrolSpeedScale: 0.5,
		Types: map[string]EnemyTypeConfig{
			"ghoulShambling": {
				Name: "Shambling Ghoul", Archetype: ArchetypeGhoul,
				Health: 1, Damage: 1, Speed: 1.5,
				DetectionRange: 8, AttackRange: 1.2, MaxVertical: 3,
				Telegraph: 0.5, AttackDuration: 0.15, Recovery: 0.6,
				LedgeLookahead: 1.0, LedgeDrop: 3.0, RetreatTime: 1.5,
				Width: 0.8, Height: 1.6,
				BloodKind: ParticleGreenBlood, BloodCount: 12, BloodScale: 1.5, RemoveTime: 2,
			},
			"ghoulCrawler": {
				Name: "Crawler", Archetype: ArchetypeGhoul,
				Health: 1, Damage: 1, Speed: 2,
				DetectionRange: 5, AttackRange: 0.8, MaxVertical: 3,
				Telegraph: 0.3, AttackDuration: 0.1, Recovery: 0.4,
				LedgeLookahead: 1.0, LedgeDrop: 3.0, RetreatTime: 1.5,
				Width: 0.9, Height: 0.8,
				BloodKind: ParticleGreenBlood, BloodCount: 12, BloodScale: 1.5, RemoveTime: 2,
			},
			"orcGrunt": {
				Name: "Grunt Orc", Archetype: ArchetypeOrc,
				Health: 3, Damage: 2, Speed: 2,
				DetectionRange: 10, AttackRange: 1.5,
				Telegraph: 0.6, AttackDuration: 0.2, Recovery: 0.8,
				LedgeLookahead: 2.5, LedgeDrop: 3.0, RetreatTime: 3,
				HasShield: true,
				Width: 1.0, Height: 2.0,
				BloodKind: ParticleBlood, BloodCount: 12, BloodScale: 1.5, RemoveTime: 2,
			},
			"orcBerserker": {
				Name: "Berserker Orc", Archetype: ArchetypeOrc,
				Health: 2, Damage: 3, Speed: 4,
				DetectionRange: 12, AttackRange: 2,
				Telegraph: 0.8, AttackDuration: 0.15, Recovery: 1.2,
				LedgeLookahead: 2.5, LedgeDrop: 3.0, RetreatTime: 3,
				Width: 1.0, Height: 2.0,
				BloodKind: ParticleBlood, BloodCount: 12, BloodScale: 1.5, RemoveTime: 2,
			},
			"goleling": {
				Name: "Goleling", Archetype: ArchetypeGoleling,
				Health: 1, Damage: 1, Speed: 3,
				DetectionRange: 8, AttackRange: 1.0,
				Telegraph: 0.3, AttackDuration: 0.1, Recovery: 0.5,
				LedgeLookahead: 1.5, LedgeDrop: 4.0, RetreatTime: 1.5,
				Width: 0.6, Height: 0.9,
				BloodKind: ParticleBlood, BloodCount: 12, BloodScale: 1.5, RemoveTime: 2,
			},
			"gargoyle": {
				Name: "Stone Gargoyle", Archetype: ArchetypeGargoyle,
				Health: 2, Damage: 1, Speed: 3.5,
				DetectionRange: 12, AttackRange: 4,
				Telegraph: 0.5, AttackDuration: 1.0, Recovery: 1.5,
				IsFlying: true,
				Width: 1.2, Height: 1.2,
				BloodKind: ParticleBlood, BloodCount: 12, BloodScale: 1.5, RemoveTime: 2,
			},
			"orcWarlord": {
				Name: "Ironbound Warlord", Archetype: ArchetypeBoss,
				Health: 40, Damage: 2, Speed: 2, ChargeSpeed: 9,
				DetectionRange: 20, AttackRange: 3.5,
				Telegraph: 1.2, AttackDuration: 0.4, Recovery: 2.5,
				LedgeLookahead: 2.5, LedgeDrop: 3.0, RetreatTime: 3,
				HasShield: true, IsBoss: true,
				Width: 2.0, Height: 3.5,
				BloodKind: ParticleBlood, BloodCount: 40, BloodScale: 4, RemoveTime: 3,
			},
		},
	}

	Boss = BossConfig{
		ArenaHalfWidth: 25,
		LockInset:      2,
	}

	Level = LevelConfig{
		Start:          "graveyard",
		SpawnFallbackY: 5,
		FinishMargin:   2,
		VictoryGate:    1.0,
		CheckpointDist: 1.0,
	}

	Camera = CameraConfig{
		LeadOffset:   1.5,
		Height:       3,
		FloorY:       -2,
		FollowTime:   0.25,
		ShakeHit:     0.2,
		ShakeHeavy:   0.3,
		ShakeHurt:    0.5,
		ShakeTimeHit: 0.2,
	}
}
