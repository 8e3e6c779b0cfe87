package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Settings bundles every tunable section so it can be overlaid from a file.
type Settings struct {
	Physics    PhysicsConfig              `yaml:"physics"`
	Collision  CollisionConfig            `yaml:"collision"`
	Player     PlayerConfig               `yaml:"player"`
	Attacks    AttacksConfig              `yaml:"attacks"`
	Weapons    map[string]WeaponConfig    `yaml:"-"`
	Projectile ProjectileConfig           `yaml:"projectile"`
	Enemy      EnemyConfig                `yaml:"enemy"`
	Enemies    map[string]EnemyTypeConfig `yaml:"-"`
	Boss       BossConfig                 `yaml:"boss"`
	Level      LevelConfig                `yaml:"level"`
	Camera     CameraConfig               `yaml:"camera"`
}

// overlay carries the keyed tables as raw nodes so entries merge field by field.
type overlay struct {
	Weapons map[string]yaml.Node `yaml:"weapons"`
	Enemies map[string]yaml.Node `yaml:"enemies"`
}

// Current returns a deep copy of the active configuration.
func Current() Settings {
	s := Settings{
		Physics:    Physics,
		Collision:  Collision,
		Player:     Player,
		Attacks:    Attacks,
		Projectile: Projectile,
		Enemy:      Enemy,
		Boss:       Boss,
		Level:      Level,
		Camera:     Camera,
		Weapons:    make(map[string]WeaponConfig, len(Weapons)),
		Enemies:    make(map[string]EnemyTypeConfig, len(Enemy.Types)),
	}
	s.Player.Inventory = append([]string(nil), Player.Inventory...)
	s.Player.ArmorShardCounts = make(map[int]int, len(Player.ArmorShardCounts))
	for k, v := range Player.ArmorShardCounts {
		s.Player.ArmorShardCounts[k] = v
	}
	for k, v := range Weapons {
		s.Weapons[k] = v
	}
	for k, v := range Enemy.Types {
		s.Enemies[k] = v
	}
	s.Enemy.Types = nil
	return s
}

// Apply installs s as the active configuration.
func Apply(s Settings) {
	Physics = s.Physics
	Collision = s.Collision
	Player = s.Player
	Attacks = s.Attacks
	Weapons = s.Weapons
	Projectile = s.Projectile
	Boss = s.Boss
	Level = s.Level
	Camera = s.Camera
	Enemy = s.Enemy
	Enemy.Types = s.Enemies
}

// Parse overlays YAML data onto base. Keys that are absent keep their base value.
func Parse(base Settings, data []byte) (Settings, error) {
	out := base
	out.Player.ArmorShardCounts = make(map[int]int, len(base.Player.ArmorShardCounts))
	for k, v := range base.Player.ArmorShardCounts {
		out.Player.ArmorShardCounts[k] = v
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}

	var ov overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return base, fmt.Errorf("parse config tables: %w", err)
	}

	out.Weapons = make(map[string]WeaponConfig, len(base.Weapons))
	for k, v := range base.Weapons {
		out.Weapons[k] = v
	}
	for name, node := range ov.Weapons {
		w := out.Weapons[name]
		if err := node.Decode(&w); err != nil {
			return base, fmt.Errorf("parse weapon %s: %w", name, err)
		}
		out.Weapons[name] = w
	}

	out.Enemies = make(map[string]EnemyTypeConfig, len(base.Enemies))
	for k, v := range base.Enemies {
		out.Enemies[k] = v
	}
	for name, node := range ov.Enemies {
		t := out.Enemies[name]
		if err := node.Decode(&t); err != nil {
			return base, fmt.Errorf("parse enemy %s: %w", name, err)
		}
		out.Enemies[name] = t
	}

	return out, nil
}

// Load reads a YAML file, overlays it on the built-in defaults, validates the
// result and applies it.
// Search order: path -> ~/.ghouls/config.yaml -> ./configs/config.yaml -> defaults
func Load(path string) (string, error) {
	Reset()
	base := Current()

	source, data, err := find(path)
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", nil
	}

	s, err := Parse(base, data)
	if err != nil {
		return source, fmt.Errorf("%s: %w", source, err)
	}
	if err := s.Validate(); err != nil {
		return source, fmt.Errorf("%s: %w", source, err)
	}
	Apply(s)
	return source, nil
}

func find(path string) (string, []byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return path, nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return path, data, nil
	}

	candidates := []string{filepath.Join("configs", "config.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append([]string{filepath.Join(home, ".ghouls", "config.yaml")}, candidates...)
	}
	for _, c := range candidates {
		if data, err := os.ReadFile(c); err == nil {
			return c, data, nil
		}
	}
	return "", nil, nil
}

// Validate checks the invariants the simulation relies on.
func (s Settings) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if s.Physics.FixedStep <= 0 {
		bad("physics.fixedStep must be positive")
	}
	if s.Physics.MaxFrameDelta < s.Physics.FixedStep {
		bad("physics.maxFrameDelta must be at least one fixed step")
	}
	if s.Collision.SpaceCellSize <= 0 {
		bad("collision.spaceCellSize must be positive")
	}
	if s.Player.MaxArmor <= 0 {
		bad("player.maxArmor must be positive")
	}
	if s.Attacks.Throw.MaxOnScreen <= 0 {
		bad("attacks.throw.maxOnScreen must be positive")
	}
	for _, p := range []struct {
		name string
		ph   PhaseConfig
	}{{"throw", s.Attacks.Throw.PhaseConfig}, {"heavy", s.Attacks.Heavy.PhaseConfig}} {
		if p.ph.Anticipation < 0 || p.ph.Active < 0 || p.ph.Recovery < 0 {
			bad("attacks.%s phases must not be negative", p.name)
		}
	}

	for _, item := range s.Player.Inventory {
		if _, ok := s.Weapons[item]; !ok {
			bad("player.inventory references unknown weapon %q", item)
		}
	}

	for _, name := range sortedKeys(s.Weapons) {
		w := s.Weapons[name]
		switch w.Trajectory {
		case TrajectoryStraight, TrajectoryArc, TrajectoryLob:
		default:
			bad("weapon %s: unknown trajectory %q", name, w.Trajectory)
		}
		if w.Speed <= 0 {
			bad("weapon %s: speed must be positive", name)
		}
		if w.Damage < 0 || w.FireRate < 0 {
			bad("weapon %s: damage and fireRate must not be negative", name)
		}
	}

	for _, name := range sortedKeys(s.Enemies) {
		t := s.Enemies[name]
		switch t.Archetype {
		case ArchetypeGhoul, ArchetypeOrc, ArchetypeGargoyle, ArchetypeGoleling, ArchetypeBoss:
		default:
			bad("enemy %s: unknown archetype %q", name, t.Archetype)
		}
		if t.Health <= 0 {
			bad("enemy %s: health must be positive", name)
		}
		if t.Speed <= 0 {
			bad("enemy %s: speed must be positive", name)
		}
		if t.Width <= 0 || t.Height <= 0 {
			bad("enemy %s: hurtbox must have positive size", name)
		}
		if t.Telegraph < 0 || t.AttackDuration < 0 || t.Recovery < 0 {
			bad("enemy %s: phase durations must not be negative", name)
		}
		if t.IsBoss != (t.Archetype == ArchetypeBoss) {
			bad("enemy %s: isBoss must match the boss archetype", name)
		}
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
