package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	Reset()
	require.NoError(t, Current().Validate())
}

func TestParse_MergesEnemyFields(t *testing.T) {
	Reset()
	base := Current()

	s, err := Parse(base, []byte(`
player:
  maxArmor: 5
enemies:
  orcGrunt:
    health: 7
weapons:
  axe:
    speed: 12
`))
	require.NoError(t, err)

	assert.Equal(t, 5, s.Player.MaxArmor)
	assert.Equal(t, 6.0, s.Player.RunSpeed, "untouched fields keep defaults")

	grunt := s.Enemies["orcGrunt"]
	assert.Equal(t, 7, grunt.Health)
	assert.True(t, grunt.HasShield, "partial enemy override keeps other fields")
	assert.Equal(t, ArchetypeOrc, grunt.Archetype)

	assert.Equal(t, 12.0, s.Weapons["axe"].Speed)
	assert.Equal(t, TrajectoryArc, s.Weapons["axe"].Trajectory)

	assert.Equal(t, 3, base.Player.MaxArmor, "base is not modified")
	assert.Equal(t, 3, base.Enemies["orcGrunt"].Health)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"zero step", func(s *Settings) { s.Physics.FixedStep = 0 }},
		{"bad trajectory", func(s *Settings) {
			w := s.Weapons["spear"]
			w.Trajectory = "boomerang"
			s.Weapons["spear"] = w
		}},
		{"dead enemy", func(s *Settings) {
			e := s.Enemies["gargoyle"]
			e.Health = 0
			s.Enemies["gargoyle"] = e
		}},
		{"unknown archetype", func(s *Settings) {
			e := s.Enemies["goleling"]
			e.Archetype = "dragon"
			s.Enemies["goleling"] = e
		}},
		{"boss flag mismatch", func(s *Settings) {
			e := s.Enemies["orcGrunt"]
			e.IsBoss = true
			s.Enemies["orcGrunt"] = e
		}},
		{"inventory", func(s *Settings) { s.Player.Inventory = []string{"bow"} }},
		{"projectile cap", func(s *Settings) { s.Attacks.Throw.MaxOnScreen = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			s := Current()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_CustomPath(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  start: crypt\n"), 0o644))

	source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, "crypt", Level.Start)
	assert.Equal(t, 40, Enemy.Types["orcWarlord"].Health)
}

func TestLoad_InvalidLeavesDefaults(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  maxArmor: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, 3, Player.MaxArmor)
}

func TestLoad_MissingFile(t *testing.T) {
	defer Reset()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	id, ok := ParseAction("attackSecondary")
	require.True(t, ok)
	assert.Equal(t, ActionAttackSecondary, id)
	assert.Equal(t, "attackSecondary", id.String())

	_, ok = ParseAction("dance")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ActionCount.String())
}
