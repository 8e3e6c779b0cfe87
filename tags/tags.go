package tags

import (
	"github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")

	// Enemy archetypes
	Ghoul    = donburi.NewTag().SetName("Ghoul")
	Orc      = donburi.NewTag().SetName("Orc")
	Gargoyle = donburi.NewTag().SetName("Gargoyle")
	Goleling = donburi.NewTag().SetName("Goleling")
	Boss     = donburi.NewTag().SetName("Boss")
)

// ForArchetype returns the tag marking enemies of archetype a.
func ForArchetype(a config.Archetype) *donburi.ComponentType[donburi.Tag] {
	switch a {
	case config.ArchetypeOrc:
		return Orc
	case config.ArchetypeGargoyle:
		return Gargoyle
	case config.ArchetypeGoleling:
		return Goleling
	case config.ArchetypeBoss:
		return Boss
	default:
		return Ghoul
	}
}
