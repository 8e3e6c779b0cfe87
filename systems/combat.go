package systems

import (
	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts applies touch damage from attacking enemies.
func UpdateContacts(ecs *ecs.ECS) {
	combat.ResolveContact(ecs.World)
}
