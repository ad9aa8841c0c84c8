package factory

import (
	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the resolv space covering the arena. Bodies that
// leave the screen simply stop occupying cells.
func CreateSpace(ecs *ecs.ECS, cell int) *donburi.Entry {
	screen := MustRules(ecs.World).Screen

	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(screen.Width, screen.Height, cell, cell))
	return space
}
