package factory

import (
	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a static platform to the world and the collision space
func CreatePlatform(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	object := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(object)
	}

	return platform
}
