package systems

import (
	"github.com/automoto/tkuet-fighter/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every body with the collision space at its
// current position. Runs after movement and before any hit check.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
}
