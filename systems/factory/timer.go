package factory

import (
	"time"

	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScheduleTimer stores a sub-event that fires once delay of simulated time
// has elapsed. The returned entry can be removed to cancel it.
func ScheduleTimer(ecs *ecs.ECS, kind components.TimerKind, owner donburi.Entity, delay time.Duration) *donburi.Entry {
	t := archetypes.Timer.Spawn(ecs)
	components.Timer.SetValue(t, components.TimerData{
		Kind:      kind,
		Owner:     owner,
		Remaining: delay,
	})
	return t
}
