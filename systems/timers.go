package systems

import (
	"sort"

	"github.com/automoto/tkuet-fighter/components"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers counts every scheduled sub-event down by the tick's simulated
// delta and fires the ones that came due, earliest first. Timers belong to
// the world, so a reset drops them along with everything else.
func UpdateTimers(ecs *ecs.ECS) {
	if !IsMatchRunning(ecs) {
		return
	}

	delta := getClock(ecs.World).Delta

	var due []*donburi.Entry
	tags.Timer.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Timer.Get(e)
		t.Remaining -= delta
		if t.Remaining <= 0 {
			due = append(due, e)
		}
	})

	sort.SliceStable(due, func(i, j int) bool {
		return components.Timer.Get(due[i]).Remaining < components.Timer.Get(due[j]).Remaining
	})

	for _, e := range due {
		// An earlier timer in this batch may have cancelled this one
		if !e.Valid() {
			continue
		}
		fireTimer(ecs, e)
		if e.Valid() {
			ecs.World.Remove(e.Entity())
		}
	}
}

func fireTimer(ecs *ecs.ECS, e *donburi.Entry) {
	t := components.Timer.Get(e)
	owner := entryFor(ecs.World, t.Owner)
	if owner == nil || components.Fighter.Get(owner).Dead {
		return
	}

	switch t.Kind {
	case components.TimerBurstShot:
		fireShot(ecs, owner, getRules(ecs.World), getClock(ecs.World).Now)
	case components.TimerSuperExpiry:
		expireSuper(owner, e.Entity())
	case components.TimerSuperEffect:
		spawnSuperSpark(ecs, owner)
	}
}
