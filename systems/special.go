package systems

import (
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// activateSuper spends the full meter and enters super mode. A pending
// expiry from an earlier activation is cancelled so the new window lasts
// the full duration.
func activateSuper(ecs *ecs.ECS, e *donburi.Entry, rules *cfg.Rules, now time.Duration) {
	super := components.Super.Get(e)
	energy := components.Energy.Get(e)

	energy.Current = 0
	super.Active = true
	super.ActivatedAt = now
	super.Activations++

	if pending := entryFor(ecs.World, super.Expiry); pending != nil {
		ecs.World.Remove(pending.Entity())
	}
	super.Expiry = factory.ScheduleTimer(ecs, components.TimerSuperExpiry, e.Entity(), rules.Super.Duration).Entity()

	for i := 0; i < rules.Super.EffectCount; i++ {
		factory.ScheduleTimer(ecs, components.TimerSuperEffect, e.Entity(), time.Duration(i)*rules.Super.EffectInterval)
	}

	SuperActivated.Publish(ecs.World, SuperActivatedEvent{
		Fighter: e.Entity(),
		Slot:    components.Fighter.Get(e).Slot,
		At:      now,
		Until:   now + rules.Super.Duration,
	})
}

// expireSuper ends super mode if timer is still the fighter's live expiry
func expireSuper(e *donburi.Entry, timer donburi.Entity) {
	super := components.Super.Get(e)
	if super.Expiry != timer {
		return
	}
	super.Active = false
	super.Expiry = donburi.Null
}

// spawnSuperSpark places one burst spark at a random point on the body
func spawnSuperSpark(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	fighter := components.Fighter.Get(e)
	rng := getRandom(ecs.World)

	c := fighter.Profile.Color
	if components.Super.Get(e).Active {
		c = cfg.White
	}
	factory.CreateSpark(ecs, obj.X+rng.Float64()*obj.W, obj.Y+rng.Float64()*obj.H, c)
}
