package systems

import (
	"github.com/automoto/tkuet-fighter/components"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ages flashes, sparks and hit numbers and moves victory
// particles. It keeps running after the round ends so the celebration plays
// over the frozen arena.
func UpdateEffects(ecs *ecs.ECS) {
	clock := getClock(ecs.World)
	updateTimedEffects(ecs, clock)
	updateParticles(ecs)
}

func updateTimedEffects(ecs *ecs.ECS, clock *components.ClockData) {
	var toRemove []*donburi.Entry
	delta := clock.Delta

	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fx.Age += delta
		if fx.Rise != nil {
			fx.Offset, _ = fx.Rise.Update(float32(delta.Seconds()))
		}
		if fx.Age >= fx.Life {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

func updateParticles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	fade := getRules(ecs.World).Effects.ParticleFade

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Velocity.Y += p.Gravity
		p.Rotation += p.RotationSpeed
		p.Alpha -= fade
		if p.Alpha <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}
