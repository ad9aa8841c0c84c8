package archetypes

import (
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Health,
		components.Energy,
		components.MeleeAttack,
		components.Shooter,
		components.Super,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Timer = newArchetype(
		tags.Timer,
		components.Timer,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
		components.Clock,
		components.Input,
		components.Rules,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(all, cs...)...,
	))
	return e
}
