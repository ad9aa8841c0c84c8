package factory

import (
	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the fighter for slot standing on the ground baseline
// at spawnFraction of the screen width.
func CreateFighter(ecs *ecs.ECS, slot int, spawnFraction float64) *donburi.Entry {
	rules := MustRules(ecs.World)
	profile := rules.Fighters[slot]

	fighter := archetypes.Fighter.Spawn(ecs)

	x := float64(rules.Screen.Width) * spawnFraction
	y := rules.GroundY()
	obj := resolv.NewObject(x, y, profile.Width, profile.Height, tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Slot:        slot,
		Profile:     profile,
		FacingRight: profile.FacingRight,
		Anim:        cfg.AnimWalk,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Speed: rules.WalkSpeed(),
		PrevY: y,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: rules.Combat.MaxHealth,
		Max:     rules.Combat.MaxHealth,
	})
	components.Energy.SetValue(fighter, components.EnergyData{
		Current: 0,
		Max:     rules.Combat.MaxEnergy,
	})
	components.MeleeAttack.SetValue(fighter, components.MeleeAttackData{Phase: cfg.MeleeIdle})
	components.Shooter.SetValue(fighter, components.ShooterData{})
	components.Super.SetValue(fighter, components.SuperData{Expiry: donburi.Null})

	return fighter
}
