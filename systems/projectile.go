package systems

import (
	"sort"
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// fireShot spawns one projectile from the fighter's forward edge unless the
// per-shot cooldown is still running. Damage and colour are fixed by the
// fighter's super state at this moment.
func fireShot(ecs *ecs.ECS, e *donburi.Entry, rules *cfg.Rules, now time.Duration) bool {
	shooter := components.Shooter.Get(e)
	if now < shooter.NextShotAt {
		return false
	}
	shooter.NextShotAt = now + rules.Projectile.Cooldown

	obj := components.Object.Get(e)
	fighter := components.Fighter.Get(e)
	super := components.Super.Get(e).Active

	x := obj.X - rules.Projectile.SpawnOffsetX
	velocity := -rules.ProjectileSpeed()
	if fighter.FacingRight {
		x = obj.X + obj.W + rules.Projectile.SpawnOffsetX
		velocity = rules.ProjectileSpeed()
	}

	damage := rules.Combat.AttackDamage
	color := fighter.Profile.Color
	if super {
		damage *= rules.Combat.SuperMultiplier
		color = cfg.Gold
	}

	factory.CreateProjectile(ecs, factory.ProjectileSpawn{
		Owner:     e,
		X:         x,
		Y:         obj.Y + obj.H*rules.Projectile.SpawnHeight,
		VelocityX: velocity,
		Radius:    rules.Projectile.Radius,
		Damage:    damage,
		Super:     super,
		Color:     color,
	})
	return true
}

// UpdateProjectiles moves every projectile, records its trail, applies hits
// against the owner's opponent and drops projectiles that left the arena.
func UpdateProjectiles(ecs *ecs.ECS) {
	if !IsMatchRunning(ecs) {
		return
	}

	rules := getRules(ecs.World)
	fighters := fightersBySlot(ecs.World)
	right := float64(rules.Screen.Width) + rules.Projectile.OffscreenPad
	left := -rules.Projectile.OffscreenPad

	var projectiles []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectiles = append(projectiles, e)
	})
	sort.SliceStable(projectiles, func(i, j int) bool {
		a := components.Projectile.Get(projectiles[i])
		b := components.Projectile.Get(projectiles[j])
		if a.OwnerSlot != b.OwnerSlot {
			return a.OwnerSlot < b.OwnerSlot
		}
		return a.Seq < b.Seq
	})

	var toRemove []*donburi.Entry
	for _, e := range projectiles {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		p.Trail = append([]math.Vec2{{X: obj.X, Y: obj.Y}}, p.Trail...)
		if len(p.Trail) > rules.Projectile.TrailLength {
			p.Trail = p.Trail[:rules.Projectile.TrailLength]
		}

		obj.X += p.VelocityX
		obj.Update()

		if p.OwnerSlot >= 0 && p.OwnerSlot < cfg.PlayerCount {
			if defender := fighters[opponentSlot(p.OwnerSlot)]; defender != nil && ResolveProjectileHit(ecs, e, defender) {
				toRemove = append(toRemove, e)
				continue
			}
		}

		if obj.X < left || obj.X > right {
			toRemove = append(toRemove, e)
		}
	}

	for _, e := range toRemove {
		destroyProjectile(ecs, e)
	}
}

// destroyProjectile takes the projectile out of the collision space and the
// world
func destroyProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	if space := getSpace(ecs.World); space != nil {
		space.Remove(components.Object.Get(e).Object)
	}
	ecs.World.Remove(e.Entity())
}
