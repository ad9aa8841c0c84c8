package systems

import (
	"fmt"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformEpsilon absorbs float error when a body was snapped onto a top
const platformEpsilon = 1e-6

// Support is the result of a platform check for one body
type Support struct {
	Supported bool
	Y         float64 // Body top to snap to when supported
	Platform  int     // Index into the platform list, -1 for the ground baseline
}

// PlatformSupport decides whether body rests on a platform top or the ground
// baseline. Platforms are one-way: a body only lands on a top its feet
// reached from above during this tick, so fighters jump up through them.
// Platforms are checked before the baseline.
func PlatformSupport(body gamemath.Rect, prevY float64, platforms []gamemath.Rect, groundY float64) Support {
	feet := body.Bottom()
	prevFeet := prevY + body.H

	for i, p := range platforms {
		if !gamemath.OverlapsX(body, p) {
			continue
		}
		if feet >= p.Y-platformEpsilon && prevFeet <= p.Y+platformEpsilon {
			return Support{Supported: true, Y: p.Y - body.H, Platform: i}
		}
	}

	if body.Y >= groundY-platformEpsilon {
		return Support{Supported: true, Y: groundY, Platform: -1}
	}
	return Support{Platform: -1}
}

// MeleeHitbox returns the attack rectangle in front of a body. Width and
// forward offset scale with the fighter's attack pose.
func MeleeHitbox(body gamemath.Rect, facingRight bool, profile cfg.FighterProfile, combat cfg.CombatConfig) gamemath.Rect {
	width := combat.HitboxWidth * profile.AttackScale
	offset := combat.HitboxOffsetX * profile.AttackScale

	x := body.X - width - offset
	if facingRight {
		x = body.Right() + offset
	}
	return gamemath.Rect{
		X: x,
		Y: body.Y + combat.HitboxOffsetY,
		W: width,
		H: combat.HitboxHeight,
	}
}

// FighterHitbox returns the current melee rectangle of a fighter entry
func FighterHitbox(e *donburi.Entry, combat cfg.CombatConfig) gamemath.Rect {
	f := components.Fighter.Get(e)
	return MeleeHitbox(components.Object.Get(e).Rect(), f.FacingRight, f.Profile, combat)
}

// ResolveMeleeHit applies the attacker's active swing to the defender when
// the hit-box overlaps the defender's body. A swing connects at most once.
func ResolveMeleeHit(ecs *ecs.ECS, attacker, defender *donburi.Entry) bool {
	melee := components.MeleeAttack.Get(attacker)
	if !melee.Active || melee.HitLanded {
		return false
	}

	rules := getRules(ecs.World)
	box := FighterHitbox(attacker, rules.Combat)
	target := components.Object.Get(defender)
	if !touches(getSpace(ecs.World), box, target.Object, tags.ResolvFighter) {
		return false
	}
	body := target.Rect()
	melee.HitLanded = true

	super := components.Super.Get(attacker).Active
	damage := rules.Combat.AttackDamage
	if super {
		damage *= rules.Combat.SuperMultiplier
	}

	attackerFighter := components.Fighter.Get(attacker)
	sparkColor := attackerFighter.Profile.Color
	if super {
		sparkColor = cfg.Gold
	}
	cx, cy := overlapCenter(box, body)
	factory.CreateSpark(ecs, cx, cy, sparkColor)

	hp := applyHit(ecs, attacker, defender, damage)

	MeleeHit.Publish(ecs.World, MeleeHitEvent{
		Attacker:     attacker.Entity(),
		Defender:     defender.Entity(),
		AttackerSlot: attackerFighter.Slot,
		DefenderSlot: components.Fighter.Get(defender).Slot,
		Damage:       damage,
		Super:        super,
		DefenderHP:   hp,
	})
	return true
}

// ResolveProjectileHit applies a projectile to the defender when their
// bodies overlap. The caller removes the projectile on a hit.
func ResolveProjectileHit(ecs *ecs.ECS, projectile, defender *donburi.Entry) bool {
	p := components.Projectile.Get(projectile)
	box := components.Object.Get(projectile).Rect()
	if !touches(getSpace(ecs.World), box, components.Object.Get(defender).Object, tags.ResolvFighter) {
		return false
	}

	factory.CreateSpark(ecs, box.X+box.W/2, box.Y+box.H/2, p.Color)

	owner := entryFor(ecs.World, p.Owner)
	hp := applyHit(ecs, owner, defender, p.Damage)

	ProjectileHit.Publish(ecs.World, ProjectileHitEvent{
		Owner:        p.Owner,
		Defender:     defender.Entity(),
		OwnerSlot:    p.OwnerSlot,
		DefenderSlot: components.Fighter.Get(defender).Slot,
		Damage:       p.Damage,
		Super:        p.Super,
		DefenderHP:   hp,
	})
	return true
}

// bodiesIn returns the objects carrying tag whose bodies overlap r. The
// space is searched with a query object grown by a pixel on every side:
// resolv assigns cells up to an object's last whole pixel, so an overlap
// thinner than that across a cell edge would otherwise be skipped.
func bodiesIn(space *resolv.Space, r gamemath.Rect, tag string) []*resolv.Object {
	if space == nil {
		return nil
	}

	query := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2)
	space.Add(query)
	defer space.Remove(query)

	check := query.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var found []*resolv.Object
	for _, obj := range check.Objects {
		if gamemath.Overlaps(r, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			found = append(found, obj)
		}
	}
	return found
}

// touches reports whether target is among the tagged bodies overlapping r
func touches(space *resolv.Space, r gamemath.Rect, target *resolv.Object, tag string) bool {
	for _, obj := range bodiesIn(space, r, tag) {
		if obj == target {
			return true
		}
	}
	return false
}

// applyHit lowers the defender's health, rewards the attacker with energy
// and floats the damage number. attacker may be nil. Returns the defender's
// remaining health.
func applyHit(ecs *ecs.ECS, attacker, defender *donburi.Entry, damage int) int {
	rules := getRules(ecs.World)

	health := components.Health.Get(defender)
	health.Damage(damage)

	if attacker != nil && attacker.HasComponent(components.Energy) {
		components.Energy.Get(attacker).Gain(rules.Combat.EnergyOnHit)
	}

	body := components.Object.Get(defender)
	factory.CreateHitNumber(ecs, body.X+body.W/2, body.Y, fmt.Sprintf("-%d", damage))

	return health.Current
}

func overlapCenter(a, b gamemath.Rect) (float64, float64) {
	left := max(a.X, b.X)
	right := min(a.Right(), b.Right())
	top := max(a.Y, b.Y)
	bottom := min(a.Bottom(), b.Bottom())
	return (left + right) / 2, (top + bottom) / 2
}
