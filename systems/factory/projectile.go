package factory

import (
	"image/color"

	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileSpawn describes a projectile at the moment it is fired
type ProjectileSpawn struct {
	Owner     *donburi.Entry
	X, Y      float64
	VelocityX float64
	Radius    float64
	Damage    int
	Super     bool
	Color     color.RGBA
}

// CreateProjectile spawns a projectile. Its body is the square of side
// 2×Radius whose top-left corner is the spawn point.
func CreateProjectile(ecs *ecs.ECS, s ProjectileSpawn) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := s.Radius * 2
	obj := resolv.NewObject(s.X, s.Y, size, size, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	data := components.ProjectileData{
		Owner:     donburi.Null,
		OwnerSlot: -1,
		VelocityX: s.VelocityX,
		Radius:    s.Radius,
		Damage:    s.Damage,
		Super:     s.Super,
		Color:     s.Color,
	}
	if s.Owner != nil && s.Owner.Valid() {
		data.Owner = s.Owner.Entity()
		if s.Owner.HasComponent(components.Fighter) {
			data.OwnerSlot = components.Fighter.Get(s.Owner).Slot
		}
		if s.Owner.HasComponent(components.Shooter) {
			shooter := components.Shooter.Get(s.Owner)
			data.Seq = shooter.Fired
			shooter.Fired++
		}
	}
	components.Projectile.SetValue(p, data)

	return p
}
