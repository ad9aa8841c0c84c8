package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Owner     donburi.Entity
	OwnerSlot int
	Seq       int // Spawn order within the owner
	VelocityX float64
	Radius    float64
	Damage    int // Fixed at spawn
	Super     bool
	Color     color.RGBA
	Trail     []math.Vec2 // Newest first
}

var Projectile = donburi.NewComponentType[ProjectileData]()
