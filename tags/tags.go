package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Platform   = donburi.NewTag().SetName("Platform")
	Projectile = donburi.NewTag().SetName("Projectile")
	Timer      = donburi.NewTag().SetName("Timer")
	Effect     = donburi.NewTag().SetName("Effect")
	Particle   = donburi.NewTag().SetName("Particle")
)

// Resolv tags for the collision space
const (
	ResolvPlatform   = "platform"
	ResolvFighter    = "fighter"
	ResolvProjectile = "projectile"
)
