package config

import "time"

// Rules is the per-match copy of every value the simulation reads. A match
// takes one at construction, so changing the globals mid-round has no effect
// until the next reset.
type Rules struct {
	Screen     ScreenConfig
	Physics    PhysicsConfig
	Combat     CombatConfig
	Projectile ProjectileConfig
	Super      SuperConfig
	Match      MatchConfig
	Effects    EffectsConfig
	Fighters   [PlayerCount]FighterProfile
}

// CurrentRules snapshots the global configuration
func CurrentRules() Rules {
	r := Rules{
		Screen:     Screen,
		Physics:    Physics,
		Combat:     Combat,
		Projectile: Projectile,
		Super:      Super,
		Match:      Match,
		Effects:    Effects,
		Fighters:   Fighters,
	}
	r.Projectile.BurstDelays = append([]time.Duration(nil), Projectile.BurstDelays...)
	return r
}

// GroundY is the top of a body resting on the ground baseline
func (r Rules) GroundY() float64 {
	return float64(r.Screen.Height) - r.Physics.GroundOffset
}

// Gravity is the per-tick vertical acceleration
func (r Rules) Gravity() float64 {
	return float64(r.Screen.Height) * r.Physics.GravityFactor
}

// WalkSpeed is the per-tick horizontal speed
func (r Rules) WalkSpeed() float64 {
	return float64(r.Screen.Width) * r.Physics.SpeedFactor
}

// ProjectileSpeed is the per-tick bullet speed
func (r Rules) ProjectileSpeed() float64 {
	return float64(r.Screen.Width) * r.Projectile.SpeedFactor
}
