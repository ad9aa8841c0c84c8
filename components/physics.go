package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	Speed     float64 // Horizontal distance per tick
	VelocityY float64 // Only meaningful while airborne
	Airborne  bool
	PrevY     float64 // Body top at the start of the tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
