package config

import "image/color"

// FighterProfile holds everything that differs between the two fighters.
// It is handed to the factory at spawn time; systems never branch on the
// player index.
type FighterProfile struct {
	Name          string
	Color         color.RGBA
	SpawnFraction float64 // Spawn x as a fraction of screen width
	FacingRight   bool

	Width  float64
	Height float64

	// Animation frame ceilings and per-tick advance
	AttackFrames float64
	AttackSpeed  float64
	WalkFrames   float64
	WalkSpeed    float64
	JumpFrames   float64
	JumpSpeed    float64

	// Horizontal scale per animation state
	WalkScale   float64
	AttackScale float64
	JumpScale   float64
}

// Fighters are the default profiles for player one and player two
var Fighters [PlayerCount]FighterProfile

func init() {
	Fighters = [PlayerCount]FighterProfile{
		{
			Name:          "玩家一",
			Color:         Blue,
			SpawnFraction: 0.2,
			FacingRight:   true,
			Width:         50,
			Height:        100,
			AttackFrames:  9,
			AttackSpeed:   0.25,
			WalkFrames:    8,
			WalkSpeed:     0.15,
			JumpFrames:    8,
			JumpSpeed:     0.2,
			WalkScale:     1,
			AttackScale:   1,
			JumpScale:     1,
		},
		{
			Name:          "玩家二",
			Color:         Red,
			SpawnFraction: 0.8,
			FacingRight:   false,
			Width:         50,
			Height:        100,
			AttackFrames:  7,
			AttackSpeed:   0.25,
			WalkFrames:    7,
			WalkSpeed:     0.15,
			JumpFrames:    7,
			JumpSpeed:     0.2,
			WalkScale:     0.6,
			AttackScale:   0.8,
			JumpScale:     0.8,
		},
	}
}
