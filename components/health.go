package components

import (
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers health by n, never below zero
func (h *HealthData) Damage(n int) {
	h.Current = gamemath.ClampInt(h.Current-n, 0, h.Max)
}

// Set assigns health clamped to [0, Max]
func (h *HealthData) Set(v int) {
	h.Current = gamemath.ClampInt(v, 0, h.Max)
}

type EnergyData struct {
	Current float64
	Max     float64
}

// Gain adds n energy, never above Max
func (e *EnergyData) Gain(n float64) {
	e.Current = gamemath.Clamp(e.Current+n, 0, e.Max)
}

// Full reports whether the meter is at Max
func (e *EnergyData) Full() bool {
	return e.Current >= e.Max
}

var Health = donburi.NewComponentType[HealthData]()
var Energy = donburi.NewComponentType[EnergyData]()
