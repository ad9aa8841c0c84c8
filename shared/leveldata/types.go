// Package leveldata parses stage files into platform layouts.
// It depends on go-tiled only, never on ebitengine or donburi.
package leveldata

import "github.com/automoto/tkuet-fighter/shared/gamemath"

// StageData holds the layout-relevant data parsed from a TMX stage file.
// Positions are stored as fractions of the map so the layout can be rebuilt
// for any viewport.
type StageData struct {
	Name        string
	Platforms   []PlatformSpec
	SpawnPoints []SpawnPoint
}

// PlatformSpec is a platform whose top-left corner is a viewport fraction and
// whose size is in pixels.
type PlatformSpec struct {
	FX, FY float64
	W, H   float64
}

// SpawnPoint is a fighter spawn location as a fraction of viewport width.
type SpawnPoint struct {
	FX    float64
	Index int
}

// Layout converts the stage platforms into rectangles for a viewport.
func (s *StageData) Layout(screenW, screenH int) []gamemath.Rect {
	rects := make([]gamemath.Rect, 0, len(s.Platforms))
	for _, p := range s.Platforms {
		rects = append(rects, gamemath.Rect{
			X: p.FX * float64(screenW),
			Y: p.FY * float64(screenH),
			W: p.W,
			H: p.H,
		})
	}
	return rects
}

// SpawnFraction returns the spawn fraction for a fighter slot, or fallback
// when the stage does not define one.
func (s *StageData) SpawnFraction(index int, fallback float64) float64 {
	for _, sp := range s.SpawnPoints {
		if sp.Index == index {
			return sp.FX
		}
	}
	return fallback
}

// DefaultStage is the built-in three platform layout.
func DefaultStage() *StageData {
	return &StageData{
		Name: "arena",
		Platforms: []PlatformSpec{
			{FX: 0.3, FY: 0.6, W: 200, H: 30},
			{FX: 0.6, FY: 0.4, W: 200, H: 30},
			{FX: 0.2, FY: 0.3, W: 200, H: 30},
		},
	}
}
