package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EffectKind selects how an effect entity is drawn
type EffectKind int

const (
	EffectAttackFlash EffectKind = iota
	EffectSpark
	EffectHitNumber
)

// EffectData is a short-lived presentation entity. It never feeds back into
// the simulation.
type EffectData struct {
	Kind     EffectKind
	Position math.Vec2
	Size     float64
	Color    color.RGBA
	Outline  color.RGBA
	Text     string
	Age      time.Duration
	Life     time.Duration
	Rise     *gween.Tween // Hit numbers float up along this tween
	Offset   float32
}

// Progress returns the elapsed fraction of the effect's life
func (e *EffectData) Progress() float64 {
	if e.Life <= 0 {
		return 1
	}
	p := float64(e.Age) / float64(e.Life)
	if p > 1 {
		return 1
	}
	return p
}

var Effect = donburi.NewComponentType[EffectData]()

// ParticleData is one victory celebration particle
type ParticleData struct {
	Position      math.Vec2
	Velocity      math.Vec2
	Size          float64
	Color         color.RGBA
	Rotation      float64
	RotationSpeed float64
	Gravity       float64
	Alpha         float64
}

var Particle = donburi.NewComponentType[ParticleData]()
