package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateAttackFlash spawns the circle shown in front of a fighter when its
// attack window opens.
func CreateAttackFlash(ecs *ecs.ECS, x, y float64, fill, outline color.RGBA) *donburi.Entry {
	rules := MustRules(ecs.World)
	e := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(e, components.EffectData{
		Kind:     components.EffectAttackFlash,
		Position: dmath.Vec2{X: x, Y: y},
		Size:     40,
		Color:    fill,
		Outline:  outline,
		Life:     rules.Effects.AttackFlash,
	})
	return e
}

// CreateSpark spawns a round hit spark centred on x, y
func CreateSpark(ecs *ecs.ECS, x, y float64, c color.RGBA) *donburi.Entry {
	rules := MustRules(ecs.World)
	e := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(e, components.EffectData{
		Kind:     components.EffectSpark,
		Position: dmath.Vec2{X: x, Y: y},
		Size:     rules.Effects.SparkSize,
		Color:    c,
		Life:     rules.Effects.SparkLife,
	})
	return e
}

// CreateHitNumber spawns a damage label that floats up and fades out
func CreateHitNumber(ecs *ecs.ECS, x, y float64, text string) *donburi.Entry {
	rules := MustRules(ecs.World)
	e := archetypes.Effect.Spawn(ecs)
	life := rules.Effects.HitNumber
	components.Effect.SetValue(e, components.EffectData{
		Kind:     components.EffectHitNumber,
		Position: dmath.Vec2{X: x, Y: y},
		Color:    cfg.White,
		Text:     text,
		Life:     life,
		Rise:     gween.New(0, float32(rules.Effects.HitNumberRise), float32(life.Seconds()), ease.Linear),
	})
	return e
}

// CreateVictoryParticles bursts celebration particles up from below the screen
func CreateVictoryParticles(ecs *ecs.ECS, rng *rand.Rand) {
	rules := MustRules(ecs.World)
	w := float64(rules.Screen.Width)
	h := float64(rules.Screen.Height)

	for i := 0; i < rules.Effects.VictoryParticles; i++ {
		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			Position:      dmath.Vec2{X: rng.Float64() * w, Y: h + 10},
			Velocity:      dmath.Vec2{X: (rng.Float64() - 0.5) * 8, Y: -rng.Float64()*15 - 10},
			Size:          rng.Float64()*8 + 4,
			Color:         cfg.VictoryColors[rng.Intn(len(cfg.VictoryColors))],
			Rotation:      rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.2,
			Gravity:       rules.Effects.ParticleGravity,
			Alpha:         1,
		})
	}
}
