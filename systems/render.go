package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/fonts"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image

	platformBody    = color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255}
	platformOutline = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 255}
	hitboxOutline   = color.RGBA{R: 255, A: 128}
)

// withAlpha returns c with its alpha multiplied by a
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}

// DrawPlatforms renders the platform layout
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, r := range PlatformRects(ecs) {
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.FillRect(screen, x, y, w, h, platformBody, false)
		vector.StrokeRect(screen, x, y, w, h, 2, platformOutline, false)
		vector.FillRect(screen, x, y, w, h*0.3, cfg.PlatformFill, false)
	}
}

// DrawFighters renders both fighters with their overhead bars. The melee
// hit-box is outlined while it can connect.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	rules := getRules(ecs.World)
	for _, e := range fightersBySlot(ecs.World) {
		if e == nil {
			continue
		}
		drawFighterBody(screen, e)
		drawOverheadBars(screen, e)

		if components.MeleeAttack.Get(e).Active {
			box := FighterHitbox(e, rules.Combat)
			vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 1, hitboxOutline, false)
		}
	}
}

func drawFighterBody(screen *ebiten.Image, e *donburi.Entry) {
	obj := components.Object.Get(e)
	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)

	alpha := 1.0
	if fighter.Dead {
		alpha = 0.4
	}
	body := withAlpha(fighter.Profile.Color, alpha)

	scale := fighter.Profile.WalkScale
	switch fighter.Anim {
	case cfg.AnimAttack:
		scale = fighter.Profile.AttackScale
	case cfg.AnimJump:
		scale = fighter.Profile.JumpScale
	}

	cx := float32(obj.X + obj.W/2)
	cy := float32(obj.Y + obj.H/2)
	top := float32(obj.Y)
	half := float32(15 * scale)

	if components.Super.Get(e).Active {
		vector.StrokeRect(screen, float32(obj.X)-4, top-4, float32(obj.W)+8, float32(obj.H)+8, 3, withAlpha(cfg.Gold, 0.8), false)
	}

	// Legs swing with the walk cycle
	legSwing := float32(0)
	if fighter.Walking && fighter.Anim == cfg.AnimWalk {
		legSwing = float32(math.Sin(fighter.Frame/fighter.Profile.WalkFrames*2*math.Pi)) * 12
	}
	feet := float32(obj.Y + obj.H)
	vector.StrokeLine(screen, cx-6, cy+10, cx-6+legSwing, feet, 8, body, false)
	vector.StrokeLine(screen, cx+6, cy+10, cx+6-legSwing, feet, 8, body, false)

	// Torso and head
	vector.FillRect(screen, cx-half, top+20, half*2, 40, body, false)
	vector.DrawFilledCircle(screen, cx, top+10, 15, body, true)

	// The leading arm extends through the swing
	reach := float32(0)
	if melee.Attacking {
		reach = float32(math.Sin(melee.Progress/fighter.Profile.AttackFrames*math.Pi)) * 30
	}
	dir := float32(-1)
	if fighter.FacingRight {
		dir = 1
	}
	vector.StrokeLine(screen, cx, top+30, cx+dir*(half+reach), top+45-reach/3, 6, body, false)
	vector.StrokeLine(screen, cx, top+30, cx-dir*half, top+55, 6, body, false)
}

func drawOverheadBars(screen *ebiten.Image, e *donburi.Entry) {
	obj := components.Object.Get(e)
	fighter := components.Fighter.Get(e)
	health := components.Health.Get(e)
	energy := components.Energy.Get(e)

	x, y, w := float32(obj.X), float32(obj.Y), float32(obj.W)
	hp := float32(health.Current) / float32(health.Max)
	en := float32(energy.Current / energy.Max)

	vector.FillRect(screen, x-5, y-25, w+10, 15, cfg.HUD.HealthBack, false)
	vector.FillRect(screen, x, y-20, w*hp, 10, healthColor(hp), false)
	vector.FillRect(screen, x-5, y-40, w+10, 10, cfg.HUD.EnergyBack, false)
	vector.FillRect(screen, x, y-35, w*en, 5, cfg.HUD.EnergyFill, false)

	face := fonts.Small.Get()
	nameX := int(obj.X+obj.W/2) - fonts.Width(face, fighter.Profile.Name)/2
	text.Draw(screen, fighter.Profile.Name, face, nameX, int(obj.Y)-45, cfg.White)
}

// healthColor shades from green at full health to red when empty
func healthColor(fraction float32) color.RGBA {
	return color.RGBA{R: uint8(255 * (1 - fraction)), G: uint8(255 * fraction), A: 255}
}

// DrawProjectiles renders every projectile with its fading trail
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)
		r := float32(p.Radius)

		trail := withAlpha(p.Color, 0.3)
		for i := 1; i < len(p.Trail); i++ {
			a, b := p.Trail[i-1], p.Trail[i]
			vector.StrokeLine(screen, float32(a.X)+r, float32(a.Y)+r, float32(b.X)+r, float32(b.Y)+r, r*1.6, trail, true)
		}
		vector.DrawFilledCircle(screen, float32(obj.X)+r, float32(obj.Y)+r, r, p.Color, true)
	})
}

// DrawEffects renders attack flashes, sparks and floating hit numbers
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fade := 1 - fx.Progress()
		x, y := float32(fx.Position.X), float32(fx.Position.Y)

		switch fx.Kind {
		case components.EffectAttackFlash:
			r := float32(fx.Size / 2)
			vector.DrawFilledCircle(screen, x+r, y+r, r, withAlpha(fx.Color, 0.7*fade), true)
			vector.StrokeCircle(screen, x+r, y+r, r, 2, withAlpha(fx.Outline, fade), true)
		case components.EffectSpark:
			r := float32(fx.Size / 2 * (0.5 + 0.5*fade))
			vector.DrawFilledCircle(screen, x, y, r, withAlpha(fx.Color, fade), true)
		case components.EffectHitNumber:
			face := fonts.HUD.Get()
			tx := int(fx.Position.X) - fonts.Width(face, fx.Text)/2
			text.Draw(screen, fx.Text, face, tx, int(fx.Position.Y-float64(fx.Offset)), withAlpha(fx.Color, fade))
		}
	})
}

// DrawParticles renders the victory celebration
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-0.5, -0.5)
		drawOp.GeoM.Scale(p.Size, p.Size)
		drawOp.GeoM.Rotate(p.Rotation)
		drawOp.GeoM.Translate(p.Position.X, p.Position.Y)
		drawOp.ColorScale.ScaleWithColor(p.Color)
		drawOp.ColorScale.ScaleAlpha(float32(math.Max(0, p.Alpha)))
		screen.DrawImage(pixel, drawOp)
	})
}
