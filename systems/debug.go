package systems

import (
	"fmt"
	"image/color"

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
	debugPlatform   = color.RGBA{100, 100, 100, 255}
	debugFighter    = color.RGBA{0, 255, 255, 255}
	debugProjectile = color.RGBA{0, 255, 0, 255}
	debugHitbox     = color.RGBA{255, 0, 0, 120}
)

// DrawDebug outlines every collision body and both melee hit-boxes, and
// prints the tick and swing counters. Only drawn while the overlay is switched on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	rules := getRules(ecs.World)

	outline := func(tag *donburi.ComponentType[donburi.Tag], c color.RGBA) {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			r := components.Object.Get(e).Rect()
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
		})
	}
	outline(tags.Platform, debugPlatform)
	outline(tags.Fighter, debugFighter)
	outline(tags.Projectile, debugProjectile)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		box := FighterHitbox(e, rules.Combat)
		vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 1, debugHitbox, false)
	})

	clock := getClock(ecs.World)
	projectiles, timers := 0, 0
	tags.Projectile.Each(ecs.World, func(*donburi.Entry) { projectiles++ })
	tags.Timer.Each(ecs.World, func(*donburi.Entry) { timers++ })

	var swings [cfg.PlayerCount]int
	for slot, f := range fightersBySlot(ecs.World) {
		if f != nil {
			swings[slot] = components.MeleeAttack.Get(f).Swings
		}
	}

	line := fmt.Sprintf("tick %d  tps %.0f  projectiles %d  timers %d  swings %d/%d",
		clock.Tick, ebiten.ActualTPS(), projectiles, timers, swings[0], swings[1])
	text.Draw(screen, line, fonts.Small.Get(), 10, screen.Bounds().Dy()-10, cfg.White)
}
