package systems

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the top health and energy bars, the fighter names and the
// round timer. Player two's bars drain toward the right edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	width := float32(screen.Bounds().Dx())
	hud := cfg.HUD
	barW, barH, margin := float32(hud.BarWidth), float32(hud.BarHeight), float32(hud.Margin)
	face := fonts.HUD.Get()

	for slot, e := range fightersBySlot(ecs.World) {
		if e == nil {
			continue
		}
		health := components.Health.Get(e)
		energy := components.Energy.Get(e)
		name := components.Fighter.Get(e).Profile.Name

		hp := float32(health.Current) / float32(health.Max)
		en := float32(energy.Current / energy.Max)

		x := margin
		fillX, energyX := x, x
		if slot == 1 {
			x = width - margin - barW
			fillX = width - margin - barW*hp
			energyX = width - margin - barW*en
		}

		vector.FillRect(screen, x, margin, barW, barH, hud.HealthBack, false)
		vector.FillRect(screen, fillX, margin, barW*hp, barH, healthColor(hp), false)
		vector.FillRect(screen, x, margin+barH+5, barW, barH/2, hud.EnergyBack, false)
		vector.FillRect(screen, energyX, margin+barH+5, barW*en, barH/2, hud.EnergyFill, false)

		nameX := int(margin)
		if slot == 1 {
			nameX = int(width-margin) - fonts.Width(face, name)
		}
		text.Draw(screen, name, face, nameX, int(margin+barH*2+10), cfg.White)
	}

	drawMatchTimer(screen, match, getClock(ecs.World).Now)
}

// FormatRemaining renders a duration as m:ss, rounding partial seconds down
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func drawMatchTimer(screen *ebiten.Image, match *components.MatchData, now time.Duration) {
	face := fonts.Banner.Get()
	timeStr := FormatRemaining(match.Remaining)

	// Pulse red during the final seconds
	clr := withAlpha(cfg.White, 1)
	if match.TimeWarning {
		alpha := 0.5 + math.Abs(math.Sin(now.Seconds()*10))*0.5
		clr = withAlpha(cfg.HUD.WarningColor, alpha)
	}

	x := screen.Bounds().Dx()/2 - fonts.Width(face, timeStr)/2
	y := int(cfg.HUD.TimerY) + face.Metrics().Ascent.Ceil()
	text.Draw(screen, timeStr, face, x, y, clr)
}
