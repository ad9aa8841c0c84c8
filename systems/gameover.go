package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	gameOverTitle = "遊戲結束!"
	restartHint   = "按空白鍵重新開始"
)

var dividerColor = color.RGBA{R: 255, G: 255, B: 255, A: 77}

// DrawGameOver renders the result overlay once the round has ended
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStateGameOver {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	drawCentered(screen, gameOverTitle, fonts.Title.Get(), width/2, height/2-80, cfg.Gold)

	result := WinnerName(e)
	resultColor := cfg.White
	switch match.WinnerSlot {
	case 0:
		result = fmt.Sprintf("%s 獲勝!", result)
		resultColor = cfg.LightBlue
	case 1:
		result = fmt.Sprintf("%s 獲勝!", result)
		resultColor = cfg.LightRed
	}
	drawCentered(screen, result, fonts.Banner.Get(), width/2, height/2, resultColor)

	vector.StrokeLine(screen, float32(width/2-200), float32(height/2+40), float32(width/2+200), float32(height/2+40), 2, dividerColor, false)

	drawCentered(screen, restartHint, fonts.HUD.Get(), width/2, height/2+100, cfg.White)
}

// drawCentered draws s with its baseline at y, centred on x
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(x)-fonts.Width(face, s)/2, int(y), clr)
}
