package scenes

import (
	"github.com/automoto/tkuet-fighter/fonts"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const introTitle = "TKUET"

// TitleIntro zooms the game title in over the arena, then fades it out.
// The two halves of the duration run one after the other.
type TitleIntro struct {
	scale *gween.Tween
	fade  *gween.Tween

	Scale float32
	Alpha float32

	zoomed bool
	done   bool
}

// NewTitleIntro creates an intro lasting seconds in total
func NewTitleIntro(seconds float64) *TitleIntro {
	half := float32(seconds / 2)
	return &TitleIntro{
		scale: gween.New(2.5, 1, half, ease.OutBack),
		fade:  gween.New(1, 0, half, ease.InQuad),
		Scale: 2.5,
		Alpha: 1,
	}
}

// Update advances the animation by dt seconds
func (ti *TitleIntro) Update(dt float32) {
	if ti.done {
		return
	}
	if !ti.zoomed {
		ti.Scale, ti.zoomed = ti.scale.Update(dt)
		return
	}
	ti.Alpha, ti.done = ti.fade.Update(dt)
}

// Done reports whether the title has fully faded
func (ti *TitleIntro) Done() bool {
	return ti.done
}

func (ti *TitleIntro) Draw(screen *ebiten.Image) {
	if ti.done || ti.Alpha <= 0 {
		return
	}

	face := fonts.Title.Get()
	width := float64(fonts.Width(face, introTitle))
	ascent := float64(face.Metrics().Ascent.Ceil())
	bounds := screen.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-width/2, ascent/2)
	op.GeoM.Scale(float64(ti.Scale), float64(ti.Scale))
	op.GeoM.Translate(float64(bounds.Dx())/2, float64(bounds.Dy())/3)
	op.ColorScale.ScaleWithColor(cfg.Gold)
	op.ColorScale.ScaleAlpha(ti.Alpha)

	text.DrawWithOptions(screen, introTitle, face, op)
}
