package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
)

type FontName string

const (
	HUD    FontName = "hud"
	Small  FontName = "small"
	Banner FontName = "banner"
	Title  FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	faces = map[FontName]font.Face{}
)

// LoadDefaults loads every face from the bundled M+ font, which covers the
// CJK fighter names.
func LoadDefaults() error {
	sizes := map[FontName]float64{
		HUD:    20,
		Small:  14,
		Banner: 48,
		Title:  100,
	}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, fonts.MPlus1pRegular_ttf, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	faces[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Width returns the advance width of s in face, in whole pixels
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := faces[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
