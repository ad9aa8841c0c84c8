package components

import (
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the axis-aligned body of fighters, projectiles and platforms
type ObjectData struct {
	*resolv.Object
}

// Rect returns the body as a plain rectangle
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space holding platforms, fighters and
// projectiles
var Space = donburi.NewComponentType[resolv.Space]()
