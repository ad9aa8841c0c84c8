package systems

import (
	"math"
	"sort"

	"github.com/automoto/tkuet-fighter/components"
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatformSupport lands fighters on platform tops and drops them when
// they walk off an edge.
func UpdatePlatformSupport(ecs *ecs.ECS) {
	if !IsMatchRunning(ecs) {
		return
	}

	rules := getRules(ecs.World)
	space := getSpace(ecs.World)
	groundY := rules.GroundY()

	for _, e := range fightersBySlot(ecs.World) {
		if e == nil || components.Fighter.Get(e).Dead {
			continue
		}
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		body := obj.Rect()
		platforms := platformsCrossed(space, body, physics.PrevY)
		support := PlatformSupport(body, physics.PrevY, platforms, groundY)
		if support.Supported {
			obj.Y = support.Y
			physics.VelocityY = 0
			physics.Airborne = false
			continue
		}
		physics.Airborne = true
	}
}

// platformsCrossed looks up the platforms a body could have landed on this
// tick: everything in the column it swept since prevY, down to one pixel
// below its feet so a body resting on a top still finds it. The result is
// ordered like PlatformRects.
func platformsCrossed(space *resolv.Space, body gamemath.Rect, prevY float64) []gamemath.Rect {
	top := math.Min(prevY, body.Y)
	swept := gamemath.Rect{X: body.X, Y: top, W: body.W, H: body.Bottom() + 1 - top}

	var rects []gamemath.Rect
	for _, obj := range bodiesIn(space, swept, tags.ResolvPlatform) {
		rects = append(rects, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	}
	sortTopLeft(rects)
	return rects
}

// PlatformRects returns the platform layout from the collision space, top
// to bottom then left to right.
func PlatformRects(ecs *ecs.ECS) []gamemath.Rect {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}

	var rects []gamemath.Rect
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if obj.HasTags(tags.ResolvPlatform) {
			rects = append(rects, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
		}
	}
	sortTopLeft(rects)
	return rects
}

func sortTopLeft(rects []gamemath.Rect) {
	sort.Slice(rects, func(i, j int) bool {
		if rects[i].Y != rects[j].Y {
			return rects[i].Y < rects[j].Y
		}
		return rects[i].X < rects[j].X
	})
}
