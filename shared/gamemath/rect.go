package gamemath

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the interiors of a and b intersect. Touching
// edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// OverlapsX reports whether the horizontal spans of a and b intersect.
func OverlapsX(a, b Rect) bool {
	return a.Right() > b.X && a.X < b.Right()
}
