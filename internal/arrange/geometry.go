package arrange

import (
	"math"

	"slidebuilder/internal/domain"
)

// DefaultTolerance is the snap distance in document pixels. Comparisons happen
// in document space, so it does not scale with zoom.
const DefaultTolerance = 5.0

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y, W, H float64
}

// RectOf returns the bounding box of an item.
func RectOf(it domain.Item) Rect {
	return Rect{X: it.Left, Y: it.Top, W: it.Width, H: it.Height}
}

func (a Rect) intersects(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// BoxesOverlap reports whether a and b share a region of positive area.
// Touching edges do not count.
func BoxesOverlap(a, b Rect) bool {
	return a.intersects(b)
}

// AxisIntersection reports whether two coordinates are aligned within tolerance.
func AxisIntersection(candidate, target, tolerance float64) bool {
	return math.Abs(candidate-target) <= tolerance
}
