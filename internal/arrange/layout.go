package arrange

import (
	"math"

	"slidebuilder/internal/domain"
)

const (
	GridSize = 10.0
	Padding  = 20.0
)

// LayoutEngine finds free slots for new items so they don't land on top of
// existing ones.
type LayoutEngine struct {
	gridSize float64
	padding  float64
}

func NewLayoutEngine(gridSize float64) *LayoutEngine {
	if gridSize <= 0 {
		gridSize = GridSize
	}
	return &LayoutEngine{gridSize: gridSize, padding: Padding}
}

// snap rounds v to the nearest grid point.
func (le *LayoutEngine) snap(v float64) float64 {
	return math.Round(v/le.gridSize) * le.gridSize
}

// NextPosition finds the first grid position inside page where an item of
// size (w, h) overlaps no existing item (with padding). Rows are scanned
// top-to-bottom, columns left-to-right. When the page is full the item goes
// below everything.
func (le *LayoutEngine) NextPosition(existing []domain.Item, page domain.Bounds, w, h float64) (float64, float64) {
	if len(existing) == 0 {
		return 0, 0
	}

	occupied := make([]Rect, len(existing))
	for i, it := range existing {
		occupied[i] = Rect{
			X: it.Left - le.padding,
			Y: it.Top - le.padding,
			W: it.Width + le.padding*2,
			H: it.Height + le.padding*2,
		}
	}

	candidate := Rect{W: w, H: h}
	for y := 0.0; y+h <= page.Height; y += le.gridSize {
		for x := 0.0; x+w <= page.Width; x += le.gridSize {
			candidate.X = le.snap(x)
			candidate.Y = le.snap(y)

			free := true
			for _, occ := range occupied {
				if BoxesOverlap(candidate, occ) {
					free = false
					break
				}
			}
			if free {
				return candidate.X, candidate.Y
			}
		}
	}

	maxY := 0.0
	for _, it := range existing {
		if it.Top+it.Height > maxY {
			maxY = it.Top + it.Height
		}
	}
	return 0, le.snap(maxY + le.padding)
}
