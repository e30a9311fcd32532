package arrange

import (
	"math"

	"slidebuilder/internal/domain"
)

// BoxGuides returns the edge and center lines of an item: left, center, right
// on x and top, middle, bottom on y.
func BoxGuides(it domain.Item) domain.AxisGuides {
	return domain.AxisGuides{
		X: []float64{it.Left, it.Left + it.Width/2, it.Left + it.Width},
		Y: []float64{it.Top, it.Top + it.Height/2, it.Top + it.Height},
	}
}

// GuideSetFor collects the guides of every item except the one being dragged.
func GuideSetFor(items []domain.Item, excludeID string) domain.GuideSet {
	set := make(domain.GuideSet, len(items))
	for _, it := range items {
		if it.ID == excludeID {
			continue
		}
		set[it.ID] = BoxGuides(it)
	}
	return set
}

// FindMatches picks, per axis, the candidate closest to one of the moving
// box's own lines within tolerance. Axes without such a candidate are absent.
func FindMatches(moving domain.Item, guides domain.GuideSet, tolerance float64) domain.MatchSet {
	own := BoxGuides(moving)
	matches := domain.MatchSet{}
	for _, axis := range []domain.Axis{domain.AxisX, domain.AxisY} {
		best, bestDist := 0.0, math.Inf(1)
		for _, box := range guides {
			for _, candidate := range box.On(axis) {
				for _, line := range own.On(axis) {
					if !AxisIntersection(line, candidate, tolerance) {
						continue
					}
					if d := math.Abs(line - candidate); d < bestDist || (d == bestDist && candidate < best) {
						best, bestDist = candidate, d
					}
				}
			}
		}
		if !math.IsInf(bestDist, 1) {
			matches[axis] = domain.Match{Intersection: best}
		}
	}
	return matches
}
