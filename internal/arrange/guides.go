package arrange

import (
	"iter"
	"maps"
	"slices"

	"slidebuilder/internal/domain"
)

// ComputeGuides yields the guide lines to draw on axis while a drag is snapped.
// Only candidates equal to the active intersection are produced, converted to
// screen space by dividing by zoom. Nothing is produced without an active match
// on axis.
func ComputeGuides(axis domain.Axis, guides domain.GuideSet, matches domain.MatchSet, show bool, zoom float64) iter.Seq[domain.Guide] {
	return func(yield func(domain.Guide) bool) {
		if len(matches) == 0 {
			return
		}
		match, ok := matches[axis]
		if !ok {
			return
		}
		if zoom <= 0 {
			zoom = 1
		}
		for _, box := range slices.Sorted(maps.Keys(guides)) {
			for _, pos := range guides[box].On(axis) {
				if pos != match.Intersection {
					continue
				}
				g := domain.Guide{
					Axis:     axis,
					Box:      box,
					Position: pos / zoom,
					Active:   show,
				}
				if !yield(g) {
					return
				}
			}
		}
	}
}
