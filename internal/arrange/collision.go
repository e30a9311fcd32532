package arrange

import (
	"fmt"

	"slidebuilder/internal/domain"
)

// FindCollision walks items from current in the given direction (+1 or -1)
// and returns the index of the first item whose box overlaps moving.
// The second result is false when the walk reaches the end without a hit.
func FindCollision(moving domain.Item, items []domain.Item, current, direction int) (int, bool) {
	if direction != 1 && direction != -1 {
		panic(fmt.Sprintf("arrange: collision direction must be +1 or -1, got %d", direction))
	}
	box := RectOf(moving)
	for i := current + direction; i >= 0 && i < len(items); i += direction {
		if items[i].ID == moving.ID {
			continue
		}
		if BoxesOverlap(box, RectOf(items[i])) {
			return i, true
		}
	}
	return -1, false
}
