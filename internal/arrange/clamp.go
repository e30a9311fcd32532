package arrange

import "slidebuilder/internal/domain"

// ClampPosition moves requested inward on each axis where an element of the
// given size would overflow container. Axes that already fit are unchanged.
// An element larger than the container is pinned to the top/left edge.
func ClampPosition(requested domain.Position, element, container domain.Bounds) domain.Position {
	return domain.Position{
		X: clampAxis(requested.X, element.Width, container.Width),
		Y: clampAxis(requested.Y, element.Height, container.Height),
	}
}

func clampAxis(pos, size, limit float64) float64 {
	if pos+size > limit {
		pos = limit - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
