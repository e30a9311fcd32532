package menu

import (
	"slidebuilder/internal/arrange"
	"slidebuilder/internal/domain"
)

// Position is where the menu should be drawn. Before Measure it is the
// requested position; afterwards it is the corrected one.
func (c *Controller) Position() domain.Position {
	return c.position
}

// Measure corrects the menu position once its rendered size is known, so
// the menu stays inside the viewport.
func (c *Controller) Measure(size domain.Bounds) domain.Position {
	c.position = arrange.ClampPosition(c.position, size, c.viewport)
	return c.position
}
