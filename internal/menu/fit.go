package menu

import "slidebuilder/internal/domain"

// FitPatch sizes it to page and moves it to (0, 0). Images keep their
// width:height ratio: the longer side takes the page dimension and the other
// side is scaled to match. Square images and other item types take the page
// size as is.
func FitPatch(it domain.Item, page domain.Bounds) domain.ItemPatch {
	width, height := page.Width, page.Height
	if it.ItemType == domain.ItemTypeImage && it.Width > 0 && it.Height > 0 {
		switch {
		case it.Height > it.Width:
			width = it.Width * height / it.Height
		case it.Width > it.Height:
			height = it.Height * width / it.Width
		}
	}
	left, top := 0.0, 0.0
	return domain.ItemPatch{
		Left:   &left,
		Top:    &top,
		Width:  &width,
		Height: &height,
	}
}
