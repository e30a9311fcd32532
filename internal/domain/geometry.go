package domain

// Position is the screen-space top-left corner of a floating element.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the size of an element or container.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
