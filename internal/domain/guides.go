package domain

type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// AxisGuides holds candidate guide coordinates of one box, in document space.
type AxisGuides struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// On returns the candidates for the given axis.
func (g AxisGuides) On(axis Axis) []float64 {
	if axis == AxisY {
		return g.Y
	}
	return g.X
}

// GuideSet maps a box id to its candidate guides.
type GuideSet map[string]AxisGuides

// Match is the coordinate a drag is currently snapped to.
type Match struct {
	Intersection float64 `json:"intersection"`
}

// MatchSet holds the active snap per axis. A missing axis has no snap.
type MatchSet map[Axis]Match

// Guide is a single guide line to draw, in screen space.
type Guide struct {
	Axis     Axis    `json:"axis"`
	Box      string  `json:"box"`
	Position float64 `json:"position"`
	Active   bool    `json:"active"`
}
