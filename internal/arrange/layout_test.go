package arrange

import (
	"testing"

	"slidebuilder/internal/domain"
)

var page = domain.Bounds{Width: 1000, Height: 800}

func TestNextPosition_EmptyPage(t *testing.T) {
	le := NewLayoutEngine(0)
	x, y := le.NextPosition(nil, page, 200, 100)
	if x != 0 || y != 0 {
		t.Errorf("expected (0, 0) for empty page, got (%.0f, %.0f)", x, y)
	}
}

func TestNextPosition_AvoidsExistingItems(t *testing.T) {
	le := NewLayoutEngine(0)
	existing := []domain.Item{
		{Left: 0, Top: 0, Width: 300, Height: 200},
		{Left: 340, Top: 0, Width: 300, Height: 200},
	}
	x, y := le.NextPosition(existing, page, 200, 100)

	r := Rect{x, y, 200, 100}
	for _, it := range existing {
		padded := Rect{it.Left - Padding, it.Top - Padding, it.Width + Padding*2, it.Height + Padding*2}
		if BoxesOverlap(r, padded) {
			t.Errorf("position (%.0f, %.0f) overlaps item at (%.0f, %.0f)", x, y, it.Left, it.Top)
		}
	}
	if x+200 > page.Width || y+100 > page.Height {
		t.Errorf("position (%.0f, %.0f) leaves the page", x, y)
	}
}

func TestNextPosition_FullPageFallsBelow(t *testing.T) {
	le := NewLayoutEngine(0)
	existing := []domain.Item{{Left: 0, Top: 0, Width: 1000, Height: 800}}
	x, y := le.NextPosition(existing, page, 100, 100)
	if x != 0 || y != 820 {
		t.Errorf("expected (0, 820), got (%.0f, %.0f)", x, y)
	}
}

func TestSnap(t *testing.T) {
	le := NewLayoutEngine(30)
	tests := []struct {
		input, want float64
	}{
		{0, 0},
		{15, 30},
		{29, 30},
		{30, 30},
		{45, 60},
		{100, 90},
	}
	for _, tt := range tests {
		if got := le.snap(tt.input); got != tt.want {
			t.Errorf("snap(%.0f) = %.0f, want %.0f", tt.input, got, tt.want)
		}
	}
}
