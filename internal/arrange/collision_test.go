package arrange

import (
	"slices"
	"testing"

	"slidebuilder/internal/domain"
)

func box(id string, left, top, w, h float64) domain.Item {
	return domain.Item{ID: id, Left: left, Top: top, Width: w, Height: h}
}

func TestFindCollision_Forward(t *testing.T) {
	a := box("a", 0, 0, 100, 100)
	b := box("b", 50, 50, 100, 100)
	c := box("c", 400, 400, 50, 50)
	items := []domain.Item{a, b, c}

	idx, ok := FindCollision(a, items, 0, 1)
	if !ok || idx != 1 {
		t.Fatalf("FindCollision = (%d, %v), want (1, true)", idx, ok)
	}
	got := MoveItem(OrderOf(items), 0, idx)
	if want := (domain.Order{"b", "a", "c"}); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFindCollision_SkipsNonOverlapping(t *testing.T) {
	a := box("a", 0, 0, 100, 100)
	b := box("b", 500, 500, 10, 10)
	c := box("c", 50, 50, 10, 10)
	items := []domain.Item{a, b, c}

	idx, ok := FindCollision(a, items, 0, 1)
	if !ok || idx != 2 {
		t.Fatalf("FindCollision = (%d, %v), want (2, true)", idx, ok)
	}
	got := MoveItem(OrderOf(items), 0, idx)
	if want := (domain.Order{"b", "c", "a"}); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFindCollision_Backward(t *testing.T) {
	a := box("a", 0, 0, 100, 100)
	b := box("b", 300, 300, 10, 10)
	c := box("c", 50, 50, 100, 100)
	items := []domain.Item{a, b, c}

	idx, ok := FindCollision(c, items, 2, -1)
	if !ok || idx != 0 {
		t.Fatalf("FindCollision = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestFindCollision_None(t *testing.T) {
	items := []domain.Item{
		box("a", 0, 0, 10, 10),
		box("b", 10, 0, 10, 10),
		box("c", 100, 100, 10, 10),
	}
	if idx, ok := FindCollision(items[0], items, 0, 1); ok || idx != -1 {
		t.Errorf("FindCollision = (%d, %v), want (-1, false)", idx, ok)
	}
	if idx, ok := FindCollision(items[2], items, 2, -1); ok || idx != -1 {
		t.Errorf("FindCollision backward = (%d, %v), want (-1, false)", idx, ok)
	}
}

func TestFindCollision_BadDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for direction 2")
		}
	}()
	FindCollision(domain.Item{}, nil, 0, 2)
}
