package arrange

import (
	"slices"
	"testing"

	"slidebuilder/internal/domain"
)

func TestMoveItem(t *testing.T) {
	base := domain.Order{"a", "b", "c", "d"}
	tests := []struct {
		name     string
		from, to int
		want     domain.Order
	}{
		{"to front", 0, 3, domain.Order{"b", "c", "d", "a"}},
		{"to back", 3, 0, domain.Order{"d", "a", "b", "c"}},
		{"one forward", 1, 2, domain.Order{"a", "c", "b", "d"}},
		{"one backward", 2, 1, domain.Order{"a", "c", "b", "d"}},
		{"same index", 2, 2, domain.Order{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveItem(base, tt.from, tt.to)
			if !slices.Equal(got, tt.want) {
				t.Errorf("MoveItem(%v, %d, %d) = %v, want %v", base, tt.from, tt.to, got, tt.want)
			}
		})
	}
	if !slices.Equal(base, domain.Order{"a", "b", "c", "d"}) {
		t.Errorf("MoveItem mutated its input: %v", base)
	}
}

func TestMoveItem_InverseRestoresOrder(t *testing.T) {
	base := domain.Order{"a", "b", "c", "d", "e"}
	for from := range base {
		for to := range base {
			moved := MoveItem(base, from, to)
			if len(moved) != len(base) {
				t.Fatalf("length changed: %v", moved)
			}
			sorted := slices.Clone(moved)
			slices.Sort(sorted)
			if !slices.Equal(sorted, base) {
				t.Fatalf("ids changed for %d -> %d: %v", from, to, moved)
			}
			if back := MoveItem(moved, to, from); !slices.Equal(back, base) {
				t.Errorf("%d -> %d -> %d gave %v", from, to, from, back)
			}
		}
	}
}

func TestMoveItem_PanicsOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, 3}, {3, 0}, {0, -1}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MoveItem(%d, %d) did not panic", c[0], c[1])
				}
			}()
			MoveItem(domain.Order{"a", "b", "c"}, c[0], c[1])
		}()
	}
}

func TestIndexOf(t *testing.T) {
	items := []domain.Item{{ID: "a"}, {ID: "b"}}
	if got := IndexOf(items, "b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := IndexOf(items, "zz"); got != -1 {
		t.Errorf("IndexOf(zz) = %d, want -1", got)
	}
}

func TestApplyOrder(t *testing.T) {
	items := []domain.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "new"}}
	got := OrderOf(ApplyOrder(items, domain.Order{"c", "ghost", "a", "b", "a"}))
	want := domain.Order{"c", "a", "b", "new"}
	if !slices.Equal(got, want) {
		t.Errorf("ApplyOrder = %v, want %v", got, want)
	}
}
