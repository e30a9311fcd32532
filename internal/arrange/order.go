package arrange

import (
	"fmt"

	"slidebuilder/internal/domain"
)

// MoveItem returns a new order with the id at from reinserted at to.
// Ids between the two indices shift by one. Both indices must be within
// [0, len(order)); anything else is a caller bug and panics.
func MoveItem(order domain.Order, from, to int) domain.Order {
	n := len(order)
	if from < 0 || from >= n || to < 0 || to >= n {
		panic(fmt.Sprintf("arrange: move %d -> %d out of range [0, %d)", from, to, n))
	}
	out := make(domain.Order, n)
	copy(out, order)
	if from == to {
		return out
	}
	id := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = id
	return out
}

// IndexOf returns the position of id in items, or -1.
func IndexOf(items []domain.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// OrderOf lists the ids of items in their current sequence.
func OrderOf(items []domain.Item) domain.Order {
	order := make(domain.Order, len(items))
	for i, it := range items {
		order[i] = it.ID
	}
	return order
}

// ApplyOrder sorts items by order. Items the order does not mention keep their
// relative sequence and go on top; ids without a matching item are dropped.
func ApplyOrder(items []domain.Item, order domain.Order) []domain.Item {
	byID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]domain.Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, id := range order {
		it, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, it)
	}
	for _, it := range items {
		if !seen[it.ID] {
			seen[it.ID] = true
			out = append(out, it)
		}
	}
	return out
}
