package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Page is a slide. Items holds the serialized z-order (JSON list of item ids,
// back-most first).
type Page struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Items     string    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Bounds returns the page size as a container.
func (p Page) Bounds() Bounds {
	return Bounds{Width: p.Width, Height: p.Height}
}

// PagePatch is the payload of a z-order commit.
type PagePatch struct {
	Items string `json:"items"`
}

// Order is a back-to-front sequence of item ids. Index 0 is back-most.
type Order []string

// Serialize encodes the order as a JSON list.
func (o Order) Serialize() (string, error) {
	if o == nil {
		o = Order{}
	}
	data, err := json.Marshal([]string(o))
	if err != nil {
		return "", fmt.Errorf("serialize order: %w", err)
	}
	return string(data), nil
}

// ParseOrder decodes a serialized order. An empty string is an empty order.
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return Order{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, fmt.Errorf("parse order: %w", err)
	}
	return Order(ids), nil
}

type PageStore interface {
	CreatePage(p *Page) error
	GetPage(id string) (*Page, error)
	ListPages() ([]Page, error)
	UpdatePageItems(id, items string) error
	RemoveItem(pageID, itemID string) error
	DeletePage(id string) error
}
