package domain

import "time"

type ItemType string

const (
	ItemTypeImage  ItemType = "image"
	ItemTypeText   ItemType = "text"
	ItemTypeHeader ItemType = "header"
	ItemTypeShape  ItemType = "shape"
	ItemTypeChart  ItemType = "chart"
)

// Item is a positioned element on a page. Geometry is in unscaled document
// coordinates.
type Item struct {
	ID        string    `json:"id"`
	PageID    string    `json:"pageId"`
	ItemType  ItemType  `json:"itemType"`
	Left      float64   `json:"left"`
	Top       float64   `json:"top"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	IsLocked  bool      `json:"isLocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemPatch is a partial geometry or lock update. Nil fields are left untouched.
type ItemPatch struct {
	Left     *float64 `json:"left,omitempty"`
	Top      *float64 `json:"top,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	IsLocked *bool    `json:"isLocked,omitempty"`
}

// Apply returns a copy of it with the patch applied.
func (p ItemPatch) Apply(it Item) Item {
	if p.Left != nil {
		it.Left = *p.Left
	}
	if p.Top != nil {
		it.Top = *p.Top
	}
	if p.Width != nil {
		it.Width = *p.Width
	}
	if p.Height != nil {
		it.Height = *p.Height
	}
	if p.IsLocked != nil {
		it.IsLocked = *p.IsLocked
	}
	return it
}

type ItemStore interface {
	CreateItem(it *Item) error
	GetItem(id string) (*Item, error)
	ListItems(pageID string) ([]Item, error)
	UpdateItem(it *Item) error
	DeleteItem(id string) error
}
