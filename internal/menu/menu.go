// Package menu implements the per-item context menu: z-order moves, lock,
// fit-to-page and delete, plus the two-pass placement of the menu itself.
//
// A Controller computes new orders and geometry from the snapshot it was
// opened with and hands them to a Committer. It never mutates the snapshot.
// Every action closes the menu; once closed, the controller ignores further
// actions.
package menu

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"slidebuilder/internal/domain"
)

var (
	ErrClosed        = errors.New("menu: closed")
	ErrUnknownAction = errors.New("menu: unknown action")
)

type Action string

const (
	MoveToFront  Action = "move_to_front"
	MoveForward  Action = "move_forward"
	MoveBackward Action = "move_backward"
	MoveToBack   Action = "move_to_back"
	ToggleLock   Action = "toggle_lock"
	FitToPage    Action = "fit_to_page"
	Delete       Action = "delete"
)

// DismissReason says why a menu was closed without an action.
type DismissReason string

const (
	DismissOutsideClick DismissReason = "outside_click"
	// DismissWheel stands in for "the page scrolled". Any wheel gesture
	// triggers it, including ones that do not scroll.
	DismissWheel DismissReason = "wheel"
)

// Committer receives the results of menu actions. It is implemented by the
// canvas state store.
type Committer interface {
	OnPageChange(ctx context.Context, pageID string, patch domain.PagePatch) error
	OnItemChange(ctx context.Context, itemID string, patch domain.ItemPatch) error
	OnItemRemove(ctx context.Context, item domain.Item) error
}

// Tracker records usage events such as "fitToPage" and "removeItem".
type Tracker interface {
	Track(ctx context.Context, event string, itemType domain.ItemType)
}

// Options configures a Controller.
type Options struct {
	Item  domain.Item
	Items []domain.Item // page items in z-order
	// Page is the size fit-to-page resizes to.
	Page domain.Bounds
	// Viewport is the area the menu itself must stay inside.
	Viewport  domain.Bounds
	Requested domain.Position

	Committer Committer
	Tracker   Tracker
	OnClose   func()
	Logger    *log.Logger
}

// Entry is one row of the menu.
type Entry struct {
	Action Action `json:"action"`
	Label  string `json:"label"`
	Danger bool   `json:"danger,omitempty"`
}
