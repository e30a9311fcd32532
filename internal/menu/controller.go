package menu

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"slidebuilder/internal/arrange"
	"slidebuilder/internal/domain"
)

// Controller runs the actions of one open menu.
type Controller struct {
	item     domain.Item
	items    []domain.Item
	index    int
	page     domain.Bounds
	viewport domain.Bounds

	commit  Committer
	tracker Tracker
	onClose func()
	logger  *log.Logger

	position domain.Position
	closed   bool
}

// New opens a menu for opts.Item.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		item:     opts.Item,
		items:    opts.Items,
		index:    arrange.IndexOf(opts.Items, opts.Item.ID),
		page:     opts.Page,
		viewport: opts.Viewport,
		commit:   opts.Committer,
		tracker:  opts.Tracker,
		onClose:  opts.OnClose,
		logger:   logger.WithPrefix("menu"),
		position: opts.Requested,
	}
}

// Closed reports whether the menu has been closed.
func (c *Controller) Closed() bool { return c.closed }

// Entries lists the menu rows in display order.
func (c *Controller) Entries() []Entry {
	lock := Entry{Action: ToggleLock, Label: "LOCK_ITEM"}
	if c.item.IsLocked {
		lock.Label = "UNLOCK_ITEM"
	}
	return []Entry{
		{Action: MoveToFront, Label: "MOVE_TO_FRONT"},
		{Action: MoveForward, Label: "MOVE_FORWARDS"},
		{Action: MoveBackward, Label: "MOVE_BACKWARDS"},
		{Action: MoveToBack, Label: "MOVE_TO_BACK"},
		lock,
		{Action: FitToPage, Label: "FIT_TO_PAGE"},
		{Action: Delete, Label: "DELETE", Danger: true},
	}
}

// Run dispatches a named action.
func (c *Controller) Run(ctx context.Context, a Action) error {
	switch a {
	case MoveToFront:
		return c.MoveToFront(ctx)
	case MoveForward:
		return c.MoveForward(ctx)
	case MoveBackward:
		return c.MoveBackward(ctx)
	case MoveToBack:
		return c.MoveToBack(ctx)
	case ToggleLock:
		return c.ToggleLock(ctx)
	case FitToPage:
		return c.FitToPage(ctx)
	case Delete:
		return c.Delete(ctx)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, a)
}

// Dismiss closes the menu without acting.
func (c *Controller) Dismiss(reason DismissReason) {
	if c.closed {
		return
	}
	c.logger.Debug("dismissed", "item", c.item.ID, "reason", reason)
	c.close()
}

func (c *Controller) close() {
	c.closed = true
	if c.onClose != nil {
		c.onClose()
	}
}

// act runs fn and closes the menu regardless of its outcome.
func (c *Controller) act(name Action, fn func() error) error {
	if c.closed {
		return ErrClosed
	}
	defer c.close()
	if err := fn(); err != nil {
		c.logger.Error("action failed", "action", name, "item", c.item.ID, "err", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// MoveToFront puts the item on top of the stack.
func (c *Controller) MoveToFront(ctx context.Context) error {
	return c.act(MoveToFront, func() error {
		if c.index < 0 || c.index == len(c.items)-1 {
			return nil
		}
		return c.commitMove(ctx, len(c.items)-1)
	})
}

// MoveToBack puts the item at the bottom of the stack.
func (c *Controller) MoveToBack(ctx context.Context) error {
	return c.act(MoveToBack, func() error {
		if c.index <= 0 {
			return nil
		}
		return c.commitMove(ctx, 0)
	})
}

// MoveForward raises the item past the next item it overlaps, or by one
// level when nothing above overlaps it.
func (c *Controller) MoveForward(ctx context.Context) error {
	return c.act(MoveForward, func() error {
		if c.index < 0 || c.index == len(c.items)-1 {
			return nil
		}
		return c.commitMove(ctx, c.stepTarget(1))
	})
}

// MoveBackward lowers the item behind the next item it overlaps, or by one
// level when nothing below overlaps it.
func (c *Controller) MoveBackward(ctx context.Context) error {
	return c.act(MoveBackward, func() error {
		if c.index <= 0 {
			return nil
		}
		return c.commitMove(ctx, c.stepTarget(-1))
	})
}

func (c *Controller) stepTarget(direction int) int {
	if hit, ok := arrange.FindCollision(c.item, c.items, c.index, direction); ok {
		return hit
	}
	return c.index + direction
}

func (c *Controller) commitMove(ctx context.Context, to int) error {
	order := arrange.MoveItem(arrange.OrderOf(c.items), c.index, to)
	serialized, err := order.Serialize()
	if err != nil {
		return err
	}
	c.logger.Debug("reorder", "item", c.item.ID, "from", c.index, "to", to)
	return c.commit.OnPageChange(ctx, c.item.PageID, domain.PagePatch{Items: serialized})
}

// ToggleLock flips the item's lock state.
func (c *Controller) ToggleLock(ctx context.Context) error {
	return c.act(ToggleLock, func() error {
		locked := !c.item.IsLocked
		return c.commit.OnItemChange(ctx, c.item.ID, domain.ItemPatch{IsLocked: &locked})
	})
}

// FitToPage resizes the item to the page and moves it to the origin.
func (c *Controller) FitToPage(ctx context.Context) error {
	return c.act(FitToPage, func() error {
		if err := c.commit.OnItemChange(ctx, c.item.ID, FitPatch(c.item, c.page)); err != nil {
			return err
		}
		c.track(ctx, "fitToPage")
		return nil
	})
}

// Delete asks the store to remove the item.
func (c *Controller) Delete(ctx context.Context) error {
	return c.act(Delete, func() error {
		if err := c.commit.OnItemRemove(ctx, c.item); err != nil {
			return err
		}
		c.track(ctx, "removeItem")
		return nil
	})
}

func (c *Controller) track(ctx context.Context, event string) {
	if c.tracker != nil {
		c.tracker.Track(ctx, event, c.item.ItemType)
	}
}
