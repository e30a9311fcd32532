package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"slidebuilder/internal/arrange"
	"slidebuilder/internal/domain"
	"slidebuilder/internal/menu"
	"slidebuilder/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Canvas Service: pages, items and their arrangement
// ─────────────────────────────────────────────────────────────

const (
	EventOrderChanged = "canvas:order-changed"
	EventItemChanged  = "canvas:item-changed"
	EventItemRemoved  = "canvas:item-removed"
)

// Options tunes the arrangement behaviour of a CanvasService.
type Options struct {
	SnapTolerance float64
	GridSize      float64
	Viewport      domain.Bounds
}

// CanvasService owns page state and applies the results of arrangement
// operations. It implements menu.Committer and menu.Tracker.
type CanvasService struct {
	pages   *storage.PageStore
	items   *storage.ItemStore
	emitter EventEmitter
	logger  *log.Logger
	layout  *arrange.LayoutEngine

	mu sync.Mutex // serializes mutating actions

	optsMu sync.RWMutex
	opts   Options
}

// NewCanvasService creates a CanvasService.
func NewCanvasService(pages *storage.PageStore, items *storage.ItemStore, emitter EventEmitter, logger *log.Logger, opts Options) *CanvasService {
	if logger == nil {
		logger = log.Default()
	}
	if emitter == nil {
		emitter = NoopEmitter{}
	}
	if opts.SnapTolerance <= 0 {
		opts.SnapTolerance = arrange.DefaultTolerance
	}
	return &CanvasService{
		pages:   pages,
		items:   items,
		emitter: emitter,
		logger:  logger.WithPrefix("canvas"),
		layout:  arrange.NewLayoutEngine(opts.GridSize),
		opts:    opts,
	}
}

// SetOptions swaps the tuning values, e.g. after a config reload.
func (s *CanvasService) SetOptions(opts Options) {
	s.optsMu.Lock()
	defer s.optsMu.Unlock()
	if opts.SnapTolerance <= 0 {
		opts.SnapTolerance = arrange.DefaultTolerance
	}
	s.opts = opts
	s.layout = arrange.NewLayoutEngine(opts.GridSize)
}

// SetLogLevel changes the level of the service logger. Menus opened
// afterwards inherit it.
func (s *CanvasService) SetLogLevel(level log.Level) {
	s.logger.SetLevel(level)
}

func (s *CanvasService) options() (Options, *arrange.LayoutEngine) {
	s.optsMu.RLock()
	defer s.optsMu.RUnlock()
	return s.opts, s.layout
}

// ── Pages ──────────────────────────────────────────────────

// CreatePage creates an empty page of the given size.
func (s *CanvasService) CreatePage(name string, width, height float64) (*domain.Page, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("create page: size must be positive, got %vx%v", width, height)
	}
	p := &domain.Page{Name: name, Width: width, Height: height}
	if err := s.pages.CreatePage(p); err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	s.logger.Info("page created", "page", p.ID, "name", name)
	return p, nil
}

// ListPages returns all pages.
func (s *CanvasService) ListPages() ([]domain.Page, error) {
	return s.pages.ListPages()
}

// PageState loads a page and its items in z-order.
func (s *CanvasService) PageState(pageID string) (*domain.PageState, error) {
	p, err := s.pages.GetPage(pageID)
	if err != nil {
		return nil, err
	}
	order, err := domain.ParseOrder(p.Items)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", pageID, err)
	}
	items, err := s.items.ListItems(pageID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &domain.PageState{Page: *p, Items: arrange.ApplyOrder(items, order)}, nil
}

// ── Items ──────────────────────────────────────────────────

// NewItem describes an item to add. A nil Left or Top asks for automatic
// placement.
type NewItem struct {
	ItemType domain.ItemType
	Left     *float64
	Top      *float64
	Width    float64
	Height   float64
}

// AddItem creates an item on top of the page's stack.
func (s *CanvasService) AddItem(ctx context.Context, pageID string, n NewItem) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.PageState(pageID)
	if err != nil {
		return nil, err
	}
	if n.Width <= 0 || n.Height <= 0 {
		return nil, fmt.Errorf("add item: size must be positive, got %vx%v", n.Width, n.Height)
	}

	it := &domain.Item{PageID: pageID, ItemType: n.ItemType, Width: n.Width, Height: n.Height}
	if n.Left != nil && n.Top != nil {
		it.Left, it.Top = *n.Left, *n.Top
	} else {
		_, layout := s.options()
		it.Left, it.Top = layout.NextPosition(state.Items, state.Page.Bounds(), n.Width, n.Height)
	}
	if err := s.items.CreateItem(it); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	order := append(arrange.OrderOf(state.Items), it.ID)
	serialized, err := order.Serialize()
	if err != nil {
		return nil, err
	}
	if err := s.pages.UpdatePageItems(pageID, serialized); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	s.logger.Debug("item added", "page", pageID, "item", it.ID, "type", it.ItemType)
	s.emitter.Emit(ctx, EventOrderChanged, map[string]string{"pageId": pageID})
	return it, nil
}

// ── Menu ───────────────────────────────────────────────────

// OpenMenu opens the context menu for an item at the requested screen position.
func (s *CanvasService) OpenMenu(pageID, itemID string, requested domain.Position) (*menu.Controller, error) {
	state, err := s.PageState(pageID)
	if err != nil {
		return nil, err
	}
	idx := arrange.IndexOf(state.Items, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("open menu: item %s on page %s: %w", itemID, pageID, storage.ErrNotFound)
	}
	opts, _ := s.options()
	return menu.New(menu.Options{
		Item:      state.Items[idx],
		Items:     state.Items,
		Page:      state.Page.Bounds(),
		Viewport:  opts.Viewport,
		Requested: requested,
		Committer: s,
		Tracker:   s,
		Logger:    s.logger,
	}), nil
}

// RunMenuAction opens a menu for the item and runs a single action on it.
// Actions are serialized so two moves never interleave on one collection.
func (s *CanvasService) RunMenuAction(ctx context.Context, pageID, itemID string, action menu.Action) (*domain.PageState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.OpenMenu(pageID, itemID, domain.Position{})
	if err != nil {
		return nil, err
	}
	if err := m.Run(ctx, action); err != nil {
		return nil, err
	}
	return s.PageState(pageID)
}

// PlaceMenu runs both placement passes for a menu of the given rendered size.
func (s *CanvasService) PlaceMenu(requested domain.Position, size domain.Bounds) domain.Position {
	opts, _ := s.options()
	m := menu.New(menu.Options{Viewport: opts.Viewport, Requested: requested, Logger: s.logger})
	return m.Measure(size)
}

// ── Drag ───────────────────────────────────────────────────

// DragResult is what a drag frame produces for the renderer.
type DragResult struct {
	Matches domain.MatchSet `json:"matches"`
	Guides  []domain.Guide  `json:"guides"`
}

// DragFrame computes the snap matches and guide lines for an item dragged to
// (left, top) on the page at the given zoom.
func (s *CanvasService) DragFrame(pageID, itemID string, left, top, zoom float64) (*DragResult, error) {
	state, err := s.PageState(pageID)
	if err != nil {
		return nil, err
	}
	idx := arrange.IndexOf(state.Items, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("drag: item %s on page %s: %w", itemID, pageID, storage.ErrNotFound)
	}
	moving := state.Items[idx]
	moving.Left, moving.Top = left, top

	guides := arrange.GuideSetFor(state.Items, itemID)
	opts, _ := s.options()
	matches := arrange.FindMatches(moving, guides, opts.SnapTolerance)

	res := &DragResult{Matches: matches, Guides: []domain.Guide{}}
	for _, axis := range []domain.Axis{domain.AxisX, domain.AxisY} {
		res.Guides = slices.AppendSeq(res.Guides, arrange.ComputeGuides(axis, guides, matches, true, zoom))
	}
	return res, nil
}

// ── menu.Committer ─────────────────────────────────────────

func (s *CanvasService) OnPageChange(ctx context.Context, pageID string, patch domain.PagePatch) error {
	if _, err := domain.ParseOrder(patch.Items); err != nil {
		return err
	}
	if err := s.pages.UpdatePageItems(pageID, patch.Items); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	s.emitter.Emit(ctx, EventOrderChanged, map[string]string{"pageId": pageID})
	return nil
}

func (s *CanvasService) OnItemChange(ctx context.Context, itemID string, patch domain.ItemPatch) error {
	it, err := s.items.GetItem(itemID)
	if err != nil {
		return err
	}
	updated := patch.Apply(*it)
	if err := s.items.UpdateItem(&updated); err != nil {
		return fmt.Errorf("commit item: %w", err)
	}
	s.emitter.Emit(ctx, EventItemChanged, map[string]string{"pageId": updated.PageID, "itemId": itemID})
	return nil
}

func (s *CanvasService) OnItemRemove(ctx context.Context, item domain.Item) error {
	if err := s.pages.RemoveItem(item.PageID, item.ID); err != nil {
		return err
	}
	s.emitter.Emit(ctx, EventItemRemoved, map[string]string{"pageId": item.PageID, "itemId": item.ID})
	return nil
}

// ── menu.Tracker ───────────────────────────────────────────

func (s *CanvasService) Track(ctx context.Context, event string, itemType domain.ItemType) {
	s.logger.Debug("track", "event", event, "itemType", itemType)
	s.emitter.Emit(ctx, "analytics:"+event, string(itemType))
}
