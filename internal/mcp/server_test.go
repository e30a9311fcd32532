package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"slidebuilder/internal/domain"
	"slidebuilder/internal/menu"
	"slidebuilder/internal/service"
	"slidebuilder/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "builder.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := log.New(io.Discard)
	canvas := service.NewCanvasService(
		storage.NewPageStore(db),
		storage.NewItemStore(db),
		service.NoopEmitter{},
		logger,
		service.Options{SnapTolerance: 5, GridSize: 10, Viewport: domain.Bounds{Width: 200, Height: 200}},
	)
	return New(Deps{Canvas: canvas, Logger: logger})
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) string {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func decode[T any](t *testing.T, text string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatalf("decode %q: %v", text, err)
	}
	return v
}

func TestCreatePageSetsActivePage(t *testing.T) {
	s := newTestServer(t)
	page := decode[domain.Page](t, call(t, s.handleCreatePage, map[string]any{
		"name": "Cover", "width": 400.0, "height": 300.0,
	}))
	if page.Width != 400 || page.Height != 300 {
		t.Errorf("size = %vx%v, want 400x300", page.Width, page.Height)
	}

	var req mcp.CallToolRequest
	got, err := s.resolvePageID(req)
	if err != nil {
		t.Fatalf("resolvePageID: %v", err)
	}
	if got != page.ID {
		t.Errorf("active page = %q, want %q", got, page.ID)
	}
}

func TestResolvePageIDWithoutActivePage(t *testing.T) {
	s := newTestServer(t)
	var req mcp.CallToolRequest
	if _, err := s.resolvePageID(req); err == nil {
		t.Fatal("expected error without pageId or active page")
	}
}

func TestAddItemRejectsUnknownType(t *testing.T) {
	s := newTestServer(t)
	call(t, s.handleCreatePage, map[string]any{"name": "p"})

	var req mcp.CallToolRequest
	req.Params.Arguments = map[string]any{"itemType": "video", "width": 10.0, "height": 10.0}
	if _, err := s.handleAddItem(context.Background(), req); err == nil {
		t.Fatal("expected error for unknown item type")
	}
}

func TestMenuActionMoveToFront(t *testing.T) {
	s := newTestServer(t)
	call(t, s.handleCreatePage, map[string]any{"name": "p"})

	a := decode[domain.Item](t, call(t, s.handleAddItem, map[string]any{
		"itemType": "shape", "width": 50.0, "height": 50.0, "left": 0.0, "top": 0.0,
	}))
	b := decode[domain.Item](t, call(t, s.handleAddItem, map[string]any{
		"itemType": "text", "width": 50.0, "height": 50.0, "left": 10.0, "top": 10.0,
	}))

	state := decode[domain.PageState](t, call(t, s.handleMenuAction, map[string]any{
		"itemId": a.ID, "action": string(menu.MoveToFront),
	}))
	if len(state.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(state.Items))
	}
	if state.Items[0].ID != b.ID || state.Items[1].ID != a.ID {
		t.Errorf("order = [%s %s], want [%s %s]", state.Items[0].ID, state.Items[1].ID, b.ID, a.ID)
	}
}

func TestMenuEntriesForLockedItem(t *testing.T) {
	s := newTestServer(t)
	call(t, s.handleCreatePage, map[string]any{"name": "p"})
	it := decode[domain.Item](t, call(t, s.handleAddItem, map[string]any{
		"itemType": "image", "width": 20.0, "height": 20.0,
	}))
	call(t, s.handleMenuAction, map[string]any{"itemId": it.ID, "action": string(menu.ToggleLock)})

	entries := decode[[]menu.Entry](t, call(t, s.handleMenuEntries, map[string]any{"itemId": it.ID}))
	var found bool
	for _, e := range entries {
		if e.Action == menu.ToggleLock {
			found = true
			if e.Label != "UNLOCK_ITEM" {
				t.Errorf("lock label = %q, want UNLOCK_ITEM", e.Label)
			}
		}
	}
	if !found {
		t.Error("toggle_lock entry missing")
	}
}

func TestDragGuidesReportsMatch(t *testing.T) {
	s := newTestServer(t)
	call(t, s.handleCreatePage, map[string]any{"name": "p"})
	call(t, s.handleAddItem, map[string]any{
		"itemType": "shape", "width": 100.0, "height": 100.0, "left": 0.0, "top": 0.0,
	})
	moving := decode[domain.Item](t, call(t, s.handleAddItem, map[string]any{
		"itemType": "shape", "width": 50.0, "height": 50.0, "left": 300.0, "top": 300.0,
	}))

	res := decode[service.DragResult](t, call(t, s.handleDragGuides, map[string]any{
		"itemId": moving.ID, "left": 102.0, "top": 300.0,
	}))
	m, ok := res.Matches[domain.AxisX]
	if !ok {
		t.Fatalf("expected an x match, got %+v", res.Matches)
	}
	if m.Intersection != 100 {
		t.Errorf("x intersection = %v, want 100", m.Intersection)
	}
}

func TestPlaceMenuStaysInViewport(t *testing.T) {
	s := newTestServer(t)
	pos := decode[domain.Position](t, call(t, s.handlePlaceMenu, map[string]any{
		"x": 1000.0, "y": 1000.0, "width": 50.0, "height": 50.0,
	}))
	if pos.X != 150 || pos.Y != 150 {
		t.Errorf("position = %+v, want {150 150}", pos)
	}
}

func TestPageIDFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"builder://page/abc-123/items", "abc-123"},
		{"builder://page/abc/items/extra", ""},
		{"builder://pages", ""},
		{"notes://page/abc/items", ""},
	}
	for _, tt := range tests {
		if got := pageIDFromURI(tt.uri); got != tt.want {
			t.Errorf("pageIDFromURI(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestSetLogLevelReachesHandlers(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t)
	s.logger = log.New(&buf).WithPrefix("mcp")

	call(t, s.handleCreatePage, map[string]any{"name": "p"})
	it := decode[domain.Item](t, call(t, s.handleAddItem, map[string]any{
		"itemType": "shape", "width": 10.0, "height": 10.0,
	}))
	call(t, s.handleMenuAction, map[string]any{"itemId": it.ID, "action": string(menu.ToggleLock)})
	if strings.Contains(buf.String(), "menu action") {
		t.Fatalf("debug line written at info level: %s", buf.String())
	}

	s.SetLogLevel(log.DebugLevel)
	call(t, s.handleMenuAction, map[string]any{"itemId": it.ID, "action": string(menu.ToggleLock)})
	if !strings.Contains(buf.String(), "menu action") {
		t.Errorf("expected menu action debug line, got %q", buf.String())
	}
}
