package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"slidebuilder/internal/domain"
	"slidebuilder/internal/menu"
)

var menuActions = []string{
	string(menu.MoveToFront),
	string(menu.MoveForward),
	string(menu.MoveBackward),
	string(menu.MoveToBack),
	string(menu.ToggleLock),
	string(menu.FitToPage),
	string(menu.Delete),
}

func (s *Server) registerArrangeTools() {
	// ── menu_entries ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("menu_entries",
		mcp.WithDescription("List the context menu entries available for an item"),
		mcp.WithString("pageId", mcp.Description("Page ID (defaults to the active page)")),
		mcp.WithString("itemId", mcp.Description("Item ID"), mcp.Required()),
	), s.handleMenuEntries)

	// ── menu_action ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("menu_action",
		mcp.WithDescription("Run a context menu action on an item: reorder it, toggle its lock, fit it to the page or delete it. Returns the page state afterwards."),
		mcp.WithString("pageId", mcp.Description("Page ID (defaults to the active page)")),
		mcp.WithString("itemId", mcp.Description("Item ID"), mcp.Required()),
		mcp.WithString("action", mcp.Description("Menu action"), mcp.Required(), mcp.Enum(menuActions...)),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleMenuAction)

	// ── drag_guides ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("drag_guides",
		mcp.WithDescription("Compute snap matches and alignment guides for an item dragged to a position. Does not move the item."),
		mcp.WithString("pageId", mcp.Description("Page ID (defaults to the active page)")),
		mcp.WithString("itemId", mcp.Description("Item ID"), mcp.Required()),
		mcp.WithNumber("left", mcp.Description("Dragged X position"), mcp.Required()),
		mcp.WithNumber("top", mcp.Description("Dragged Y position"), mcp.Required()),
		mcp.WithNumber("zoom", mcp.Description("Canvas zoom (default 1)")),
	), s.handleDragGuides)

	// ── place_menu ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("place_menu",
		mcp.WithDescription("Compute where a context menu of the given size is drawn so it stays inside the viewport"),
		mcp.WithNumber("x", mcp.Description("Requested X"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Requested Y"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Rendered menu width"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Rendered menu height"), mcp.Required()),
	), s.handlePlaceMenu)
}

func (s *Server) handleMenuEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := s.resolvePageID(req)
	if err != nil {
		return nil, err
	}
	itemID, err := requireString(req, "itemId")
	if err != nil {
		return nil, err
	}
	m, err := s.canvas.OpenMenu(pageID, itemID, domain.Position{})
	if err != nil {
		return nil, err
	}
	defer m.Dismiss(menu.DismissOutsideClick)
	return jsonResult(m.Entries())
}

func (s *Server) handleMenuAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := s.resolvePageID(req)
	if err != nil {
		return nil, err
	}
	itemID, err := requireString(req, "itemId")
	if err != nil {
		return nil, err
	}
	action, err := requireString(req, "action")
	if err != nil {
		return nil, err
	}
	state, err := s.canvas.RunMenuAction(ctx, pageID, itemID, menu.Action(action))
	if err != nil {
		return nil, fmt.Errorf("menu action: %w", err)
	}
	s.logger.Debug("menu action", "page", pageID, "item", itemID, "action", action)
	return jsonResult(state)
}

func (s *Server) handleDragGuides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := s.resolvePageID(req)
	if err != nil {
		return nil, err
	}
	itemID, err := requireString(req, "itemId")
	if err != nil {
		return nil, err
	}
	res, err := s.canvas.DragFrame(pageID, itemID,
		req.GetFloat("left", 0), req.GetFloat("top", 0), req.GetFloat("zoom", 1))
	if err != nil {
		return nil, err
	}
	return jsonResult(res)
}

func (s *Server) handlePlaceMenu(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos := s.canvas.PlaceMenu(
		domain.Position{X: req.GetFloat("x", 0), Y: req.GetFloat("y", 0)},
		domain.Bounds{Width: req.GetFloat("width", 0), Height: req.GetFloat("height", 0)},
	)
	return jsonResult(pos)
}
