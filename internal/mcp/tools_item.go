package mcpserver

import (
	"context"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"

	"slidebuilder/internal/domain"
	"slidebuilder/internal/service"
)

var itemTypes = []string{
	string(domain.ItemTypeImage),
	string(domain.ItemTypeText),
	string(domain.ItemTypeHeader),
	string(domain.ItemTypeShape),
	string(domain.ItemTypeChart),
}

func (s *Server) registerItemTools() {
	// ── list_items ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_items",
		mcp.WithDescription("List the items on a page in z-order, bottom first"),
		mcp.WithString("pageId", mcp.Description("Page ID (defaults to the active page)")),
	), s.handleListItems)

	// ── add_item ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_item",
		mcp.WithDescription("Add an item on top of the page's stack. Omit left/top for automatic placement."),
		mcp.WithString("pageId", mcp.Description("Page ID (defaults to the active page)")),
		mcp.WithString("itemType", mcp.Description("Item type"), mcp.Required(), mcp.Enum(itemTypes...)),
		mcp.WithNumber("width", mcp.Description("Item width"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Item height"), mcp.Required()),
		mcp.WithNumber("left", mcp.Description("X position (optional)")),
		mcp.WithNumber("top", mcp.Description("Y position (optional)")),
	), s.handleAddItem)
}

func (s *Server) handleListItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := s.resolvePageID(req)
	if err != nil {
		return nil, err
	}
	state, err := s.canvas.PageState(pageID)
	if err != nil {
		return nil, err
	}
	return jsonResult(state.Items)
}

func (s *Server) handleAddItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := s.resolvePageID(req)
	if err != nil {
		return nil, err
	}
	itemType, err := requireString(req, "itemType")
	if err != nil {
		return nil, err
	}
	if !slices.Contains(itemTypes, itemType) {
		return nil, fmt.Errorf("unknown itemType %q", itemType)
	}
	it, err := s.canvas.AddItem(ctx, pageID, service.NewItem{
		ItemType: domain.ItemType(itemType),
		Left:     optionalFloat(req, "left"),
		Top:      optionalFloat(req, "top"),
		Width:    req.GetFloat("width", 0),
		Height:   req.GetFloat("height", 0),
	})
	if err != nil {
		return nil, err
	}
	return jsonResult(it)
}
