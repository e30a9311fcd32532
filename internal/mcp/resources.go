package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	pagesURI     = "builder://pages"
	pageItemsURI = "builder://page/{pageId}/items"
)

func (s *Server) registerResources() {
	// ── builder://pages ────────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		pagesURI,
		"All Pages",
		mcp.WithMIMEType("application/json"),
	), s.handlePagesResource)

	// ── builder://page/{pageId}/items ──────────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			pageItemsURI,
			"Items on a Page",
		),
		s.handlePageItemsResource,
	)
}

func (s *Server) handlePagesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	pages, err := s.canvas.ListPages()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      pagesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handlePageItemsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	pageID := pageIDFromURI(uri)
	if pageID == "" {
		return nil, fmt.Errorf("could not extract pageId from URI: %s", uri)
	}

	state, err := s.canvas.PageState(pageID)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(state.Items, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// pageIDFromURI extracts the page ID from "builder://page/{id}/items".
func pageIDFromURI(uri string) string {
	rest, ok := strings.CutPrefix(uri, "builder://page/")
	if !ok {
		return ""
	}
	id, ok := strings.CutSuffix(rest, "/items")
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}
