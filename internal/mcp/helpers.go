package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func boolPtr(v bool) *bool { return &v }

// optionalFloat returns the numeric argument key, or nil when absent.
func optionalFloat(req mcp.CallToolRequest, key string) *float64 {
	if v, ok := req.GetArguments()[key].(float64); ok {
		return &v
	}
	return nil
}

// requireString returns a non-empty string argument.
func requireString(req mcp.CallToolRequest, key string) (string, error) {
	v := req.GetString(key, "")
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}
