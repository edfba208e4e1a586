package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

// optString returns the string argument or "" when absent.
func optString(request mcp.CallToolRequest, key string) string {
	if v, ok := request.GetArguments()[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// optBool returns the boolean argument or false when absent.
func optBool(request mcp.CallToolRequest, key string) bool {
	if v, ok := request.GetArguments()[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// optFloat returns the numeric argument. JSON numbers arrive as float64.
func optFloat(request mcp.CallToolRequest, key string) (float64, bool) {
	if v, ok := request.GetArguments()[key]; ok {
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		}
	}
	return 0, false
}

// takeArg returns the page size argument, defaulting to 50.
func takeArg(request mcp.CallToolRequest) int {
	if n, ok := optFloat(request, "take"); ok {
		return int(n)
	}
	return billwerk.DefaultTake
}

// listResult wraps an upstream list response. Arrays become
// {"<key>": [...], "count": n}; the upstream already returns an object for
// some list endpoints, which is passed through untouched.
func listResult(key string, raw json.RawMessage) *mcp.CallToolResult {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// Not an array: pass the object through.
		return mcp.NewToolResultText(string(raw))
	}

	wrapped, err := json.Marshal(map[string]interface{}{
		key:     raw,
		"count": len(items),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err))
	}
	return mcp.NewToolResultText(string(wrapped))
}

// objectResult wraps a single upstream object under the given key so the
// assistant always receives a JSON object with a stable top-level shape.
func objectResult(key string, raw json.RawMessage) *mcp.CallToolResult {
	wrapped, err := json.Marshal(map[string]interface{}{key: raw})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err))
	}
	return mcp.NewToolResultText(string(wrapped))
}

// messageResult returns a {"message": ...} object for operations without a
// response body (deletes).
func messageResult(message string) *mcp.CallToolResult {
	wrapped, _ := json.Marshal(map[string]string{"message": message})
	return mcp.NewToolResultText(string(wrapped))
}

// apiErrorResult converts a client error into a tool error. API errors keep
// their status and upstream body so the assistant can react to field-level
// validation messages.
func apiErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
