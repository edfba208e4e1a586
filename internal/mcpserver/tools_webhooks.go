package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerWebhookTools() {
	m.addTool(mcp.NewTool("get_webhooks",
		mcp.WithDescription("Retrieve all registered webhooks"),
	), m.handleGetWebhooks)

	m.addTool(mcp.NewTool("get_webhook_events",
		mcp.WithDescription("Retrieve webhook events"),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithString("date_from",
			mcp.Description("Filter events from this date (ISO format)"),
		),
		mcp.WithString("date_to",
			mcp.Description("Filter events until this date (ISO format)"),
		),
		mcp.WithString("status",
			mcp.Description("Filter by event status"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of events to return (max 500)"),
		),
	), m.handleGetWebhookEvents)
}

func (m *MCPServer) handleGetWebhooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListWebhooks(ctx)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("webhooks", raw), nil
}

func (m *MCPServer) handleGetWebhookEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListWebhookEvents(ctx, billwerk.WebhookEventListParams{
		From:     optString(request, "from_cursor"),
		DateFrom: optString(request, "date_from"),
		DateTo:   optString(request, "date_to"),
		Status:   optString(request, "status"),
		Take:     takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("webhook_events", raw), nil
}
