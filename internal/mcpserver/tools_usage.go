package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerUsageTools() {
	m.addTool(mcp.NewTool("get_usage_by_contract",
		mcp.WithDescription("Retrieve usage data for a specific contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithString("from_datetime",
			mcp.Description("Start date for usage data (ISO format)"),
		),
		mcp.WithString("until_datetime",
			mcp.Description("End date for usage data (ISO format)"),
		),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of usage records to return (max 500)"),
		),
	), m.handleGetUsageByContract)

	m.addTool(mcp.NewTool("create_usage_record",
		mcp.WithDescription("Create a new metered usage record for a contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithObject("usage_data",
			mcp.Required(),
			mcp.Description("Usage record details: componentId, quantity (required); memo, dueDate (optional)"),
		),
	), m.handleCreateUsageRecord)

	m.addTool(mcp.NewTool("delete_usage_record",
		mcp.WithDescription("Delete a usage record"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithString("usage_id",
			mcp.Required(),
			mcp.Description("The usage record's unique identifier"),
		),
	), m.handleDeleteUsageRecord)
}

func (m *MCPServer) handleGetUsageByContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.ListUsage(ctx, contractID, billwerk.UsageListParams{
		FromDateTime:  optString(request, "from_datetime"),
		UntilDateTime: optString(request, "until_datetime"),
		From:          optString(request, "from_cursor"),
		Take:          takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("usage", raw), nil
}

func (m *MCPServer) handleCreateUsageRecord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	var usage billwerk.MeteredUsageCreate
	if errResult := decodeObjectArg(request, "usage_data", &usage); errResult != nil {
		return errResult, nil
	}
	if usage.ComponentID == "" {
		return mcp.NewToolResultError("usage_data requires componentId"), nil
	}

	raw, err := m.api.CreateUsage(ctx, contractID, usage)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("usage_record", raw), nil
}

func (m *MCPServer) handleDeleteUsageRecord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}
	usageID, err := request.RequireString("usage_id")
	if err != nil {
		return mcp.NewToolResultError("usage_id argument is required"), nil
	}

	if err := m.api.DeleteUsage(ctx, contractID, usageID); err != nil {
		return apiErrorResult(err), nil
	}
	return messageResult("Usage record deleted successfully"), nil
}
