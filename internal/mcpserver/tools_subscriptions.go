package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerComponentSubscriptionTools() {
	m.addTool(mcp.NewTool("get_component_subscriptions",
		mcp.WithDescription("Retrieve component subscriptions"),
		mcp.WithString("contract_id",
			mcp.Description("Filter by contract ID"),
		),
		mcp.WithString("component_id",
			mcp.Description("Filter by component ID"),
		),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of subscriptions to return (max 500)"),
		),
	), m.handleGetComponentSubscriptions)

	m.addTool(mcp.NewTool("get_contract_component_subscriptions",
		mcp.WithDescription("Retrieve all component subscriptions for a specific contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
	), m.handleGetContractComponentSubscriptions)

	m.addTool(mcp.NewTool("create_component_subscription",
		mcp.WithDescription("Create a new component subscription for a contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithObject("subscription_data",
			mcp.Required(),
			mcp.Description("Component subscription details: componentId, quantity (required); startDate, memo (optional)"),
		),
	), m.handleCreateComponentSubscription)

	m.addTool(mcp.NewTool("end_component_subscription",
		mcp.WithDescription("End a component subscription"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithString("subscription_id",
			mcp.Required(),
			mcp.Description("The component subscription's unique identifier"),
		),
		mcp.WithString("end_date",
			mcp.Description("Optional end date (ISO format)"),
		),
	), m.handleEndComponentSubscription)

	m.addTool(mcp.NewTool("get_subscriptions",
		mcp.WithDescription("Retrieve combined customer and contract subscription data"),
		mcp.WithBoolean("show_hidden",
			mcp.Description("Include hidden subscriptions"),
		),
		mcp.WithString("search",
			mcp.Description("Search term"),
		),
		mcp.WithString("plan_group_id",
			mcp.Description("Filter by plan group ID"),
		),
		mcp.WithString("plan_id",
			mcp.Description("Filter by plan ID"),
		),
		mcp.WithString("contract_status",
			mcp.Description("Filter by contract status"),
		),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of subscriptions to return (max 500)"),
		),
	), m.handleGetSubscriptions)
}

func (m *MCPServer) handleGetComponentSubscriptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListComponentSubscriptions(ctx, billwerk.ComponentSubscriptionListParams{
		ContractID:  optString(request, "contract_id"),
		ComponentID: optString(request, "component_id"),
		From:        optString(request, "from_cursor"),
		Take:        takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("component_subscriptions", raw), nil
}

func (m *MCPServer) handleGetContractComponentSubscriptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.ListContractComponentSubscriptions(ctx, contractID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("component_subscriptions", raw), nil
}

func (m *MCPServer) handleCreateComponentSubscription(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	var sub billwerk.ComponentSubscriptionCreate
	if errResult := decodeObjectArg(request, "subscription_data", &sub); errResult != nil {
		return errResult, nil
	}
	if sub.ComponentID == "" {
		return mcp.NewToolResultError("subscription_data requires componentId"), nil
	}

	raw, err := m.api.CreateComponentSubscription(ctx, contractID, sub)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("component_subscription", raw), nil
}

func (m *MCPServer) handleEndComponentSubscription(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}
	subscriptionID, err := request.RequireString("subscription_id")
	if err != nil {
		return mcp.NewToolResultError("subscription_id argument is required"), nil
	}

	raw, err := m.api.EndComponentSubscription(ctx, contractID, subscriptionID, optString(request, "end_date"))
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("component_subscription", raw), nil
}

func (m *MCPServer) handleGetSubscriptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListSubscriptions(ctx, billwerk.SubscriptionListParams{
		ShowHidden:     optBool(request, "show_hidden"),
		Search:         optString(request, "search"),
		PlanGroupID:    optString(request, "plan_group_id"),
		PlanID:         optString(request, "plan_id"),
		ContractStatus: optString(request, "contract_status"),
		From:           optString(request, "from_cursor"),
		Take:           takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("subscriptions", raw), nil
}
