package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerPlanTools() {
	m.addTool(mcp.NewTool("get_plan_groups",
		mcp.WithDescription("Retrieve plan groups"),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithString("search",
			mcp.Description("Search by plan group name"),
		),
		mcp.WithBoolean("show_hidden",
			mcp.Description("Include hidden plan groups"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of plan groups to return (max 500)"),
		),
	), m.handleGetPlanGroups)

	m.addTool(mcp.NewTool("get_plan_group",
		mcp.WithDescription("Retrieve a specific plan group by ID"),
		mcp.WithString("plan_group_id",
			mcp.Required(),
			mcp.Description("The plan group's unique identifier"),
		),
	), m.handleGetPlanGroup)

	m.addTool(mcp.NewTool("get_plans",
		mcp.WithDescription("Retrieve plans"),
		mcp.WithString("plan_group_id",
			mcp.Description("Filter by plan group ID"),
		),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of plans to return (max 500)"),
		),
	), m.handleGetPlans)

	m.addTool(mcp.NewTool("get_plan",
		mcp.WithDescription("Retrieve a specific plan by ID"),
		mcp.WithString("plan_id",
			mcp.Required(),
			mcp.Description("The plan's unique identifier"),
		),
	), m.handleGetPlan)

	m.addTool(mcp.NewTool("get_plan_variants",
		mcp.WithDescription("Retrieve plan variants"),
		mcp.WithString("plan_id",
			mcp.Description("Filter by plan ID"),
		),
		mcp.WithString("external_id",
			mcp.Description("Filter by external ID"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of plan variants to return (max 500)"),
		),
	), m.handleGetPlanVariants)

	m.addTool(mcp.NewTool("get_plan_variant",
		mcp.WithDescription("Retrieve a specific plan variant by ID"),
		mcp.WithString("plan_variant_id",
			mcp.Required(),
			mcp.Description("The plan variant's unique identifier"),
		),
	), m.handleGetPlanVariant)

	m.addTool(mcp.NewTool("get_components",
		mcp.WithDescription("Retrieve components"),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of components to return (max 500)"),
		),
	), m.handleGetComponents)

	m.addTool(mcp.NewTool("get_component",
		mcp.WithDescription("Retrieve a specific component by ID"),
		mcp.WithString("component_id",
			mcp.Required(),
			mcp.Description("The component's unique identifier"),
		),
	), m.handleGetComponent)
}

func (m *MCPServer) handleGetPlanGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListPlanGroups(ctx, billwerk.PlanGroupListParams{
		From:       optString(request, "from_cursor"),
		Search:     optString(request, "search"),
		ShowHidden: optBool(request, "show_hidden"),
		Take:       takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("plan_groups", raw), nil
}

func (m *MCPServer) handleGetPlanGroup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	planGroupID, err := request.RequireString("plan_group_id")
	if err != nil {
		return mcp.NewToolResultError("plan_group_id argument is required"), nil
	}

	raw, err := m.api.GetPlanGroup(ctx, planGroupID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("plan_group", raw), nil
}

func (m *MCPServer) handleGetPlans(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListPlans(ctx, billwerk.PlanListParams{
		PlanGroupID: optString(request, "plan_group_id"),
		From:        optString(request, "from_cursor"),
		Take:        takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("plans", raw), nil
}

func (m *MCPServer) handleGetPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	planID, err := request.RequireString("plan_id")
	if err != nil {
		return mcp.NewToolResultError("plan_id argument is required"), nil
	}

	raw, err := m.api.GetPlan(ctx, planID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("plan", raw), nil
}

func (m *MCPServer) handleGetPlanVariants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListPlanVariants(ctx, billwerk.PlanVariantListParams{
		PlanID:     optString(request, "plan_id"),
		ExternalID: optString(request, "external_id"),
		Take:       takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("plan_variants", raw), nil
}

func (m *MCPServer) handleGetPlanVariant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	planVariantID, err := request.RequireString("plan_variant_id")
	if err != nil {
		return mcp.NewToolResultError("plan_variant_id argument is required"), nil
	}

	raw, err := m.api.GetPlanVariant(ctx, planVariantID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("plan_variant", raw), nil
}

func (m *MCPServer) handleGetComponents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListComponents(ctx, billwerk.ComponentListParams{
		From: optString(request, "from_cursor"),
		Take: takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("components", raw), nil
}

func (m *MCPServer) handleGetComponent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	componentID, err := request.RequireString("component_id")
	if err != nil {
		return mcp.NewToolResultError("component_id argument is required"), nil
	}

	raw, err := m.api.GetComponent(ctx, componentID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("component", raw), nil
}
