package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (m *MCPServer) registerReportTools() {
	m.addTool(mcp.NewTool("get_reports",
		mcp.WithDescription("Retrieve available reports"),
		mcp.WithNumber("take",
			mcp.Description("Number of reports to return (max 500)"),
		),
	), m.handleGetReports)

	m.addTool(mcp.NewTool("get_report",
		mcp.WithDescription("Retrieve a specific report by ID"),
		mcp.WithString("report_id",
			mcp.Required(),
			mcp.Description("The report's unique identifier"),
		),
	), m.handleGetReport)

	m.addTool(mcp.NewTool("generate_report",
		mcp.WithDescription("Generate a report with optional parameters"),
		mcp.WithString("report_id",
			mcp.Required(),
			mcp.Description("The report's unique identifier"),
		),
		mcp.WithObject("parameters",
			mcp.Description("Optional report parameters"),
		),
	), m.handleGenerateReport)
}

func (m *MCPServer) handleGetReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListReports(ctx, takeArg(request))
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("reports", raw), nil
}

func (m *MCPServer) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reportID, err := request.RequireString("report_id")
	if err != nil {
		return mcp.NewToolResultError("report_id argument is required"), nil
	}

	raw, err := m.api.GetReport(ctx, reportID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("report", raw), nil
}

func (m *MCPServer) handleGenerateReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reportID, err := request.RequireString("report_id")
	if err != nil {
		return mcp.NewToolResultError("report_id argument is required"), nil
	}

	var parameters map[string]interface{}
	if v, ok := request.GetArguments()["parameters"]; ok {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("parameters must be a JSON object"), nil
		}
		parameters = obj
	}

	raw, err := m.api.GenerateReport(ctx, reportID, parameters)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("report_result", raw), nil
}
