package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerContractTools() {
	m.addTool(mcp.NewTool("get_contracts",
		mcp.WithDescription("Retrieve a list of contracts"),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of contracts to return (max 500)"),
		),
		mcp.WithString("external_id",
			mcp.Description("Filter by external ID"),
		),
	), m.handleGetContracts)

	m.addTool(mcp.NewTool("get_contract",
		mcp.WithDescription("Retrieve a specific contract by ID"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
	), m.handleGetContract)

	m.addTool(mcp.NewTool("get_contracts_by_customer",
		mcp.WithDescription("Retrieve all contracts for a specific customer"),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The customer's unique identifier"),
		),
	), m.handleGetContractsByCustomer)

	m.addTool(mcp.NewTool("cancel_contract",
		mcp.WithDescription("Cancel a contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithString("end_date",
			mcp.Description("Optional end date for the contract (ISO format)"),
		),
	), m.handleCancelContract)

	m.addTool(mcp.NewTool("pause_contract",
		mcp.WithDescription("Pause a contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithString("start_date",
			mcp.Description("Optional pause start date (ISO format)"),
		),
		mcp.WithString("end_date",
			mcp.Description("Optional pause end date (ISO format)"),
		),
	), m.handlePauseContract)

	m.addTool(mcp.NewTool("resume_contract",
		mcp.WithDescription("Resume a paused contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithString("resume_date",
			mcp.Description("Optional resume date (ISO format)"),
		),
	), m.handleResumeContract)
}

func (m *MCPServer) handleGetContracts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListContracts(ctx, billwerk.ContractListParams{
		From:       optString(request, "from_cursor"),
		Take:       takeArg(request),
		ExternalID: optString(request, "external_id"),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("contracts", raw), nil
}

func (m *MCPServer) handleGetContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.GetContract(ctx, contractID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("contract", raw), nil
}

func (m *MCPServer) handleGetContractsByCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError("customer_id argument is required"), nil
	}

	raw, err := m.api.ListContractsByCustomer(ctx, customerID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("contracts", raw), nil
}

func (m *MCPServer) handleCancelContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.EndContract(ctx, contractID, optString(request, "end_date"))
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("contract", raw), nil
}

func (m *MCPServer) handlePauseContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.PauseContract(ctx, contractID,
		optString(request, "start_date"),
		optString(request, "end_date"),
	)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("contract", raw), nil
}

func (m *MCPServer) handleResumeContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.ResumeContract(ctx, contractID, optString(request, "resume_date"))
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("contract", raw), nil
}
