package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerInvoiceTools() {
	m.addTool(mcp.NewTool("get_invoices",
		mcp.WithDescription("Retrieve invoices"),
		mcp.WithString("contract_id",
			mcp.Description("Filter by contract ID"),
		),
		mcp.WithString("search",
			mcp.Description("Search invoices by customer name"),
		),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of invoices to return (max 500)"),
		),
	), m.handleGetInvoices)

	m.addTool(mcp.NewTool("get_invoice",
		mcp.WithDescription("Retrieve a specific invoice by ID"),
		mcp.WithString("invoice_id",
			mcp.Required(),
			mcp.Description("The invoice's unique identifier"),
		),
	), m.handleGetInvoice)

	m.addTool(mcp.NewTool("bill_contract",
		mcp.WithDescription("Execute interim billing for a specific contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
	), m.handleBillContract)
}

func (m *MCPServer) handleGetInvoices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListInvoices(ctx, billwerk.InvoiceListParams{
		ContractID: optString(request, "contract_id"),
		Search:     optString(request, "search"),
		From:       optString(request, "from_cursor"),
		Take:       takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("invoices", raw), nil
}

func (m *MCPServer) handleGetInvoice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := request.RequireString("invoice_id")
	if err != nil {
		return mcp.NewToolResultError("invoice_id argument is required"), nil
	}

	raw, err := m.api.GetInvoice(ctx, invoiceID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("invoice", raw), nil
}

func (m *MCPServer) handleBillContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}

	raw, err := m.api.BillContract(ctx, contractID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("billing", raw), nil
}
