package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerPaymentTools() {
	m.addTool(mcp.NewTool("get_payment_transactions",
		mcp.WithDescription("Retrieve payment transactions"),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of transactions to return (max 500)"),
		),
	), m.handleGetPaymentTransactions)

	m.addTool(mcp.NewTool("get_payment_transaction",
		mcp.WithDescription("Retrieve a specific payment transaction by ID"),
		mcp.WithString("transaction_id",
			mcp.Required(),
			mcp.Description("The transaction's unique identifier"),
		),
	), m.handleGetPaymentTransaction)

	m.addTool(mcp.NewTool("record_contract_payment",
		mcp.WithDescription("Record an external payment for a contract"),
		mcp.WithString("contract_id",
			mcp.Required(),
			mcp.Description("The contract's unique identifier"),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Payment amount (positive for payment, negative for refund)"),
		),
		mcp.WithString("currency",
			mcp.Required(),
			mcp.Description("Currency code (e.g., EUR, USD)"),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Payment description"),
		),
		mcp.WithString("booking_date",
			mcp.Description("Optional booking date (YYYY-MM-DD format)"),
		),
	), m.handleRecordContractPayment)
}

func (m *MCPServer) handleGetPaymentTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListPaymentTransactions(ctx, billwerk.PaymentTransactionListParams{
		From: optString(request, "from_cursor"),
		Take: takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("payment_transactions", raw), nil
}

func (m *MCPServer) handleGetPaymentTransaction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transactionID, err := request.RequireString("transaction_id")
	if err != nil {
		return mcp.NewToolResultError("transaction_id argument is required"), nil
	}

	raw, err := m.api.GetPaymentTransaction(ctx, transactionID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("payment_transaction", raw), nil
}

func (m *MCPServer) handleRecordContractPayment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractID, err := request.RequireString("contract_id")
	if err != nil {
		return mcp.NewToolResultError("contract_id argument is required"), nil
	}
	amount, ok := optFloat(request, "amount")
	if !ok {
		return mcp.NewToolResultError("amount argument is required"), nil
	}
	currency, err := request.RequireString("currency")
	if err != nil {
		return mcp.NewToolResultError("currency argument is required"), nil
	}
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description argument is required"), nil
	}

	raw, err := m.api.RecordPayment(ctx, contractID, billwerk.PaymentCreate{
		Amount:      amount,
		Currency:    currency,
		Description: description,
		BookingDate: optString(request, "booking_date"),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("payment", raw), nil
}
