package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/billwerk"
)

func (m *MCPServer) registerCustomerTools() {
	m.addTool(mcp.NewTool("get_customers",
		mcp.WithDescription("Retrieve a list of customers"),
		mcp.WithString("search",
			mcp.Description("Search customers by name, email, or external ID"),
		),
		mcp.WithString("status_filter",
			mcp.Description("Filter by customer status (Normal, Unconfirmed, Deleted)"),
		),
		mcp.WithString("from_cursor",
			mcp.Description("Cursor for pagination"),
		),
		mcp.WithNumber("take",
			mcp.Description("Number of customers to return (max 500)"),
		),
	), m.handleGetCustomers)

	m.addTool(mcp.NewTool("get_customer",
		mcp.WithDescription("Retrieve a specific customer by ID"),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The customer's unique identifier"),
		),
	), m.handleGetCustomer)

	m.addTool(mcp.NewTool("create_customer",
		mcp.WithDescription("Create a new customer"),
		mcp.WithObject("customer_data",
			mcp.Required(),
			mcp.Description("Customer information: firstName, lastName, emailAddress (required); companyName, language, locale, customerType (optional)"),
		),
	), m.handleCreateCustomer)

	m.addTool(mcp.NewTool("update_customer",
		mcp.WithDescription("Update an existing customer"),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The customer's unique identifier"),
		),
		mcp.WithObject("customer_data",
			mcp.Required(),
			mcp.Description("Updated customer information: firstName, lastName, emailAddress (required); companyName, language, locale, customerType (optional)"),
		),
	), m.handleUpdateCustomer)

	m.addTool(mcp.NewTool("delete_customer",
		mcp.WithDescription("Delete a customer (GDPR compliant)"),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The customer's unique identifier"),
		),
	), m.handleDeleteCustomer)
}

func (m *MCPServer) handleGetCustomers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := m.api.ListCustomers(ctx, billwerk.CustomerListParams{
		Search:       optString(request, "search"),
		StatusFilter: optString(request, "status_filter"),
		From:         optString(request, "from_cursor"),
		Take:         takeArg(request),
	})
	if err != nil {
		return apiErrorResult(err), nil
	}
	return listResult("customers", raw), nil
}

func (m *MCPServer) handleGetCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError("customer_id argument is required"), nil
	}

	raw, err := m.api.GetCustomer(ctx, customerID)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("customer", raw), nil
}

// customerFromRequest decodes the customer_data object argument.
func customerFromRequest(request mcp.CallToolRequest) (billwerk.CustomerCreate, *mcp.CallToolResult) {
	var customer billwerk.CustomerCreate
	if errResult := decodeObjectArg(request, "customer_data", &customer); errResult != nil {
		return billwerk.CustomerCreate{}, errResult
	}
	if customer.FirstName == "" || customer.LastName == "" || customer.EmailAddress == "" {
		return billwerk.CustomerCreate{}, mcp.NewToolResultError("customer_data requires firstName, lastName and emailAddress")
	}
	return customer, nil
}

// decodeObjectArg decodes a JSON-object argument into target.
func decodeObjectArg(request mcp.CallToolRequest, key string, target interface{}) *mcp.CallToolResult {
	value, ok := request.GetArguments()[key]
	if !ok {
		return mcp.NewToolResultError(key + " argument is required")
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError(key + " must be a JSON object")
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return mcp.NewToolResultError("invalid " + key + " argument")
	}
	if err := json.Unmarshal(data, target); err != nil {
		return mcp.NewToolResultError("invalid " + key + " argument: " + err.Error())
	}
	return nil
}

func (m *MCPServer) handleCreateCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customer, errResult := customerFromRequest(request)
	if errResult != nil {
		return errResult, nil
	}

	raw, err := m.api.CreateCustomer(ctx, customer)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("customer", raw), nil
}

func (m *MCPServer) handleUpdateCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError("customer_id argument is required"), nil
	}

	customer, errResult := customerFromRequest(request)
	if errResult != nil {
		return errResult, nil
	}

	raw, err := m.api.UpdateCustomer(ctx, customerID, customer)
	if err != nil {
		return apiErrorResult(err), nil
	}
	return objectResult("customer", raw), nil
}

func (m *MCPServer) handleDeleteCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError("customer_id argument is required"), nil
	}

	if err := m.api.DeleteCustomer(ctx, customerID); err != nil {
		return apiErrorResult(err), nil
	}
	return messageResult("Customer deleted successfully"), nil
}
