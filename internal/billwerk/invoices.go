package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
)

// InvoiceListParams filters the invoice list.
type InvoiceListParams struct {
	ContractID string
	// Search matches the customer name.
	Search string
	From   string
	Take   int
}

// ListInvoices retrieves a page of invoices.
func (c *Client) ListInvoices(ctx context.Context, p InvoiceListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.ContractID != "" {
		q.Set("contractId", p.ContractID)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return c.get(ctx, "/invoices", q)
}

// GetInvoice retrieves a single invoice by id.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.get(ctx, "/invoices/"+url.PathEscape(invoiceID), nil)
}
