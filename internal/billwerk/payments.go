package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
)

// PaymentTransactionListParams pages through payment transactions.
type PaymentTransactionListParams struct {
	From string
	Take int
}

// ListPaymentTransactions retrieves a page of payment transactions.
func (c *Client) ListPaymentTransactions(ctx context.Context, p PaymentTransactionListParams) (json.RawMessage, error) {
	return c.get(ctx, "/paymenttransactions", listQuery(p.From, p.Take))
}

// GetPaymentTransaction retrieves a single payment transaction by id.
func (c *Client) GetPaymentTransaction(ctx context.Context, transactionID string) (json.RawMessage, error) {
	return c.get(ctx, "/paymenttransactions/"+url.PathEscape(transactionID), nil)
}

// RecordPayment records an external payment (or refund, with a negative
// amount) against a contract.
func (c *Client) RecordPayment(ctx context.Context, contractID string, payment PaymentCreate) (json.RawMessage, error) {
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/payment", payment)
}
