package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// DefaultTake is the default page size for list endpoints. The API caps the
// value at 500 server-side.
const DefaultTake = 50

// listQuery builds the shared pagination query values.
func listQuery(from string, take int) url.Values {
	if take <= 0 {
		take = DefaultTake
	}
	q := url.Values{"take": {strconv.Itoa(take)}}
	if from != "" {
		q.Set("from", from)
	}
	return q
}

// CustomerListParams filters the customer list.
type CustomerListParams struct {
	// Search matches name, email, or external id.
	Search string
	// StatusFilter is one of Normal, Unconfirmed, Deleted.
	StatusFilter string
	// From is the pagination cursor.
	From string
	// Take is the page size (max 500).
	Take int
}

// ListCustomers retrieves a page of customers.
func (c *Client) ListCustomers(ctx context.Context, p CustomerListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.StatusFilter != "" {
		q.Set("statusFilter", p.StatusFilter)
	}
	return c.get(ctx, "/customers", q)
}

// GetCustomer retrieves a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return c.get(ctx, "/customers/"+url.PathEscape(customerID), nil)
}

// CreateCustomer creates a new customer.
func (c *Client) CreateCustomer(ctx context.Context, customer CustomerCreate) (json.RawMessage, error) {
	customer.applyDefaults()
	return c.post(ctx, "/customers", customer)
}

// UpdateCustomer replaces an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, customerID string, customer CustomerCreate) (json.RawMessage, error) {
	customer.applyDefaults()
	return c.put(ctx, "/customers/"+url.PathEscape(customerID), customer)
}

// DeleteCustomer deletes a customer (GDPR-compliant erasure upstream).
func (c *Client) DeleteCustomer(ctx context.Context, customerID string) error {
	_, err := c.delete(ctx, "/customers/"+url.PathEscape(customerID))
	return err
}
