package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
)

// UsageListParams filters usage records of a contract by time window.
type UsageListParams struct {
	FromDateTime  string
	UntilDateTime string
	From          string
	Take          int
}

// ListUsage retrieves metered usage records for a contract.
func (c *Client) ListUsage(ctx context.Context, contractID string, p UsageListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.FromDateTime != "" {
		q.Set("fromDateTime", p.FromDateTime)
	}
	if p.UntilDateTime != "" {
		q.Set("untilDateTime", p.UntilDateTime)
	}
	return c.get(ctx, "/contracts/"+url.PathEscape(contractID)+"/usage", q)
}

// CreateUsage records metered usage on a contract.
func (c *Client) CreateUsage(ctx context.Context, contractID string, usage MeteredUsageCreate) (json.RawMessage, error) {
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/usage", usage)
}

// DeleteUsage deletes a usage record from a contract.
func (c *Client) DeleteUsage(ctx context.Context, contractID, usageID string) error {
	_, err := c.delete(ctx, "/contracts/"+url.PathEscape(contractID)+"/usage/"+url.PathEscape(usageID))
	return err
}
