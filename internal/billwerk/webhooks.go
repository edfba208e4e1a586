package billwerk

import (
	"context"
	"encoding/json"
)

// ListWebhooks retrieves all registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/webhooks", nil)
}

// WebhookEventListParams filters webhook events.
type WebhookEventListParams struct {
	From     string
	DateFrom string
	DateTo   string
	Status   string
	Take     int
}

// ListWebhookEvents retrieves a page of webhook delivery events.
func (c *Client) ListWebhookEvents(ctx context.Context, p WebhookEventListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.DateFrom != "" {
		q.Set("dateFrom", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("dateTo", p.DateTo)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return c.get(ctx, "/webhookevents", q)
}
