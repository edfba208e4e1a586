package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// ComponentSubscriptionListParams filters the component subscription list.
type ComponentSubscriptionListParams struct {
	ContractID  string
	ComponentID string
	From        string
	Take        int
}

// ListComponentSubscriptions retrieves component subscriptions across
// contracts.
func (c *Client) ListComponentSubscriptions(ctx context.Context, p ComponentSubscriptionListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.ContractID != "" {
		q.Set("contractId", p.ContractID)
	}
	if p.ComponentID != "" {
		q.Set("componentId", p.ComponentID)
	}
	return c.get(ctx, "/componentsubscriptions", q)
}

// ListContractComponentSubscriptions retrieves all component subscriptions of
// one contract.
func (c *Client) ListContractComponentSubscriptions(ctx context.Context, contractID string) (json.RawMessage, error) {
	return c.get(ctx, "/contracts/"+url.PathEscape(contractID)+"/componentsubscriptions", nil)
}

// CreateComponentSubscription subscribes a contract to a component.
func (c *Client) CreateComponentSubscription(ctx context.Context, contractID string, sub ComponentSubscriptionCreate) (json.RawMessage, error) {
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/componentsubscriptions", sub)
}

// EndComponentSubscription ends a component subscription, optionally at the
// given end date.
func (c *Client) EndComponentSubscription(ctx context.Context, contractID, subscriptionID, endDate string) (json.RawMessage, error) {
	body := map[string]string{}
	if endDate != "" {
		body["endDate"] = endDate
	}
	path := "/contracts/" + url.PathEscape(contractID) + "/componentsubscriptions/" + url.PathEscape(subscriptionID) + "/end"
	return c.post(ctx, path, body)
}

// SubscriptionListParams filters the combined customer/contract subscription
// view.
type SubscriptionListParams struct {
	ShowHidden     bool
	Search         string
	PlanGroupID    string
	PlanID         string
	ContractStatus string
	From           string
	Take           int
}

// ListSubscriptions retrieves the combined subscription view.
func (c *Client) ListSubscriptions(ctx context.Context, p SubscriptionListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	q.Set("showHidden", strconv.FormatBool(p.ShowHidden))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.PlanGroupID != "" {
		q.Set("planGroupId", p.PlanGroupID)
	}
	if p.PlanID != "" {
		q.Set("planId", p.PlanID)
	}
	if p.ContractStatus != "" {
		q.Set("contractStatus", p.ContractStatus)
	}
	return c.get(ctx, "/subscriptions", q)
}
