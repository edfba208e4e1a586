package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// PlanGroupListParams filters the plan group list.
type PlanGroupListParams struct {
	From       string
	Search     string
	ShowHidden bool
	Take       int
}

// ListPlanGroups retrieves a page of plan groups.
func (c *Client) ListPlanGroups(ctx context.Context, p PlanGroupListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	q.Set("showHidden", strconv.FormatBool(p.ShowHidden))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return c.get(ctx, "/plangroups", q)
}

// GetPlanGroup retrieves a single plan group by id.
func (c *Client) GetPlanGroup(ctx context.Context, planGroupID string) (json.RawMessage, error) {
	return c.get(ctx, "/plangroups/"+url.PathEscape(planGroupID), nil)
}

// PlanListParams filters the plan list.
type PlanListParams struct {
	PlanGroupID string
	From        string
	Take        int
}

// ListPlans retrieves a page of plans.
func (c *Client) ListPlans(ctx context.Context, p PlanListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.PlanGroupID != "" {
		q.Set("planGroupId", p.PlanGroupID)
	}
	return c.get(ctx, "/plans", q)
}

// GetPlan retrieves a single plan by id.
func (c *Client) GetPlan(ctx context.Context, planID string) (json.RawMessage, error) {
	return c.get(ctx, "/plans/"+url.PathEscape(planID), nil)
}

// PlanVariantListParams filters the plan variant list.
type PlanVariantListParams struct {
	PlanID     string
	ExternalID string
	Take       int
}

// ListPlanVariants retrieves a page of plan variants.
func (c *Client) ListPlanVariants(ctx context.Context, p PlanVariantListParams) (json.RawMessage, error) {
	q := listQuery("", p.Take)
	if p.PlanID != "" {
		q.Set("planId", p.PlanID)
	}
	if p.ExternalID != "" {
		q.Set("externalId", p.ExternalID)
	}
	return c.get(ctx, "/planvariants", q)
}

// GetPlanVariant retrieves a single plan variant by id.
func (c *Client) GetPlanVariant(ctx context.Context, planVariantID string) (json.RawMessage, error) {
	return c.get(ctx, "/planvariants/"+url.PathEscape(planVariantID), nil)
}

// ComponentListParams pages through the component list.
type ComponentListParams struct {
	From string
	Take int
}

// ListComponents retrieves a page of components.
func (c *Client) ListComponents(ctx context.Context, p ComponentListParams) (json.RawMessage, error) {
	return c.get(ctx, "/components", listQuery(p.From, p.Take))
}

// GetComponent retrieves a single component by id.
func (c *Client) GetComponent(ctx context.Context, componentID string) (json.RawMessage, error) {
	return c.get(ctx, "/components/"+url.PathEscape(componentID), nil)
}
