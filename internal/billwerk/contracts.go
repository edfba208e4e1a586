package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
)

// ContractListParams filters the contract list.
type ContractListParams struct {
	From       string
	Take       int
	ExternalID string
}

// ListContracts retrieves a page of contracts.
func (c *Client) ListContracts(ctx context.Context, p ContractListParams) (json.RawMessage, error) {
	q := listQuery(p.From, p.Take)
	if p.ExternalID != "" {
		q.Set("externalId", p.ExternalID)
	}
	return c.get(ctx, "/contracts", q)
}

// GetContract retrieves a single contract by id.
func (c *Client) GetContract(ctx context.Context, contractID string) (json.RawMessage, error) {
	return c.get(ctx, "/contracts/"+url.PathEscape(contractID), nil)
}

// ListContractsByCustomer retrieves all contracts of one customer.
func (c *Client) ListContractsByCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return c.get(ctx, "/customers/"+url.PathEscape(customerID)+"/contracts", nil)
}

// EndContract cancels a contract, optionally at the given end date
// (ISO format). An empty endDate ends the contract per upstream rules.
func (c *Client) EndContract(ctx context.Context, contractID, endDate string) (json.RawMessage, error) {
	body := map[string]string{}
	if endDate != "" {
		body["endDate"] = endDate
	}
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/end", body)
}

// PauseContract pauses a contract, optionally bounded by start and end dates.
func (c *Client) PauseContract(ctx context.Context, contractID, startDate, endDate string) (json.RawMessage, error) {
	body := map[string]string{}
	if startDate != "" {
		body["startDate"] = startDate
	}
	if endDate != "" {
		body["endDate"] = endDate
	}
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/pause", body)
}

// ResumeContract resumes a paused contract, optionally at a resume date.
func (c *Client) ResumeContract(ctx context.Context, contractID, resumeDate string) (json.RawMessage, error) {
	body := map[string]string{}
	if resumeDate != "" {
		body["resumeDate"] = resumeDate
	}
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/resume", body)
}

// BillContract triggers interim billing for a contract.
func (c *Client) BillContract(ctx context.Context, contractID string) (json.RawMessage, error) {
	return c.post(ctx, "/contracts/"+url.PathEscape(contractID)+"/bill", nil)
}
