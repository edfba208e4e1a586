package billwerk

import (
	"context"
	"encoding/json"
	"net/url"
)

// ListReports retrieves the available reports.
func (c *Client) ListReports(ctx context.Context, take int) (json.RawMessage, error) {
	return c.get(ctx, "/reports", listQuery("", take))
}

// GetReport retrieves a single report by id.
func (c *Client) GetReport(ctx context.Context, reportID string) (json.RawMessage, error) {
	return c.get(ctx, "/reports/"+url.PathEscape(reportID), nil)
}

// GenerateReport runs a report with free-form parameters. The parameter
// shapes are report-specific and owned by the upstream API.
func (c *Client) GenerateReport(ctx context.Context, reportID string, parameters map[string]interface{}) (json.RawMessage, error) {
	if parameters == nil {
		parameters = map[string]interface{}{}
	}
	return c.post(ctx, "/reports/"+url.PathEscape(reportID), parameters)
}
