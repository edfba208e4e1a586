package billwerk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"frisbii-transform-mcp/pkg/logging"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 30 * time.Second

// apiPrefix is the versioned path prefix shared by all endpoints.
const apiPrefix = "/api/v1"

// legalEntityHeader scopes a request to one tenant.
const legalEntityHeader = "x-selected-legal-entity-id"

// TokenProvider supplies the current OAuth2 access token, refreshing it when
// needed. internal/oauth.TokenSource implements this.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the Billwerk+ Transform API client.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	apiKey        string
	tokens        TokenProvider
	legalEntityID string
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAPIKey configures static bearer-token authentication.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTokenProvider configures OAuth2 authentication. When both an API key
// and a token provider are set, the token provider wins.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithLegalEntity sets the tenant id sent in the
// x-selected-legal-entity-id header.
func WithLegalEntity(id string) Option {
	return func(c *Client) {
		c.legalEntityID = id
	}
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// authorize sets the Authorization header from the configured credentials.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		return nil
	}
	return ErrNoAuth
}

// do performs one API request. path is relative to /api/v1. A nil body sends
// no payload; any other body is JSON-encoded. The raw response body is
// returned for 2xx responses; everything else becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.legalEntityID != "" {
		req.Header.Set(legalEntityHeader, c.legalEntityID)
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	// Correlation id for log lines only; not sent upstream.
	requestID := uuid.NewString()
	logging.Debug("billwerk", "[%s] %s %s", requestID, method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("billwerk", "[%s] %s %s -> %d", requestID, method, path, resp.StatusCode)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       data,
		}
	}

	logging.Debug("billwerk", "[%s] %s %s -> %d (%d bytes)", requestID, method, path, resp.StatusCode, len(data))
	return data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
