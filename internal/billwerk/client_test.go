package billwerk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the fake API saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   []byte
}

// newTestClient spins up a fake API returning the given status/body and a
// client pointed at it.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = map[string]string{}
		for k := range r.URL.Query() {
			rec.Query[k] = r.URL.Query().Get(k)
		}
		rec.Header = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		rec.Body = data

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, opts...), rec
}

func TestRequestHeaders(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`,
		WithAPIKey("static-key"),
		WithLegalEntity("le-42"),
	)

	_, err := client.GetCustomer(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer static-key", rec.Header.Get("Authorization"))
	assert.Equal(t, "le-42", rec.Header.Get("x-selected-legal-entity-id"))
	assert.Equal(t, "application/json", rec.Header.Get("Accept"))
	assert.Equal(t, "/api/v1/customers/cust-1", rec.Path)
}

func TestLegalEntityHeaderOmittedWhenUnset(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`, WithAPIKey("k"))

	_, err := client.GetCustomer(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Empty(t, rec.Header.Get("x-selected-legal-entity-id"))
}

// staticTokenProvider is a TokenProvider returning a fixed token.
type staticTokenProvider struct {
	token string
	err   error
}

func (s *staticTokenProvider) AccessToken(ctx context.Context) (string, error) {
	return s.token, s.err
}

func TestTokenProviderWinsOverAPIKey(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`,
		WithAPIKey("static-key"),
		WithTokenProvider(&staticTokenProvider{token: "oauth-token"}),
	)

	_, err := client.GetCustomer(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, "Bearer oauth-token", rec.Header.Get("Authorization"))
}

func TestTokenProviderFailure(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{}`,
		WithTokenProvider(&staticTokenProvider{err: errors.New("no token")}),
	)

	_, err := client.GetCustomer(context.Background(), "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestNoAuthConfigured(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.GetCustomer(context.Background(), "c")
	assert.ErrorIs(t, err, ErrNoAuth)
}

func TestListCustomersQuery(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`, WithAPIKey("k"))

	_, err := client.ListCustomers(context.Background(), CustomerListParams{
		Search:       "alice",
		StatusFilter: "Normal",
		From:         "cursor-1",
		Take:         100,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/customers", rec.Path)
	assert.Equal(t, "alice", rec.Query["search"])
	assert.Equal(t, "Normal", rec.Query["statusFilter"])
	assert.Equal(t, "cursor-1", rec.Query["from"])
	assert.Equal(t, "100", rec.Query["take"])
}

func TestListDefaultsTake(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`, WithAPIKey("k"))

	_, err := client.ListContracts(context.Background(), ContractListParams{})
	require.NoError(t, err)
	assert.Equal(t, "50", rec.Query["take"])
}

func TestCreateCustomerDefaults(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, `{"Id":"c1"}`, WithAPIKey("k"))

	_, err := client.CreateCustomer(context.Background(), CustomerCreate{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "application/json", rec.Header.Get("Content-Type"))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	assert.Equal(t, "Ada", sent["firstName"])
	assert.Equal(t, "en-US", sent["language"])
	assert.Equal(t, "en-US", sent["locale"])
	assert.Equal(t, "Consumer", sent["customerType"])
}

func TestEndContractBody(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`, WithAPIKey("k"))

	_, err := client.EndContract(context.Background(), "con-1", "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/contracts/con-1/end", rec.Path)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	assert.Equal(t, "2026-09-01", sent["endDate"])
}

func TestEndContractWithoutDateSendsEmptyObject(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`, WithAPIKey("k"))

	_, err := client.EndContract(context.Background(), "con-1", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(rec.Body))
}

func TestAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"Message":"not found"}`, WithAPIKey("k"))

	_, err := client.GetInvoice(context.Background(), "inv-404")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/invoices/inv-404", apiErr.Path)
	assert.Contains(t, apiErr.Error(), "not found")
}

func TestSubscriptionListShowHiddenAlwaysSent(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`, WithAPIKey("k"))

	_, err := client.ListSubscriptions(context.Background(), SubscriptionListParams{})
	require.NoError(t, err)
	assert.Equal(t, "false", rec.Query["showHidden"])

	_, err = client.ListSubscriptions(context.Background(), SubscriptionListParams{ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, "true", rec.Query["showHidden"])
}

func TestDeleteUsagePath(t *testing.T) {
	client, rec := newTestClient(t, http.StatusNoContent, ``, WithAPIKey("k"))

	err := client.DeleteUsage(context.Background(), "con-1", "use-9")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/api/v1/contracts/con-1/usage/use-9", rec.Path)
}

func TestGenerateReportDefaultsParameters(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`, WithAPIKey("k"))

	_, err := client.GenerateReport(context.Background(), "rep-1", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(rec.Body))
}
