package billwerk

import (
	"errors"
	"fmt"
)

// ErrNoAuth is returned when a request is attempted without any configured
// authentication method.
var ErrNoAuth = errors.New("no authentication method configured: set FRISBII_API_KEY or OAuth2 client credentials")

// APIError is a non-2xx response from the upstream API. The body is kept
// verbatim because Billwerk error payloads carry field-level details the
// assistant can act on.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("billwerk API: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("billwerk API: %s %s returned %d", e.Method, e.Path, e.StatusCode)
}
