package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// GatewayError is returned for any non-2xx gateway response.
type GatewayError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the gateway's message, e.g. "Signin failed"
	Message string

	// Err is the underlying error text reported by the gateway
	Err string
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Err == "" {
		return fmt.Sprintf("gateway: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway: %d %s: %s", e.StatusCode, e.Message, e.Err)
}

// IsClientError reports whether the gateway rejected the request itself
// (4xx) rather than failing upstream.
func (e *GatewayError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// parseErrorResponse converts a non-2xx response into a *GatewayError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &GatewayError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
			Err:        errResp.Error,
		}
	}

	// Fallback: non-JSON body (proxy error page, mux 404, ...)
	return &GatewayError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
