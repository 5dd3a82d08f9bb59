package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// DefaultPrefix is the path prefix the gateway mounts its routes under.
const DefaultPrefix = "/api"

// SDKClient is a client for the Cognito gateway.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Prefix is prepended to every route path except the health probes.
	// Default: DefaultPrefix
	Prefix string
}

// NewSDKClient creates a new gateway client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Prefix: DefaultPrefix,
	}
}

// routePath returns the path of a gateway route by name, e.g. "signin".
func (c *SDKClient) routePath(route string) string {
	return strings.TrimSuffix(c.Prefix, "/") + "/" + route
}
