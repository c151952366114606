package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client, preconfigured for one JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests are resolved against
// baseURL, bounded by timeout (none when zero) and identified by userAgent.
// Each call builds an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
