package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with the given per-call timeout.
// The timeout bounds each individual request so a hung upstream call cannot stall
// a caller's own retry budget.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues a GET request against the API and decodes the JSON response into
// response. Query parameters are appended to the endpoint when present. Any
// non-2xx status or undecodable body is reported as an *UpstreamError.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, query url.Values, response interface{}) error {
	u := c.BaseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &UpstreamError{Message: "failed to build request: " + err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		// Keep context cancellation distinguishable from upstream failures.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &UpstreamError{Message: "request failed: " + err.Error()}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return &UpstreamError{StatusCode: res.StatusCode, Message: "failed to read response body: " + err.Error()}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &UpstreamError{StatusCode: res.StatusCode, Message: "unexpected status " + res.Status}
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return &UpstreamError{StatusCode: res.StatusCode, Message: "malformed response body: " + err.Error()}
		}
	}

	return nil
}
