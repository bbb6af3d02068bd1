package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"food-picker/apperrors"

	"github.com/goccy/go-json"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with the given request timeout
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes an HTTP request to the API and decodes the JSON response.
// Transport failures and non-2xx statuses are returned as *apperrors.UpstreamError.
func (c *HTTPClient) Request(
	ctx context.Context,
	method, endpoint string,
	query url.Values,
	headers map[string]string,
	body interface{},
	response interface{},
) error {
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, requestBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(0, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return apperrors.NewUpstreamError(0, fmt.Errorf("failed to read response body: %w", err))
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return apperrors.NewUpstreamError(res.StatusCode, fmt.Errorf("unexpected status code: %s", res.Status))
	}

	if response != nil && len(resBody) > 0 {
		if err := json.Unmarshal(resBody, response); err != nil {
			return apperrors.NewUpstreamError(res.StatusCode, fmt.Errorf("failed to decode response: %w", err))
		}
	}

	return nil
}
