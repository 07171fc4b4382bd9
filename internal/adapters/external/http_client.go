// Package external provides adapters for external services
// These adapters implement ports for geocoding, weather, image generation and caching.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	// image generation waits on the model synchronously
	imageHTTPTimeout = 60 * time.Second
	maxErrorBodySize = 512
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// doJSON sends req and decodes a 200 response body into out.
// Other statuses become ExternalAPI errors carrying the upstream status code.
func doJSON(client HTTPClient, req *http.Request, out interface{}, provider string, logger ports.Logger) error {
	return doJSONAccepting(client, req, out, provider, logger)
}

// doJSONAccepting is doJSON that also accepts the extra success statuses
func doJSONAccepting(client HTTPClient, req *http.Request, out interface{}, provider string, logger ports.Logger, extra ...int) error {
	resp, err := client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to call %s", provider), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body",
				ports.F("provider", provider),
				ports.F("error", closeErr))
		}
	}()

	if !acceptedStatus(resp.StatusCode, extra) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		logger.Debug("Upstream returned non-200 status",
			ports.F("provider", provider),
			ports.F("status", resp.StatusCode),
			ports.F("body", string(body)))
		return errors.NewExternalStatusError(fmt.Sprintf("%s returned status %d", provider, resp.StatusCode), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to decode %s response", provider), err)
	}
	return nil
}

func newJSONRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func acceptedStatus(status int, extra []int) bool {
	if status == http.StatusOK {
		return true
	}
	for _, s := range extra {
		if status == s {
			return true
		}
	}
	return false
}
