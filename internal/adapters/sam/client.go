// Package sam is the HTTP client for the SAM.gov opportunities search API.
package sam

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eshaffer321/sam-search-relay/internal/domain/search"
)

// DefaultTimeout bounds a single search call when no client is supplied.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Client calls the opportunities search endpoint. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client for baseURL. If httpClient is nil, one with
// DefaultTimeout is used.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		logger:  logger,
	}
}

// Search issues one GET with q and returns the raw response body. The API
// key travels as the api_key query parameter because SAM.gov does not
// accept it in a header. Non-2xx answers come back as *search.UpstreamError
// and are never retried.
func (c *Client) Search(ctx context.Context, q search.Query) ([]byte, error) {
	reqURL, err := c.buildURL(q, c.apiKey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build SAM.gov request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if redacted, err := c.buildURL(q, "REDACTED"); err == nil {
		c.logger.Info("calling SAM.gov API", "url", redacted)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call SAM.gov: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read SAM.gov response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("SAM.gov API error",
			"status", resp.StatusCode,
			"body", truncate(string(body), 512))
		return nil, &search.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("SAM.gov API responded",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start))
	return body, nil
}

func (c *Client) buildURL(q search.Query, apiKey string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid SAM.gov base url: %w", err)
	}
	params := q.Values()
	for k, vs := range u.Query() {
		if _, ok := params[k]; !ok {
			params[k] = vs
		}
	}
	params.Set(search.ParamAPIKey, apiKey)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
