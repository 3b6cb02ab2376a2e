// Package search is the HTTP client for the stock suggestion endpoint.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Path is the route of the suggestion endpoint.
const Path = "/search_stock"

// maxPayloadBytes caps how much of a response body is read.
const maxPayloadBytes = 1 << 20

var (
	// ErrMalformedPayload is returned when the body is not valid JSON.
	ErrMalformedPayload = errors.New("malformed suggestion payload")

	// ErrUnexpectedPayload is returned when the body is valid JSON but not
	// an array of strings.
	ErrUnexpectedPayload = errors.New("suggestion payload is not an array of strings")
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search endpoint returned %s", e.Status)
}

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the scheme and host of the endpoint, e.g. http://127.0.0.1:5000.
	BaseURL string

	// Timeout bounds each request. Zero means no timeout.
	// Ignored when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Client performs suggestion lookups against a /search_stock endpoint.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the endpoint at cfg.BaseURL.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("search client requires a base URL")
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}, nil
}

// URL returns the request URL for a query. The query is percent-encoded.
func (c *Client) URL(query string) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + Path
	u.RawQuery = url.Values{"q": []string{query}}.Encode()
	return u.String()
}

// Search fetches the suggestion list for query.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	suggestions, err := DecodeSuggestions(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("search complete",
		zap.String("query", query),
		zap.Int("suggestions", len(suggestions)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return suggestions, nil
}

// DecodeSuggestions parses a JSON array of strings.
// An empty array yields an empty, non-nil slice.
func DecodeSuggestions(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedPayload
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrUnexpectedPayload, describe(result))
	}

	items := result.Array()
	suggestions := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: element %d is %s", ErrUnexpectedPayload, i, describe(item))
		}
		suggestions = append(suggestions, item.Str)
	}

	return suggestions, nil
}

func describe(r gjson.Result) string {
	if r.IsObject() {
		return "object"
	}
	if r.IsArray() {
		return "array"
	}
	return strings.ToLower(r.Type.String())
}
