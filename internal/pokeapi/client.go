package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Source defines the two catalog calls. It is implemented by *Client and
// can be faked in tests.
type Source interface {
	ListReferences(ctx context.Context, limit int) ([]Reference, error)
	FetchDetail(ctx context.Context, detailURL string) (Detail, error)
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to the PokeAPI REST endpoints.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "dexter/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client rooted at baseURL. A zero timeout uses the
// default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListReferences retrieves the first limit entries of the catalog index.
func (c *Client) ListReferences(ctx context.Context, limit int) ([]Reference, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	rel := &url.URL{Path: "pokemon", RawQuery: values.Encode()}
	var payload ListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FetchDetail retrieves one detail record. Relative URLs resolve against the
// API root.
func (c *Client) FetchDetail(ctx context.Context, detailURL string) (Detail, error) {
	if c == nil {
		return Detail{}, fmt.Errorf("client is nil")
	}
	trimmed := strings.TrimSpace(detailURL)
	if trimmed == "" {
		return Detail{}, fmt.Errorf("detail url required")
	}
	rel, err := url.Parse(trimmed)
	if err != nil {
		return Detail{}, fmt.Errorf("parse detail url %q: %w", detailURL, err)
	}
	var payload Detail
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Detail{}, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative paths append to it:
// "pokeapi.co/api/v2" becomes "https://pokeapi.co/api/v2/".
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
