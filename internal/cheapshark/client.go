package cheapshark

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DealsFetcher defines the read-only CheapShark endpoints the catalog depends on.
// This interface is implemented by *Client and can be used for testing.
type DealsFetcher interface {
	FetchDeals(ctx context.Context, query DealsQuery) ([]Deal, error)
	SearchGames(ctx context.Context, query GamesQuery) ([]GameHit, error)
	FetchGame(ctx context.Context, gameID string) (*GameLookup, error)
	FetchStores(ctx context.Context) ([]Store, error)
	RedirectURL(dealID string) string
}

// Ensure Client implements DealsFetcher at compile time.
var _ DealsFetcher = (*Client)(nil)

// Client talks to the CheapShark HTTP API.
type Client struct {
	baseURL     *url.URL
	redirectURL *url.URL
	http        *http.Client
	userAgent   string
}

const (
	DefaultAPIURL      = "https://www.cheapshark.com/api/1.0/"
	DefaultRedirectURL = "https://www.cheapshark.com/redirect"
	defaultUserAgent   = "bargain/0.1"
	defaultTimeout     = 10 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRedirectURL overrides the purchase redirect endpoint.
func WithRedirectURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(strings.TrimSpace(raw)); err == nil && u.Host != "" {
			c.redirectURL = u
		}
	}
}

// WithLogger wraps the transport so every request is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			return
		}
		c.http.Transport = NewLoggingTransport(c.http.Transport, logger)
	}
}

// NewClient builds a Client rooted at apiURL.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	redirect, _ := url.Parse(DefaultRedirectURL)
	c := &Client{
		baseURL:     base,
		redirectURL: redirect,
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: http.DefaultTransport,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DealsQuery configures deals requests.
type DealsQuery struct {
	StoreID  string
	PageSize int
}

// FetchDeals retrieves the current deal list, optionally narrowed to one store.
func (c *Client) FetchDeals(ctx context.Context, query DealsQuery) ([]Deal, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if query.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(query.PageSize))
	}
	if store := strings.TrimSpace(query.StoreID); store != "" {
		values.Set("storeID", store)
	}
	var payload []Deal
	if err := c.get(ctx, "deals", values, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GamesQuery configures title searches.
type GamesQuery struct {
	Title string
	Limit int
}

// SearchGames looks up games whose title matches query.Title.
func (c *Client) SearchGames(ctx context.Context, query GamesQuery) ([]GameHit, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	title := strings.TrimSpace(query.Title)
	if title == "" {
		return nil, fmt.Errorf("title required")
	}
	values := url.Values{}
	values.Set("title", title)
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	var payload []GameHit
	if err := c.get(ctx, "games", values, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchGame retrieves game info and every current deal for one game.
func (c *Client) FetchGame(ctx context.Context, gameID string) (*GameLookup, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	id := strings.TrimSpace(gameID)
	if id == "" {
		return nil, fmt.Errorf("game id required")
	}
	values := url.Values{}
	values.Set("id", id)
	var payload GameLookup
	if err := c.get(ctx, "games", values, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchStores retrieves the store catalog.
func (c *Client) FetchStores(ctx context.Context) ([]Store, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Store
	if err := c.get(ctx, "stores", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// RedirectURL builds the outbound purchase link for a deal. Deal ids arrive
// already percent-encoded, so they are unescaped before being re-encoded.
func (c *Client) RedirectURL(dealID string) string {
	id := strings.TrimSpace(dealID)
	if id == "" {
		return ""
	}
	if unescaped, err := url.QueryUnescape(id); err == nil {
		id = unescaped
	}
	base := *c.redirectURL
	values := url.Values{}
	values.Set("dealID", id)
	base.RawQuery = values.Encode()
	return base.String()
}

func (c *Client) get(ctx context.Context, path string, values url.Values, dest any) error {
	rel := &url.URL{Path: path}
	if len(values) > 0 {
		rel.RawQuery = values.Encode()
	}
	return c.doURL(ctx, http.MethodGet, rel, dest)
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

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: rel.Path, Code: resp.StatusCode}
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

// StatusError reports a non-2xx response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = DefaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", apiURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
