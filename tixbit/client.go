package tixbit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production marketplace host.
	DefaultBaseURL = "https://tixbit.com"
	// DefaultTimeout bounds every outbound request.
	DefaultTimeout = 15 * time.Second

	clientID    = "tixbit-go"
	maxRespBody = 4 << 20 // 4MB guard
)

// Client wraps the Tixbit marketplace API. All operations are safe for
// concurrent use; there is no shared mutable state across calls.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *retryablehttp.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

type Option func(*Client)

// WithBaseURL overrides the marketplace host, e.g. for a staging environment
// or an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithAPIKey attaches a bearer token to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout bounds each outbound request. Exceeding it aborts the in-flight
// call and surfaces as a request failure.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http.HTTPClient = hc }
}

// WithLogger enables request logging through zap. The client is silent
// without it.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRateLimit caps outbound request rate to protect upstream quota.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func New(opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0 // errors propagate to the caller, retry is their call
	rc.Logger = nil

	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		http:    rc,
	}
	for _, opt := range opts {
		opt(c)
	}
	rc.HTTPClient.Timeout = c.timeout
	if c.log != nil {
		rc.Logger = leveledZap{c.log.Sugar()}
	}
	return c
}

// SearchParams filters the event search. Zero-valued fields are omitted from
// the query entirely.
type SearchParams struct {
	Query     string
	City      string
	State     string
	Category  string
	StartDate string
	EndDate   string
	Page      int
	Size      int
}

func (c *Client) SearchEvents(ctx context.Context, p SearchParams) (*SearchResult, error) {
	q := url.Values{}
	setStr(q, "q", p.Query)
	setStr(q, "city", p.City)
	setStr(q, "state", p.State)
	setStr(q, "category", p.Category)
	setStr(q, "startDate", p.StartDate)
	setStr(q, "endDate", p.EndDate)
	setInt(q, "page", p.Page)
	setInt(q, "size", p.Size)

	var env struct {
		Events     []map[string]any `json:"events"`
		Pagination Pagination       `json:"pagination"`
	}
	if err := c.getJSON(ctx, "/api/events/search", q, &env); err != nil {
		return nil, err
	}
	return &SearchResult{Events: mapEvents(env.Events), Pagination: env.Pagination}, nil
}

// BrowseParams tunes the curated event feed.
type BrowseParams struct {
	Size              int
	NearLat           *float64
	NearLng           *float64
	PreferCity        string
	PreferState       string
	CategoryEventType string
}

func (c *Client) Browse(ctx context.Context, p BrowseParams) (*BrowseResult, error) {
	q := url.Values{}
	setInt(q, "size", p.Size)
	q.Set("context", "homepage")
	q.Set("recommendation", "upcoming")
	if p.NearLat != nil && p.NearLng != nil {
		q.Set("nearLat", strconv.FormatFloat(*p.NearLat, 'f', -1, 64))
		q.Set("nearLng", strconv.FormatFloat(*p.NearLng, 'f', -1, 64))
	}
	setStr(q, "preferCity", p.PreferCity)
	setStr(q, "preferState", p.PreferState)
	setStr(q, "categoryEventType", p.CategoryEventType)

	var env struct {
		Events []map[string]any `json:"events"`
		Total  int              `json:"total"`
	}
	if err := c.getJSON(ctx, "/api/events", q, &env); err != nil {
		return nil, err
	}
	return &BrowseResult{Events: mapEvents(env.Events), Total: env.Total}, nil
}

// ListingsParams selects a page of listings for one event. EventID accepts
// either the canonical or the provider-prefixed form.
type ListingsParams struct {
	EventID          string
	Size             int
	Page             int
	OrderByDirection string
}

func (c *Client) Listings(ctx context.Context, p ListingsParams) (*ListingsResult, error) {
	id := NormalizeEventID(p.EventID)
	if id == "" {
		return nil, errors.New("tixbit: event id is required")
	}
	q := url.Values{}
	setInt(q, "size", p.Size)
	setInt(q, "page", p.Page)
	setStr(q, "order_by_direction", p.OrderByDirection)

	var env struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
		Meta    ListingsMeta     `json:"meta"`
	}
	if err := c.getJSON(ctx, "/api/events/"+url.PathEscape(id)+"/listings", q, &env); err != nil {
		return nil, err
	}
	out := &ListingsResult{Listings: make([]Listing, 0, len(env.Data)), Meta: env.Meta}
	for _, rec := range env.Data {
		out.Listings = append(out.Listings, MapListing(rec))
	}
	return out, nil
}

func mapEvents(recs []map[string]any) []Event {
	events := make([]Event, 0, len(recs))
	for _, rec := range recs {
		events = append(events, MapEvent(rec))
	}
	return events
}

// getJSON performs one bounded GET against the marketplace and decodes the
// body into out. Non-success statuses become *APIError; transport failures
// come back wrapped without a status.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.absoluteURL(path)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	body, err := c.get(ctx, u)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tixbit: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("tixbit: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client", clientID)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tixbit: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readAllLimit(resp.Body, maxRespBody)
	if err != nil {
		return nil, fmt.Errorf("tixbit: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, u, body)
	}
	return body, nil
}

// absoluteURL resolves a possibly host-relative reference against the
// configured base. Already-absolute references pass through unchanged.
func (c *Client) absoluteURL(ref string) string {
	if ref == "" {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return c.baseURL + ref
}

func setStr(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setInt(q url.Values, key string, val int) {
	if val > 0 {
		q.Set(key, strconv.Itoa(val))
	}
}

func readAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}

// leveledZap adapts zap onto retryablehttp's logging hook.
type leveledZap struct{ s *zap.SugaredLogger }

func (l leveledZap) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }
func (l leveledZap) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l leveledZap) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l leveledZap) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
