package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"github.com/alexisbeaulieu97/spacedeck/internal/logger"
	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

// maxResponseBody caps the amount of response data read from the backend (10 MiB).
const maxResponseBody int64 = 10 << 20

const defaultUserAgent = "spacedeck"

// Client talks to the NASA/SpaceX backend. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	log       *logger.Logger
	userAgent string
	validate  *validator.Validate
	now       func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the library default (none).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			clone := *c.http
			clone.Timeout = d
			c.http = &clone
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("api: invalid backend URL %q", baseURL)
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		log:       logger.Nop(),
		userAgent: defaultUserAgent,
		validate:  validator.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.do(ctx, op, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewPayloadError(op, err)
	}
	return c.do(ctx, op, http.MethodPost, c.baseURL+path, payload, out)
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return apperrors.NewTransportError(op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logger.CorrelationID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "backend request failed", "op", op, "method", method, "url", endpoint, "error", err)
		return apperrors.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return apperrors.NewTransportError(op, fmt.Errorf("read response: %w", err))
	}

	c.log.Debug(ctx, "backend request completed",
		"op", op,
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"duration_ms", c.now().Sub(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewStatusError(op, resp.StatusCode, errorDetail(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewPayloadError(op, fmt.Errorf("decode: %w", err))
	}
	return nil
}

// errorDetail pulls a human-readable message out of an error body, if the
// backend sent one.
func errorDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"error", "message", "error.message"} {
		if res := gjson.GetBytes(body, path); res.Type == gjson.String && res.Str != "" {
			return res.Str
		}
	}
	return ""
}

func (c *Client) check(op string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return apperrors.NewPayloadError(op, err)
	}
	return nil
}
