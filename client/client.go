// Package client provides the Appwrite HTTP transport shared by every service.
//
// The transport adds SDK and credential headers, encodes params as a query
// string, JSON or multipart body, retries network errors, 429 and 5xx with
// exponential backoff, and splits large uploads into chunks.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/DrewBradfordXYZ/appwrite-go/auth"
	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/hashicorp/go-retryablehttp"
)

// SDK identification sent with every request.
const (
	SDKName        = "Go"
	SDKPlatform    = "server"
	SDKLanguage    = "go"
	SDKVersion     = "0.1.0"
	ResponseFormat = "1.8.0"
)

// DefaultEndpoint is the Appwrite Cloud API endpoint.
const DefaultEndpoint = "https://cloud.appwrite.io/v1"

// DefaultChunkSize is the size of each chunk of a chunked upload (5 MiB).
const DefaultChunkSize int64 = 5 * 1024 * 1024

// Client is the Appwrite transport. It implements core.Caller.
type Client struct {
	endpoint string

	mu      sync.RWMutex
	headers map[string]string

	auth        auth.Strategy
	http        *retryablehttp.Client
	baseHTTP    *http.Client
	throttle    Throttle
	logger      *core.Logger
	slog        *slog.Logger
	debug       bool
	onRateLimit func(core.RateLimitInfo)

	timeout           time.Duration
	maxRetries        int
	retryDelay        time.Duration
	maxRetryDelay     time.Duration
	backoffMultiplier float64
	chunkSize         int64
	selfSigned        bool
}

var _ core.Caller = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithProject sets the project ID (X-Appwrite-Project).
func WithProject(project string) Option {
	return func(c *Client) {
		c.headers["X-Appwrite-Project"] = project
	}
}

// WithKey sets a project API key (X-Appwrite-Key).
func WithKey(key string) Option {
	return func(c *Client) {
		c.headers[auth.HeaderKey] = key
	}
}

// WithJWT sets a user JWT (X-Appwrite-JWT).
func WithJWT(jwt string) Option {
	return func(c *Client) {
		c.headers[auth.HeaderJWT] = jwt
	}
}

// WithSession sets a user session secret (X-Appwrite-Session).
func WithSession(session string) Option {
	return func(c *Client) {
		c.headers[auth.HeaderSession] = session
	}
}

// WithLocale sets the locale used for localized responses (X-Appwrite-Locale).
func WithLocale(locale string) Option {
	return func(c *Client) {
		c.headers["X-Appwrite-Locale"] = locale
	}
}

// WithForwardedUserAgent sets the end user's user agent (X-Forwarded-User-Agent).
func WithForwardedUserAgent(ua string) Option {
	return func(c *Client) {
		c.headers["X-Forwarded-User-Agent"] = ua
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithAuth sets an authentication strategy. Its credential is applied after
// the static headers, and a 401 gives the strategy one chance to refresh.
func WithAuth(strategy auth.Strategy) Option {
	return func(c *Client) {
		c.auth = strategy
	}
}

// WithSelfSigned accepts self-signed TLS certificates. Use only against
// development servers.
func WithSelfSigned(enabled bool) Option {
	return func(c *Client) {
		c.selfSigned = enabled
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.baseHTTP = hc
	}
}

// WithTimeout sets the per-attempt request timeout (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxRetries sets the maximum number of retry attempts (default 3).
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the base delay between retries (default 1s).
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithMaxRetryDelay caps the delay between retries (default 30s).
func WithMaxRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.maxRetryDelay = d
	}
}

// WithBackoffMultiplier sets the exponential backoff multiplier (default 2).
func WithBackoffMultiplier(m float64) Option {
	return func(c *Client) {
		c.backoffMultiplier = m
	}
}

// WithProactiveThrottle limits requests to limit per window using a sliding
// window throttle.
func WithProactiveThrottle(limit int, window time.Duration) Option {
	return func(c *Client) {
		c.throttle = NewSlidingWindowThrottle(limit, window)
	}
}

// WithTokenBucketThrottle limits requests to rps per second with bursts of up
// to burst requests.
func WithTokenBucketThrottle(rps float64, burst int) Option {
	return func(c *Client) {
		c.throttle = NewTokenBucketThrottle(rps, burst)
	}
}

// WithThrottle sets a custom throttle implementation.
func WithThrottle(t Throttle) Option {
	return func(c *Client) {
		c.throttle = t
	}
}

// WithLogger sets the slog logger used by the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.slog = l
	}
}

// WithDebug enables debug logging of requests, retries and uploads.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// WithOnRateLimit sets a callback invoked on every 429 response.
func WithOnRateLimit(fn func(core.RateLimitInfo)) Option {
	return func(c *Client) {
		c.onRateLimit = fn
	}
}

// WithChunkSize sets the chunk size for chunked uploads (default 5 MiB).
func WithChunkSize(n int64) Option {
	return func(c *Client) {
		c.chunkSize = n
	}
}

// ValidateEndpoint checks that endpoint is an http(s) URL.
func ValidateEndpoint(endpoint string) error {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("invalid endpoint URL: %s", endpoint)
	}
	return nil
}

// New creates a new client for the API at endpoint (e.g. https://cloud.appwrite.io/v1).
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if err := ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}

	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		headers: map[string]string{
			"X-Sdk-Name":                 SDKName,
			"X-Sdk-Platform":             SDKPlatform,
			"X-Sdk-Language":             SDKLanguage,
			"X-Sdk-Version":              SDKVersion,
			"X-Appwrite-Response-Format": ResponseFormat,
			"User-Agent":                 fmt.Sprintf("AppwriteGoSDK/%s (%s; %s)", SDKVersion, runtime.GOOS, runtime.GOARCH),
		},
		timeout:           30 * time.Second,
		maxRetries:        3,
		retryDelay:        time.Second,
		maxRetryDelay:     30 * time.Second,
		backoffMultiplier: 2,
		chunkSize:         DefaultChunkSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.chunkSize <= 0 {
		c.chunkSize = DefaultChunkSize
	}
	if c.throttle == nil {
		c.throttle = NewNoOpThrottle()
	}
	c.logger = core.NewLogger(c.slog, c.debug)
	c.http = c.newRetryClient()

	return c, nil
}

// Endpoint returns the API endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Throttle returns the throttle applied to every attempt.
func (c *Client) Throttle() Throttle {
	return c.throttle
}

// Logger returns the client's logger.
func (c *Client) Logger() *core.Logger {
	return c.logger
}

// SetHeader sets a header sent with every subsequent request.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers[key] = value
}

// SetProject sets the project ID.
func (c *Client) SetProject(project string) { c.SetHeader("X-Appwrite-Project", project) }

// SetKey sets the API key.
func (c *Client) SetKey(key string) { c.SetHeader(auth.HeaderKey, key) }

// SetJWT sets the user JWT.
func (c *Client) SetJWT(jwt string) { c.SetHeader(auth.HeaderJWT, jwt) }

// SetSession sets the session secret.
func (c *Client) SetSession(session string) { c.SetHeader(auth.HeaderSession, session) }

// SetLocale sets the locale.
func (c *Client) SetLocale(locale string) { c.SetHeader("X-Appwrite-Locale", locale) }

// SetForwardedUserAgent sets the end user's user agent.
func (c *Client) SetForwardedUserAgent(ua string) { c.SetHeader("X-Forwarded-User-Agent", ua) }

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.headers)
}

// Call sends req and decodes the response into out.
func (c *Client) Call(ctx context.Context, req *core.Request, out any) error {
	body, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	return decodeResponse(body, out)
}

// do sends req, giving the auth strategy one chance to refresh on 401, and
// returns the body of a successful response.
func (c *Client) do(ctx context.Context, req *core.Request) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		hreq, err := c.newRequest(ctx, req)
		if err != nil {
			return nil, err
		}

		if c.auth != nil {
			token, err := c.auth.GetToken(ctx)
			if err != nil {
				return nil, fmt.Errorf("getting auth token: %w", err)
			}
			c.auth.ApplyAuth(hreq.Request, token)
		}

		start := time.Now()
		resp, err := c.http.Do(hreq)
		if err != nil {
			return nil, c.transportError(req, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response: %w", err)
		}
		c.logger.Timing(req.Method, hreq.URL.String(), resp.StatusCode, time.Since(start))

		if resp.StatusCode == http.StatusUnauthorized && c.auth != nil && attempt == 0 {
			token, err := c.auth.HandleAuthError(ctx, resp.StatusCode, attempt, 2)
			if err != nil {
				return nil, err
			}
			if token != "" {
				c.logger.Debug("retrying with refreshed credentials", "path", req.Path)
				continue
			}
		}

		if resp.StatusCode >= 400 {
			return nil, core.ParseErrorResponse(resp, body, hreq.URL.String())
		}
		return body, nil
	}
}

func (c *Client) transportError(req *core.Request, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return core.NewTimeoutError(c.timeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return core.NewTimeoutError(c.timeout, err)
	}
	return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
}

// newRequest builds the HTTP request: static headers first, then the
// request's own headers, then the encoded params.
func (c *Client) newRequest(ctx context.Context, req *core.Request) (*retryablehttp.Request, error) {
	u := c.endpoint + req.Path

	var body []byte
	contentType := req.ContentType()
	if req.Method == http.MethodGet {
		if q := encodeQuery(req.Params); q != "" {
			u += "?" + q
		}
	} else {
		var err error
		switch {
		case strings.HasPrefix(contentType, core.ContentTypeMultipart):
			body, contentType, err = encodeMultipart(req.Params)
		default:
			body, err = encodeJSON(req.Params)
			if contentType == "" {
				contentType = core.ContentTypeJSON
			}
		}
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", req.Method, req.Path, err)
		}
	}

	var raw any
	if body != nil {
		raw = body
	}
	hreq, err := retryablehttp.NewRequestWithContext(withAttempts(ctx), req.Method, u, raw)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.mu.RLock()
	for k, v := range c.headers {
		hreq.Header.Set(k, v)
	}
	c.mu.RUnlock()
	for k, v := range req.Headers {
		hreq.Header.Set(k, v)
	}
	if contentType != "" {
		hreq.Header.Set("Content-Type", contentType)
	}
	return hreq, nil
}

// decodeResponse copies the raw body into a *[]byte, discards it for a nil
// out, and JSON-decodes it otherwise.
func decodeResponse(body []byte, out any) error {
	switch v := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*v = append((*v)[:0], body...)
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
