// Package appwrite provides a Go SDK for the Appwrite server API.
//
// This SDK provides:
//   - Typed services for databases, TablesDB, sites, tokens and organizations
//   - API key, JWT and email session authentication
//   - Automatic retry with exponential backoff and jitter
//   - Proactive rate limiting with a sliding window throttle
//   - Chunked, resumable uploads
//   - Custom error types for different HTTP status codes
//
// Basic usage with an API key:
//
//	c, err := appwrite.New("https://cloud.appwrite.io/v1", "my-project",
//	    appwrite.WithAPIKey("standard_xxx"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := appwrite.NewServices(c)
//	rows, err := svc.TablesDB.ListRows(ctx, tablesdb.ListRowsParams{
//	    DatabaseID: "main",
//	    TableID:    "books",
//	    Queries:    []string{query.Equal("author", "Herbert")},
//	})
//
// With proactive rate limiting and debug logging:
//
//	c, err := appwrite.New(endpoint, project,
//	    appwrite.WithAPIKey(key),
//	    appwrite.WithProactiveThrottle(60, time.Minute),
//	    appwrite.WithDebug(true),
//	)
package appwrite

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DrewBradfordXYZ/appwrite-go/auth"
	"github.com/DrewBradfordXYZ/appwrite-go/client"
	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/databases"
	"github.com/DrewBradfordXYZ/appwrite-go/organizations"
	"github.com/DrewBradfordXYZ/appwrite-go/sites"
	"github.com/DrewBradfordXYZ/appwrite-go/tablesdb"
	"github.com/DrewBradfordXYZ/appwrite-go/tokens"
)

// Client is the Appwrite API client.
type Client = client.Client

// Re-export types for convenience
type (
	// Error types
	AppwriteError         = core.AppwriteError
	MissingParameterError = core.MissingParameterError
	RateLimitError        = core.RateLimitError
	AuthenticationError   = core.AuthenticationError
	AuthorizationError    = core.AuthorizationError
	NotFoundError         = core.NotFoundError
	ConflictError         = core.ConflictError
	ValidationError       = core.ValidationError
	TimeoutError          = core.TimeoutError
	ServerError           = core.ServerError
	RateLimitInfo         = core.RateLimitInfo

	// Upload types
	InputFile      = core.InputFile
	UploadProgress = core.UploadProgress

	// Throttle types
	SlidingWindowThrottle = client.SlidingWindowThrottle
	NoOpThrottle          = client.NoOpThrottle
	TokenBucketThrottle   = client.TokenBucketThrottle
	Throttle              = client.Throttle

	// Pagination types
	PaginationOptions = client.PaginationOptions
	PaginationType    = client.PaginationType
)

// Pagination type constants
const (
	PaginationTypeCursor = client.PaginationTypeCursor
	PaginationTypeOffset = client.PaginationTypeOffset
)

// Services bundles every API service on one client.
type Services struct {
	Databases     *databases.Service
	TablesDB      *tablesdb.Service
	Sites         *sites.Service
	Tokens        *tokens.Service
	Organizations *organizations.Service
}

// NewServices creates all services on top of caller.
func NewServices(caller core.Caller) *Services {
	return &Services{
		Databases:     databases.New(caller),
		TablesDB:      tablesdb.New(caller),
		Sites:         sites.New(caller),
		Tokens:        tokens.New(caller),
		Organizations: organizations.New(caller),
	}
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	authStrategy any // auth.Strategy or a marker resolved in New
	clientOpts   []client.Option
}

// emailSessionMarker defers building the session strategy until the endpoint
// and project are known.
type emailSessionMarker struct {
	email    string
	password string
	opts     []auth.SessionOption
}

// WithAPIKey authenticates with a server API key.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.authStrategy = auth.NewAPIKeyStrategy(key)
	}
}

// WithJWTAuth authenticates as a user with a JWT. Pass auth.WithJWTRefresher
// to renew tokens automatically.
func WithJWTAuth(opts ...auth.JWTOption) Option {
	return func(c *clientConfig) {
		c.authStrategy = auth.NewJWTStrategy(opts...)
	}
}

// WithSessionSecret authenticates with an existing session secret.
func WithSessionSecret(secret string) Option {
	return func(c *clientConfig) {
		c.authStrategy = auth.NewSessionStrategy(secret)
	}
}

// WithEmailSession creates an email/password session on the first request.
// The password is discarded after the first successful sign-in.
func WithEmailSession(email, password string, opts ...auth.SessionOption) Option {
	return func(c *clientConfig) {
		c.authStrategy = &emailSessionMarker{email: email, password: password, opts: opts}
	}
}

// WithAuth sets a custom authentication strategy.
func WithAuth(strategy auth.Strategy) Option {
	return func(c *clientConfig) {
		c.authStrategy = strategy
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(n int) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithMaxRetries(n))
	}
}

// WithRetryDelay sets the initial delay between retries.
func WithRetryDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithRetryDelay(d))
	}
}

// WithMaxRetryDelay sets the maximum delay between retries.
func WithMaxRetryDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithMaxRetryDelay(d))
	}
}

// WithBackoffMultiplier sets the exponential backoff multiplier.
func WithBackoffMultiplier(m float64) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithBackoffMultiplier(m))
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithTimeout(d))
	}
}

// WithProactiveThrottle enables sliding window throttling of limit requests per window.
func WithProactiveThrottle(limit int, window time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithProactiveThrottle(limit, window))
	}
}

// WithTokenBucketThrottle limits requests to rps per second with bursts of up
// to burst requests.
func WithTokenBucketThrottle(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithTokenBucketThrottle(rps, burst))
	}
}

// WithThrottle sets a custom throttle implementation.
func WithThrottle(t client.Throttle) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithThrottle(t))
	}
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithDebug(enabled))
	}
}

// WithLogger sets the slog logger used by the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithLogger(l))
	}
}

// WithOnRateLimit sets a callback for rate limit events.
func WithOnRateLimit(callback func(RateLimitInfo)) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithOnRateLimit(callback))
	}
}

// WithSelfSigned accepts self-signed TLS certificates (local development only).
func WithSelfSigned(enabled bool) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithSelfSigned(enabled))
	}
}

// WithChunkSize sets the chunk size of uploads in bytes.
func WithChunkSize(n int64) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithChunkSize(n))
	}
}

// WithLocale sets the X-Appwrite-Locale header.
func WithLocale(locale string) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithLocale(locale))
	}
}

// New creates a new Appwrite client for project. An empty endpoint selects
// Appwrite Cloud. Without an authentication option requests are sent
// unauthenticated.
func New(endpoint, project string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = client.DefaultEndpoint
	}
	if err := client.ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}
	if project == "" {
		return nil, &Error{Message: "project ID is required"}
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	clientOpts := append([]client.Option{client.WithProject(project)}, cfg.clientOpts...)
	switch s := cfg.authStrategy.(type) {
	case *emailSessionMarker:
		clientOpts = append(clientOpts, client.WithAuth(auth.NewEmailSessionStrategy(endpoint, project, s.email, s.password, s.opts...)))
	case auth.Strategy:
		clientOpts = append(clientOpts, client.WithAuth(s))
	case nil:
	default:
		return nil, &Error{Message: fmt.Sprintf("unknown auth strategy type: %T", cfg.authStrategy)}
	}

	return client.New(endpoint, clientOpts...)
}

// Error represents an SDK configuration error.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Helper functions re-exported from core
var (
	// IsRetryableError returns true if the error should trigger a retry.
	IsRetryableError = core.IsRetryableError

	// IsNotFound returns true if the error is a 404.
	IsNotFound = core.IsNotFound

	// IsConflict returns true if the error is a 409.
	IsConflict = core.IsConflict

	// IsMissingParameter returns true if a required parameter was empty.
	IsMissingParameter = core.IsMissingParameter

	// ParseISODate parses an ISO 8601 date string to time.Time.
	ParseISODate = core.ParseISODate

	// FormatDatetime formats a time the way the server expects.
	FormatDatetime = core.FormatDatetime

	// NewInputFileFromPath reads a file to upload.
	NewInputFileFromPath = core.NewInputFileFromPath

	// NewInputFileFromBytes wraps in-memory data as an upload.
	NewInputFileFromBytes = core.NewInputFileFromBytes
)

// NewSlidingWindowThrottle creates a new sliding window throttle.
func NewSlidingWindowThrottle(limit int, window time.Duration) *SlidingWindowThrottle {
	return client.NewSlidingWindowThrottle(limit, window)
}

// NewTokenBucketThrottle creates a new token bucket throttle.
func NewTokenBucketThrottle(rps float64, burst int) *TokenBucketThrottle {
	return client.NewTokenBucketThrottle(rps, burst)
}

// NewNoOpThrottle creates a no-op throttle.
func NewNoOpThrottle() *NoOpThrottle {
	return client.NewNoOpThrottle()
}

// Ptr returns a pointer to v, for optional parameters.
//
//	databases.CreateParams{DatabaseID: "main", Name: "Main", Enabled: appwrite.Ptr(false)}
func Ptr[T any](v T) *T {
	return &v
}
