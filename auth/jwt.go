package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultJWTLifespan is how long a minted JWT is reused before refreshing.
// Appwrite JWTs are valid for 15 minutes.
const DefaultJWTLifespan = 14 * time.Minute

// RefreshFunc mints a new JWT.
type RefreshFunc func(ctx context.Context) (string, error)

// JWTStrategy authenticates using Appwrite JWTs.
//
// A JWT can be supplied up front (for example one forwarded by a browser
// client), minted by a RefreshFunc, or both. When a refresher is configured
// the token is cached for the lifespan and re-minted after a 401.
// Concurrent callers share a single in-flight refresh.
type JWTStrategy struct {
	refresh  RefreshFunc
	lifespan time.Duration

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	pending   chan struct{}
}

// JWTOption configures a JWTStrategy.
type JWTOption func(*JWTStrategy)

// WithInitialJWT sets a JWT to use before any refresh.
func WithInitialJWT(token string) JWTOption {
	return func(s *JWTStrategy) {
		s.token = token
	}
}

// WithJWTRefresher sets the function used to mint new tokens.
func WithJWTRefresher(fn RefreshFunc) JWTOption {
	return func(s *JWTStrategy) {
		s.refresh = fn
	}
}

// WithJWTLifespan sets how long a minted token is cached (default 14 minutes).
func WithJWTLifespan(d time.Duration) JWTOption {
	return func(s *JWTStrategy) {
		s.lifespan = d
	}
}

// NewJWTStrategy creates a new JWT authentication strategy.
func NewJWTStrategy(opts ...JWTOption) *JWTStrategy {
	s := &JWTStrategy{
		lifespan: DefaultJWTLifespan,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetToken returns the current JWT, minting one if needed.
func (s *JWTStrategy) GetToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.token != "" && (s.expiresAt.IsZero() || time.Now().Before(s.expiresAt)) {
		token := s.token
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	if s.refresh == nil {
		return "", fmt.Errorf("no JWT available and no refresher configured")
	}

	// Check if there's already a pending refresh
	s.mu.Lock()
	if s.pending != nil {
		pending := s.pending
		s.mu.Unlock()
		select {
		case <-pending:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		return s.GetToken(ctx)
	}
	pending := make(chan struct{})
	s.pending = pending
	s.mu.Unlock()

	token, err := s.refresh(ctx)
	if err == nil && token == "" {
		err = fmt.Errorf("refresher returned an empty JWT")
	}

	s.mu.Lock()
	s.pending = nil
	close(pending)
	if err == nil {
		s.token = token
		s.expiresAt = time.Now().Add(s.lifespan)
	}
	s.mu.Unlock()

	if err != nil {
		return "", fmt.Errorf("refreshing JWT: %w", err)
	}
	return token, nil
}

// SetToken replaces the current JWT.
func (s *JWTStrategy) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = time.Time{}
}

// ApplyAuth sets the X-Appwrite-JWT header.
func (s *JWTStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set(HeaderJWT, token)
}

// HandleAuthError drops the rejected token and mints a new one when a
// refresher is configured.
func (s *JWTStrategy) HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error) {
	if statusCode != http.StatusUnauthorized || attempt >= maxAttempts-1 || s.refresh == nil {
		return "", nil
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	return s.GetToken(ctx)
}

// UserJWTOption configures UserJWTRefresher.
type UserJWTOption func(*userJWTConfig)

type userJWTConfig struct {
	client    *http.Client
	sessionID string
	duration  int
}

// WithUserJWTHTTPClient sets the HTTP client used to mint tokens.
func WithUserJWTHTTPClient(client *http.Client) UserJWTOption {
	return func(c *userJWTConfig) {
		c.client = client
	}
}

// WithUserJWTSession binds minted tokens to a session ID ("recent" uses the latest session).
func WithUserJWTSession(sessionID string) UserJWTOption {
	return func(c *userJWTConfig) {
		c.sessionID = sessionID
	}
}

// WithUserJWTDuration sets the token validity in seconds (default 900).
func WithUserJWTDuration(seconds int) UserJWTOption {
	return func(c *userJWTConfig) {
		c.duration = seconds
	}
}

// UserJWTRefresher returns a RefreshFunc that mints JWTs for userID using the
// Users API (POST /users/{userId}/jwts). The API key needs the users.write scope.
func UserJWTRefresher(endpoint, project, apiKey, userID string, opts ...UserJWTOption) RefreshFunc {
	cfg := &userJWTConfig{
		client:   http.DefaultClient,
		duration: 900,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	u := strings.TrimRight(endpoint, "/") + "/users/" + url.PathEscape(userID) + "/jwts"

	return func(ctx context.Context) (string, error) {
		payload := map[string]any{"duration": cfg.duration}
		if cfg.sessionID != "" {
			payload["sessionId"] = cfg.sessionID
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("encoding request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderProject, project)
		req.Header.Set(HeaderKey, apiKey)

		resp, err := cfg.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("creating JWT: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return "", decodeAPIError(resp)
		}

		var result struct {
			JWT string `json:"jwt"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("decoding response: %w", err)
		}
		if result.JWT == "" {
			return "", fmt.Errorf("no JWT returned from API")
		}
		return result.JWT, nil
	}
}

// decodeAPIError reads an Appwrite error body from a failed auth request.
func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	json.NewDecoder(resp.Body).Decode(&errResp)
	msg := errResp.Message
	if msg == "" {
		msg = "unknown error"
	}
	if errResp.Type != "" {
		return fmt.Errorf("API error: %s: %s (status: %d)", errResp.Type, msg, resp.StatusCode)
	}
	return fmt.Errorf("API error: %s (status: %d)", msg, resp.StatusCode)
}
