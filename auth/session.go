package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// SessionStrategy authenticates using a user session secret.
//
// The secret is either supplied up front ([NewSessionStrategy]) or obtained
// lazily by an email/password login on the first API call
// ([NewEmailSessionStrategy]). The password is discarded after a successful
// login and kept after a failed one, so the next call logs in again. When the session expires (401 error), an AuthenticationError is
// returned and a new strategy must be created.
type SessionStrategy struct {
	endpoint string
	project  string
	email    string
	password string // Cleared after a successful login
	apiKey   string
	client   *http.Client

	mu            sync.RWMutex
	secret        string
	userID        string
	sessionID     string
	expire        string
	pending       chan struct{}
	authenticated bool
}

// SessionOption configures a SessionStrategy.
type SessionOption func(*SessionStrategy)

// WithSessionAPIKey sets the API key sent with the login request.
// Appwrite only returns the session secret to requests made with a key.
func WithSessionAPIKey(key string) SessionOption {
	return func(s *SessionStrategy) {
		s.apiKey = key
	}
}

// WithSessionHTTPClient sets a custom HTTP client for the login request.
func WithSessionHTTPClient(client *http.Client) SessionOption {
	return func(s *SessionStrategy) {
		s.client = client
	}
}

// NewSessionStrategy creates a strategy using a session secret obtained
// elsewhere (for example by a browser client that created the session).
func NewSessionStrategy(secret string) *SessionStrategy {
	return &SessionStrategy{
		secret:        secret,
		authenticated: true,
		client:        http.DefaultClient,
	}
}

// NewEmailSessionStrategy creates a strategy that logs in with email and
// password on the first API call.
//
// Example:
//
//	strategy := auth.NewEmailSessionStrategy(
//	    "https://cloud.appwrite.io/v1", "my-project",
//	    "user@example.com", "password",
//	    auth.WithSessionAPIKey(apiKey),
//	)
func NewEmailSessionStrategy(endpoint, project, email, password string, opts ...SessionOption) *SessionStrategy {
	s := &SessionStrategy{
		endpoint: strings.TrimRight(endpoint, "/"),
		project:  project,
		email:    email,
		password: password,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetToken returns the session secret, logging in if needed.
func (s *SessionStrategy) GetToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.secret != "" {
		secret := s.secret
		s.mu.RUnlock()
		return secret, nil
	}
	s.mu.RUnlock()

	// Check if there's a pending login
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

	// Check if we already logged in (password is gone)
	if s.authenticated {
		s.mu.Unlock()
		return "", fmt.Errorf("session expired; create a new client with fresh credentials")
	}

	s.pending = make(chan struct{})
	s.mu.Unlock()

	session, err := s.login(ctx)

	s.mu.Lock()
	if err == nil {
		s.secret = session.Secret
		s.userID = session.UserID
		s.sessionID = session.ID
		s.expire = session.Expire
		s.authenticated = true
		s.password = ""
	}
	close(s.pending)
	s.pending = nil
	s.mu.Unlock()

	if err != nil {
		return "", err
	}
	return session.Secret, nil
}

type sessionResponse struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Expire string `json:"expire"`
	Secret string `json:"secret"`
}

// login calls POST /account/sessions/email.
func (s *SessionStrategy) login(ctx context.Context) (*sessionResponse, error) {
	body, err := json.Marshal(map[string]string{
		"email":    s.email,
		"password": s.password,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/account/sessions/email", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderProject, s.project)
	if s.apiKey != "" {
		req.Header.Set(HeaderKey, s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("authentication failed: %w", decodeAPIError(resp))
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if session.Secret == "" {
		return nil, fmt.Errorf("no session secret returned; the login request needs an API key")
	}
	return &session, nil
}

// ApplyAuth sets the X-Appwrite-Session header.
func (s *SessionStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set(HeaderSession, token)
}

// HandleAuthError clears the rejected secret. The password was discarded
// after login, so re-authentication is not possible.
func (s *SessionStrategy) HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error) {
	if statusCode != http.StatusUnauthorized {
		return "", nil
	}

	s.mu.Lock()
	s.secret = ""
	s.mu.Unlock()

	return "", nil
}

// UserID returns the logged-in user's ID (available after the first API call).
func (s *SessionStrategy) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// SessionID returns the session ID (available after the first API call).
func (s *SessionStrategy) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Expire returns the session expiry as reported by the server.
func (s *SessionStrategy) Expire() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expire
}

// SignOut clears the stored secret from memory, preventing further API calls.
//
// This does NOT delete the session on the server; it stays valid until it
// expires.
func (s *SessionStrategy) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secret = ""
	s.password = ""
	s.authenticated = true
}
