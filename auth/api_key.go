package auth

import (
	"context"
	"net/http"
)

// APIKeyStrategy authenticates using a project API key.
//
// API keys don't expire unless an expiration date was set when they were
// created, and they grant the scopes chosen in the console.
type APIKeyStrategy struct {
	key string
}

// NewAPIKeyStrategy creates a new API key authentication strategy.
//
// Example:
//
//	strategy := auth.NewAPIKeyStrategy("standard_8c2f...")
func NewAPIKeyStrategy(key string) *APIKeyStrategy {
	return &APIKeyStrategy{key: key}
}

// GetToken returns the API key.
func (s *APIKeyStrategy) GetToken(ctx context.Context) (string, error) {
	return s.key, nil
}

// ApplyAuth sets the X-Appwrite-Key header.
func (s *APIKeyStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set(HeaderKey, token)
}

// HandleAuthError returns an empty token: a rejected key stays rejected.
func (s *APIKeyStrategy) HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error) {
	return "", nil
}
