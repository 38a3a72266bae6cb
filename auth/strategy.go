// Package auth provides authentication strategies for the Appwrite API.
//
// Appwrite accepts three kinds of server-side credentials, each sent in its own
// header:
//
//   - API Key: Long-lived project keys with scopes (X-Appwrite-Key)
//   - JWT: Short-lived tokens acting on behalf of a user (X-Appwrite-JWT)
//   - Session: A user session secret (X-Appwrite-Session)
//
// # API Key (Recommended for Server-Side)
//
// Create a key in the console under Overview > Integrations > API keys.
//
//	client, _ := appwrite.New("https://cloud.appwrite.io/v1",
//	    appwrite.WithProject("my-project"),
//	    appwrite.WithAuth(auth.NewAPIKeyStrategy("standard_xxxx")),
//	)
//
// # JWT
//
// JWTs expire after 15 minutes. A JWT received from a browser can be used as
// is; a refresher mints new ones when the server rejects the current token.
//
//	strategy := auth.NewJWTStrategy(
//	    auth.WithInitialJWT(jwt),
//	    auth.WithJWTRefresher(auth.UserJWTRefresher(endpoint, project, apiKey, userID)),
//	)
//
// Inside an Appwrite Function the caller's JWT arrives as a request header:
//
//	jwt, _ := auth.ExtractFunctionJWT(r)
//
// # Session
//
// A session secret obtained elsewhere can be used directly, or the strategy
// can log in with email and password on first use:
//
//	strategy := auth.NewEmailSessionStrategy(endpoint, project, "user@example.com", "password",
//	    auth.WithSessionAPIKey(apiKey),
//	)
//
// The login call:
//
//	POST {endpoint}/account/sessions/email
//	X-Appwrite-Project: {project}
//	Content-Type: application/json
//
//	{"email": "user@example.com", "password": "secret"}
//
// The session secret is only returned when the request carries an API key.
package auth

import (
	"context"
	"net/http"
)

// Strategy defines the interface for authentication strategies.
//
// The SDK provides three built-in implementations:
//   - [APIKeyStrategy]: For project API keys
//   - [JWTStrategy]: For static or refreshable JWTs
//   - [SessionStrategy]: For session secrets, optionally obtained by email/password login
type Strategy interface {
	// GetToken returns the credential to send with the next request.
	GetToken(ctx context.Context) (string, error)

	// ApplyAuth sets the credential header on the request.
	ApplyAuth(req *http.Request, token string)

	// HandleAuthError is called when the API returns 401 Unauthorized.
	// Returns a new token if refresh was successful, empty string otherwise.
	HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error)
}

// Header names used by the strategies.
const (
	HeaderKey     = "X-Appwrite-Key"
	HeaderJWT     = "X-Appwrite-JWT"
	HeaderSession = "X-Appwrite-Session"
	HeaderProject = "X-Appwrite-Project"
)
