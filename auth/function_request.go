package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// Headers set by the Appwrite Functions runtime on incoming executions.
const (
	FunctionHeaderUserJWT = "x-appwrite-user-jwt"
	FunctionHeaderUserID  = "x-appwrite-user-id"
	FunctionHeaderKey     = "x-appwrite-key"
	FunctionHeaderTrigger = "x-appwrite-trigger"
	FunctionHeaderEvent   = "x-appwrite-event"
)

// FunctionRequest holds the credentials and metadata the Functions runtime
// attaches to an execution.
type FunctionRequest struct {
	UserID  string
	UserJWT string
	Key     string
	Trigger string
	Event   string
}

// ParseFunctionRequest reads the Appwrite execution headers from r.
func ParseFunctionRequest(r *http.Request) FunctionRequest {
	return FunctionRequest{
		UserID:  r.Header.Get(FunctionHeaderUserID),
		UserJWT: r.Header.Get(FunctionHeaderUserJWT),
		Key:     r.Header.Get(FunctionHeaderKey),
		Trigger: r.Header.Get(FunctionHeaderTrigger),
		Event:   r.Header.Get(FunctionHeaderEvent),
	}
}

// ExtractFunctionJWT returns the JWT of the user who triggered the execution.
//
// Example usage in a function handler:
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    jwt, err := auth.ExtractFunctionJWT(r)
//	    if err != nil {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//
//	    client, _ := appwrite.New(os.Getenv("APPWRITE_FUNCTION_API_ENDPOINT"),
//	        appwrite.WithProject(os.Getenv("APPWRITE_FUNCTION_PROJECT_ID")),
//	        appwrite.WithAuth(auth.NewJWTStrategy(auth.WithInitialJWT(jwt))),
//	    )
//	    // ...
//	}
func ExtractFunctionJWT(r *http.Request) (string, error) {
	token := strings.TrimSpace(r.Header.Get(FunctionHeaderUserJWT))
	if token == "" {
		return "", fmt.Errorf("no %s header in request", FunctionHeaderUserJWT)
	}
	if !ValidateJWT(token) {
		return "", fmt.Errorf("%s header is not a JWT", FunctionHeaderUserJWT)
	}
	return token, nil
}

// ExtractFunctionKey returns the dynamic API key issued for the execution.
func ExtractFunctionKey(r *http.Request) (string, error) {
	key := strings.TrimSpace(r.Header.Get(FunctionHeaderKey))
	if key == "" {
		return "", fmt.Errorf("no %s header in request", FunctionHeaderKey)
	}
	return key, nil
}

// ValidateJWT checks if a token has the three dot-separated segments of a JWT.
func ValidateJWT(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
