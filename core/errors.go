// Package core provides shared types and utilities for the Appwrite SDK.
//
// This package contains:
//   - The transport contract ([Caller], [Request], [Upload]) used by every service
//   - Error types for local validation failures and HTTP status codes (400, 401, 403, 404, 409, 429, 5xx)
//   - Date parsing and formatting utilities
//   - Logging utilities
//
// Error types can be used for type assertions to handle specific error cases:
//
//	db, err := databases.New(c).Get(ctx, databases.GetParams{DatabaseID: "main"})
//	if err != nil {
//	    var notFound *core.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle 404
//	    }
//	}
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// MissingParameterError is returned before any network call when a required
// parameter of a service method is empty.
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing required parameter: %q", e.Parameter)
}

// NewMissingParameterError creates a new MissingParameterError.
func NewMissingParameterError(param string) *MissingParameterError {
	return &MissingParameterError{Parameter: param}
}

// AppwriteError is the base error type for all errors returned by the server.
//
// All specific error types (RateLimitError, NotFoundError, etc.) embed this type.
// Type carries the server's machine-readable error type (e.g. "document_not_found")
// and Response the raw response body.
type AppwriteError struct {
	Message  string `json:"message"`
	Code     int    `json:"code"`
	Type     string `json:"type,omitempty"`
	Response string `json:"response,omitempty"`
	Cause    error  `json:"-"`
}

func (e *AppwriteError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Type, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Code)
}

func (e *AppwriteError) Unwrap() error {
	return e.Cause
}

// RateLimitInfo contains information about a rate limit event.
//
// This is passed to the OnRateLimit callback and included in RateLimitError.
// RetryAfter is in seconds; Remaining and Reset mirror the X-RateLimit-* headers.
type RateLimitInfo struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestURL string    `json:"requestUrl"`
	HTTPStatus int       `json:"httpStatus"`
	RetryAfter int       `json:"retryAfter,omitempty"`
	Limit      int       `json:"limit,omitempty"`
	Remaining  int       `json:"remaining"`
	Reset      int64     `json:"reset,omitempty"`
	Attempt    int       `json:"attempt"`
}

// RateLimitError is returned when the API returns HTTP 429.
type RateLimitError struct {
	AppwriteError
	RetryAfter    int           `json:"retryAfter,omitempty"`
	RateLimitInfo RateLimitInfo `json:"rateLimitInfo"`
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// NewRateLimitError creates a new RateLimitError from rate limit info.
func NewRateLimitError(info RateLimitInfo, message, errType string) *RateLimitError {
	if message == "" {
		if info.RetryAfter > 0 {
			message = fmt.Sprintf("Rate limited. Retry after %d seconds", info.RetryAfter)
		} else {
			message = "Rate limited"
		}
	}
	return &RateLimitError{
		AppwriteError: AppwriteError{
			Message: message,
			Code:    http.StatusTooManyRequests,
			Type:    errType,
		},
		RetryAfter:    info.RetryAfter,
		RateLimitInfo: info,
	}
}

// ValidationError is returned for bad requests (HTTP 400).
type ValidationError struct {
	AppwriteError
}

// AuthenticationError is returned when authentication fails (HTTP 401).
type AuthenticationError struct {
	AppwriteError
}

// AuthorizationError is returned when the caller lacks the required scope (HTTP 403).
type AuthorizationError struct {
	AppwriteError
}

// NotFoundError is returned when a resource is not found (HTTP 404).
type NotFoundError struct {
	AppwriteError
}

// ConflictError is returned when a resource already exists (HTTP 409).
type ConflictError struct {
	AppwriteError
}

// ServerError is returned for server errors (HTTP 5xx).
type ServerError struct {
	AppwriteError
}

// TimeoutError is returned when a request times out.
type TimeoutError struct {
	AppwriteError
	Timeout time.Duration `json:"timeout"`
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %dms", e.Timeout.Milliseconds())
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(timeout time.Duration, cause error) *TimeoutError {
	return &TimeoutError{
		AppwriteError: AppwriteError{
			Message: fmt.Sprintf("Request timed out after %dms", timeout.Milliseconds()),
			Cause:   cause,
		},
		Timeout: timeout,
	}
}

// ParseErrorResponse converts a non-2xx response into the matching error type.
// The body must already have been read; the response body is not consumed.
func ParseErrorResponse(resp *http.Response, body []byte, requestURL string) error {
	var payload struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
		Type    string `json:"type"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		payload.Message = resp.Status
		if len(body) > 0 && err != nil {
			payload.Message = string(body)
		}
	}

	base := AppwriteError{
		Message:  payload.Message,
		Code:     resp.StatusCode,
		Type:     payload.Type,
		Response: string(body),
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return &ValidationError{AppwriteError: base}
	case http.StatusUnauthorized:
		return &AuthenticationError{AppwriteError: base}
	case http.StatusForbidden:
		return &AuthorizationError{AppwriteError: base}
	case http.StatusNotFound:
		return &NotFoundError{AppwriteError: base}
	case http.StatusConflict:
		return &ConflictError{AppwriteError: base}
	case http.StatusTooManyRequests:
		info := RateLimitInfoFromResponse(resp, requestURL, 1)
		return &RateLimitError{AppwriteError: base, RetryAfter: info.RetryAfter, RateLimitInfo: info}
	default:
		if resp.StatusCode >= 500 {
			return &ServerError{AppwriteError: base}
		}
		return &base
	}
}

// RateLimitInfoFromResponse extracts rate limit details from response headers.
func RateLimitInfoFromResponse(resp *http.Response, requestURL string, attempt int) RateLimitInfo {
	info := RateLimitInfo{
		Timestamp:  time.Now(),
		RequestURL: requestURL,
		HTTPStatus: resp.StatusCode,
		Attempt:    attempt,
	}
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		info.RetryAfter, _ = strconv.Atoi(ra)
	}
	if v := resp.Header.Get("X-RateLimit-Limit"); v != "" {
		info.Limit, _ = strconv.Atoi(v)
	}
	if v := resp.Header.Get("X-RateLimit-Remaining"); v != "" {
		info.Remaining, _ = strconv.Atoi(v)
	}
	if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
		info.Reset, _ = strconv.ParseInt(v, 10, 64)
	}
	return info
}

// IsRetryableError returns true if the error should trigger a retry.
func IsRetryableError(err error) bool {
	var rl *RateLimitError
	var se *ServerError
	var te *TimeoutError
	return errors.As(err, &rl) || errors.As(err, &se) || errors.As(err, &te)
}

// IsNotFound returns true if err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict returns true if err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsMissingParameter returns true if err is a local validation failure.
func IsMissingParameter(err error) bool {
	var mp *MissingParameterError
	return errors.As(err, &mp)
}
