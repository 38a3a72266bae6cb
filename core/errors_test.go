package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestMissingParameterError(t *testing.T) {
	err := NewMissingParameterError("databaseId")

	expected := `Missing required parameter: "databaseId"`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	wrapped := fmt.Errorf("create: %w", err)
	if !IsMissingParameter(wrapped) {
		t.Error("IsMissingParameter(wrapped) = false, want true")
	}
	if IsMissingParameter(errors.New("other")) {
		t.Error("IsMissingParameter(other) = true, want false")
	}
}

func TestAppwriteError(t *testing.T) {
	t.Run("Error() with type", func(t *testing.T) {
		err := &AppwriteError{
			Message: "Document with the requested ID could not be found.",
			Code:    404,
			Type:    "document_not_found",
		}

		expected := "document_not_found: Document with the requested ID could not be found. (status: 404)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Error() without type", func(t *testing.T) {
		err := &AppwriteError{
			Message: "Not Found",
			Code:    404,
		}

		expected := "Not Found (status: 404)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Unwrap() returns cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := &AppwriteError{Message: "wrapper", Cause: cause}

		if !errors.Is(err, cause) {
			t.Errorf("errors.Is() did not find cause")
		}
	})
}

func TestRateLimitError(t *testing.T) {
	t.Run("Error() with RetryAfter", func(t *testing.T) {
		err := &RateLimitError{
			AppwriteError: AppwriteError{Code: 429},
			RetryAfter:    30,
		}

		expected := "rate limited, retry after 30 seconds"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Error() without RetryAfter", func(t *testing.T) {
		err := &RateLimitError{AppwriteError: AppwriteError{Code: 429}}

		if err.Error() != "rate limited" {
			t.Errorf("Error() = %q, want %q", err.Error(), "rate limited")
		}
	})

	t.Run("NewRateLimitError default message", func(t *testing.T) {
		err := NewRateLimitError(RateLimitInfo{RetryAfter: 5}, "", "general_rate_limit_exceeded")

		if err.Message != "Rate limited. Retry after 5 seconds" {
			t.Errorf("Message = %q", err.Message)
		}
		if err.Code != 429 {
			t.Errorf("Code = %d, want 429", err.Code)
		}
		if err.Type != "general_rate_limit_exceeded" {
			t.Errorf("Type = %q", err.Type)
		}
	})
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError(1500*time.Millisecond, nil)

	if err.Error() != "request timed out after 1500ms" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsRetryableError(err) {
		t.Error("timeout should be retryable")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", &RateLimitError{}, true},
		{"server error", &ServerError{}, true},
		{"wrapped server error", fmt.Errorf("call: %w", &ServerError{}), true},
		{"timeout", &TimeoutError{}, true},
		{"not found", &NotFoundError{}, false},
		{"validation", &ValidationError{}, false},
		{"missing parameter", NewMissingParameterError("x"), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryableError(tt.err); got != tt.want {
				t.Errorf("IsRetryableError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		body         string
		headers      map[string]string
		expectedType string
	}{
		{
			name:         "400 returns ValidationError",
			statusCode:   400,
			body:         `{"message":"Invalid document structure","code":400,"type":"document_invalid_structure"}`,
			expectedType: "*core.ValidationError",
		},
		{
			name:         "401 returns AuthenticationError",
			statusCode:   401,
			body:         `{"message":"The current user is not authorized","code":401,"type":"user_unauthorized"}`,
			expectedType: "*core.AuthenticationError",
		},
		{
			name:         "403 returns AuthorizationError",
			statusCode:   403,
			body:         `{"message":"Missing scope","code":403,"type":"general_unauthorized_scope"}`,
			expectedType: "*core.AuthorizationError",
		},
		{
			name:         "404 returns NotFoundError",
			statusCode:   404,
			body:         `{"message":"Database not found","code":404,"type":"database_not_found"}`,
			expectedType: "*core.NotFoundError",
		},
		{
			name:         "409 returns ConflictError",
			statusCode:   409,
			body:         `{"message":"Document already exists","code":409,"type":"document_already_exists"}`,
			expectedType: "*core.ConflictError",
		},
		{
			name:       "429 returns RateLimitError",
			statusCode: 429,
			body:       `{"message":"Rate limit exceeded","code":429,"type":"general_rate_limit_exceeded"}`,
			headers: map[string]string{
				"Retry-After":           "30",
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": "0",
				"X-RateLimit-Reset":     "1718000000",
			},
			expectedType: "*core.RateLimitError",
		},
		{
			name:         "500 returns ServerError",
			statusCode:   500,
			body:         `{"message":"Server Error","code":500,"type":"general_unknown"}`,
			expectedType: "*core.ServerError",
		},
		{
			name:         "503 returns ServerError",
			statusCode:   503,
			body:         `{"message":"Service unavailable"}`,
			expectedType: "*core.ServerError",
		},
		{
			name:         "unknown 4xx returns AppwriteError",
			statusCode:   418,
			body:         `{"message":"I'm a teapot"}`,
			expectedType: "*core.AppwriteError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for k, v := range tt.headers {
				header.Set(k, v)
			}
			resp := &http.Response{StatusCode: tt.statusCode, Status: http.StatusText(tt.statusCode), Header: header}

			err := ParseErrorResponse(resp, []byte(tt.body), "https://cloud.appwrite.io/v1/databases")

			if got := fmt.Sprintf("%T", err); got != tt.expectedType {
				t.Fatalf("expected %s, got %s", tt.expectedType, got)
			}

			if rle, ok := err.(*RateLimitError); ok {
				if rle.RetryAfter != 30 {
					t.Errorf("RetryAfter = %d, want 30", rle.RetryAfter)
				}
				if rle.RateLimitInfo.Limit != 60 || rle.RateLimitInfo.Reset != 1718000000 {
					t.Errorf("RateLimitInfo = %+v", rle.RateLimitInfo)
				}
			}
		})
	}
}

func TestParseErrorResponseFields(t *testing.T) {
	t.Run("carries message, code, type and raw response", func(t *testing.T) {
		body := `{"message":"Collection not found","code":404,"type":"collection_not_found","version":"1.8.0"}`
		resp := &http.Response{StatusCode: 404, Status: "404 Not Found", Header: http.Header{}}

		err := ParseErrorResponse(resp, []byte(body), "")

		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected *NotFoundError, got %T", err)
		}
		if nf.Message != "Collection not found" || nf.Code != 404 || nf.Type != "collection_not_found" {
			t.Errorf("unexpected error fields: %+v", nf.AppwriteError)
		}
		if nf.Response != body {
			t.Errorf("Response = %q, want raw body", nf.Response)
		}
		if !IsNotFound(err) {
			t.Error("IsNotFound() = false")
		}
	})

	t.Run("non-JSON body becomes the message", func(t *testing.T) {
		resp := &http.Response{StatusCode: 502, Status: "502 Bad Gateway", Header: http.Header{}}

		err := ParseErrorResponse(resp, []byte("upstream timeout"), "")

		var se *ServerError
		if !errors.As(err, &se) {
			t.Fatalf("expected *ServerError, got %T", err)
		}
		if se.Message != "upstream timeout" {
			t.Errorf("Message = %q, want %q", se.Message, "upstream timeout")
		}
	})

	t.Run("empty body falls back to status", func(t *testing.T) {
		resp := &http.Response{StatusCode: 409, Status: "409 Conflict", Header: http.Header{}}

		err := ParseErrorResponse(resp, nil, "")

		if !IsConflict(err) {
			t.Fatalf("expected conflict, got %T", err)
		}
		var ce *ConflictError
		errors.As(err, &ce)
		if ce.Message != "409 Conflict" {
			t.Errorf("Message = %q, want %q", ce.Message, "409 Conflict")
		}
	})
}
