package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestJWTStrategy_WithInitialToken(t *testing.T) {
	strategy := NewJWTStrategy(WithInitialJWT("a.b.c"))

	token, err := strategy.GetToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "a.b.c" {
		t.Errorf("GetToken() = %q, want a.b.c", token)
	}

	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	strategy.ApplyAuth(req, token)
	if got := req.Header.Get("X-Appwrite-JWT"); got != "a.b.c" {
		t.Errorf("X-Appwrite-JWT = %q, want a.b.c", got)
	}
}

func TestJWTStrategy_NoTokenNoRefresher(t *testing.T) {
	strategy := NewJWTStrategy()
	if _, err := strategy.GetToken(context.Background()); err == nil {
		t.Error("expected error without token or refresher")
	}
}

func TestJWTStrategy_RefreshCachesToken(t *testing.T) {
	var calls int32
	strategy := NewJWTStrategy(WithJWTRefresher(func(ctx context.Context) (string, error) {
		n := atomic.AddInt32(&calls, 1)
		return fmt.Sprintf("jwt.%d.x", n), nil
	}))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		token, err := strategy.GetToken(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "jwt.1.x" {
			t.Errorf("GetToken() = %q, want jwt.1.x", token)
		}
	}
	if calls != 1 {
		t.Errorf("refresher called %d times, want 1", calls)
	}
}

func TestJWTStrategy_ExpiredTokenIsRefreshed(t *testing.T) {
	var calls int32
	strategy := NewJWTStrategy(
		WithJWTLifespan(time.Millisecond),
		WithJWTRefresher(func(ctx context.Context) (string, error) {
			n := atomic.AddInt32(&calls, 1)
			return fmt.Sprintf("jwt.%d.x", n), nil
		}),
	)

	ctx := context.Background()
	if _, err := strategy.GetToken(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	token, err := strategy.GetToken(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt.2.x" {
		t.Errorf("GetToken() = %q, want jwt.2.x", token)
	}
}

func TestJWTStrategy_HandleAuthError(t *testing.T) {
	var calls int32
	strategy := NewJWTStrategy(
		WithInitialJWT("old.jwt.token"),
		WithJWTRefresher(func(ctx context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "new.jwt.token", nil
		}),
	)
	ctx := context.Background()

	t.Run("ignores non-401", func(t *testing.T) {
		token, err := strategy.HandleAuthError(ctx, http.StatusForbidden, 0, 3)
		if err != nil || token != "" {
			t.Errorf("HandleAuthError(403) = %q, %v; want empty, nil", token, err)
		}
	})

	t.Run("ignores last attempt", func(t *testing.T) {
		token, err := strategy.HandleAuthError(ctx, http.StatusUnauthorized, 2, 3)
		if err != nil || token != "" {
			t.Errorf("HandleAuthError(last) = %q, %v; want empty, nil", token, err)
		}
	})

	t.Run("refreshes on 401", func(t *testing.T) {
		token, err := strategy.HandleAuthError(ctx, http.StatusUnauthorized, 0, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "new.jwt.token" {
			t.Errorf("HandleAuthError() = %q, want new.jwt.token", token)
		}
		if calls != 1 {
			t.Errorf("refresher called %d times, want 1", calls)
		}
	})
}

func TestJWTStrategy_StaticTokenCannotRefresh(t *testing.T) {
	strategy := NewJWTStrategy(WithInitialJWT("a.b.c"))
	token, err := strategy.HandleAuthError(context.Background(), http.StatusUnauthorized, 0, 3)
	if err != nil || token != "" {
		t.Errorf("HandleAuthError() = %q, %v; want empty, nil", token, err)
	}
}

func TestJWTStrategy_ConcurrentRefreshIsShared(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	strategy := NewJWTStrategy(WithJWTRefresher(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared.jwt.token", nil
	}))

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = strategy.GetToken(context.Background())
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("refresher called %d times, want 1", calls)
	}
	for i, r := range results {
		if r != "shared.jwt.token" {
			t.Errorf("results[%d] = %q, want shared.jwt.token", i, r)
		}
	}
}

func TestUserJWTRefresher(t *testing.T) {
	var captured struct {
		Method  string
		Path    string
		Project string
		Key     string
		Body    map[string]any
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Project = r.Header.Get("X-Appwrite-Project")
		captured.Key = r.Header.Get("X-Appwrite-Key")
		json.NewDecoder(r.Body).Decode(&captured.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jwt":"minted.jwt.value"}`))
	}))
	defer server.Close()

	refresh := UserJWTRefresher(server.URL+"/v1", "proj", "secret-key", "user1",
		WithUserJWTHTTPClient(server.Client()),
		WithUserJWTSession("recent"),
		WithUserJWTDuration(600),
	)
	token, err := refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "minted.jwt.value" {
		t.Errorf("token = %q, want minted.jwt.value", token)
	}
	if captured.Method != http.MethodPost {
		t.Errorf("Method = %q, want POST", captured.Method)
	}
	if captured.Path != "/v1/users/user1/jwts" {
		t.Errorf("Path = %q, want /v1/users/user1/jwts", captured.Path)
	}
	if captured.Project != "proj" || captured.Key != "secret-key" {
		t.Errorf("headers = %q/%q, want proj/secret-key", captured.Project, captured.Key)
	}
	if captured.Body["sessionId"] != "recent" {
		t.Errorf("sessionId = %v, want recent", captured.Body["sessionId"])
	}
	if captured.Body["duration"] != float64(600) {
		t.Errorf("duration = %v, want 600", captured.Body["duration"])
	}
}

func TestUserJWTRefresher_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"User not found","code":404,"type":"user_not_found"}`))
	}))
	defer server.Close()

	refresh := UserJWTRefresher(server.URL, "proj", "key", "missing", WithUserJWTHTTPClient(server.Client()))
	_, err := refresh(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	want := "API error: user_not_found: User not found (status: 404)"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
