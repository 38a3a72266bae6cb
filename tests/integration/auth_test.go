package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DrewBradfordXYZ/appwrite-go"
	"github.com/DrewBradfordXYZ/appwrite-go/tablesdb"
)

func TestAPIKeyAuth(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)

	t.Run("works with valid API key", func(t *testing.T) {
		c, err := appwrite.New(endpoint, projectID, appwrite.WithAPIKey(apiKey))
		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
		db, err := tablesdb.New(c).Get(ctx, tablesdb.GetParams{DatabaseID: tc.DatabaseID})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if db.ID != tc.DatabaseID {
			t.Errorf("Database ID = %s, want %s", db.ID, tc.DatabaseID)
		}
	})

	t.Run("fails with invalid API key", func(t *testing.T) {
		c, err := appwrite.New(endpoint, projectID,
			appwrite.WithAPIKey("invalid_key_12345"),
			appwrite.WithMaxRetries(0),
		)
		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
		_, err = tablesdb.New(c).Get(ctx, tablesdb.GetParams{DatabaseID: tc.DatabaseID})
		var ae *appwrite.AuthenticationError
		if !errors.As(err, &ae) {
			t.Errorf("err = %T %v, want *AuthenticationError", err, err)
		}
	})
}

func TestClientOptions(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)

	t.Run("works with debug enabled", func(t *testing.T) {
		c, err := appwrite.New(endpoint, projectID,
			appwrite.WithAPIKey(apiKey),
			appwrite.WithDebug(true),
		)
		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
		if _, err := tablesdb.New(c).Get(ctx, tablesdb.GetParams{DatabaseID: tc.DatabaseID}); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
	})

	t.Run("works with proactive throttle", func(t *testing.T) {
		c, err := appwrite.New(endpoint, projectID,
			appwrite.WithAPIKey(apiKey),
			appwrite.WithProactiveThrottle(5, time.Second),
		)
		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
		svc := tablesdb.New(c)
		for range 3 {
			if _, err := svc.Get(ctx, tablesdb.GetParams{DatabaseID: tc.DatabaseID}); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
		}
	})
}
