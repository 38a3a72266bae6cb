package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/DrewBradfordXYZ/appwrite-go"
	"github.com/DrewBradfordXYZ/appwrite-go/tablesdb"
)

func TestNotFoundErrors(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)

	t.Run("returns NotFoundError for non-existent table", func(t *testing.T) {
		_, err := tables.GetTable(ctx, tablesdb.GetTableParams{
			DatabaseID: tc.DatabaseID,
			TableID:    "does-not-exist",
		})
		var nf *appwrite.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %T %v, want *NotFoundError", err, err)
		}
		if nf.Code != 404 {
			t.Errorf("Code = %d, want 404", nf.Code)
		}
		if nf.Type == "" {
			t.Error("expected an error type from the server")
		}
	})

	t.Run("returns NotFoundError for non-existent column", func(t *testing.T) {
		_, err := tables.GetColumn(ctx, tablesdb.GetColumnParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			Key:        "nope",
		})
		if !appwrite.IsNotFound(err) {
			t.Errorf("err = %v, want not found", err)
		}
	})
}

func TestConflictErrors(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)

	_, err := tables.CreateTable(ctx, tablesdb.CreateTableParams{
		DatabaseID: tc.DatabaseID,
		TableID:    tc.TableID,
		Name:       "Duplicate",
	})
	if !appwrite.IsConflict(err) {
		t.Errorf("err = %v, want conflict", err)
	}
}

func TestMissingParameterNeverReachesServer(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()

	_, err := tables.GetRow(ctx, tablesdb.GetRowParams{DatabaseID: getTestContext(t).DatabaseID})
	if !appwrite.IsMissingParameter(err) {
		t.Fatalf("err = %v, want missing parameter", err)
	}
	var mp *appwrite.MissingParameterError
	if errors.As(err, &mp) && mp.Parameter != "tableId" {
		t.Errorf("Parameter = %q, want tableId", mp.Parameter)
	}
}

func TestEmptyResults(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)
	deleteAllRows(t, ctx)

	list, err := tables.ListRows(ctx, tablesdb.ListRowsParams{
		DatabaseID: tc.DatabaseID,
		TableID:    tc.TableID,
	})
	if err != nil {
		t.Fatalf("ListRows failed: %v", err)
	}
	if list.Total != 0 || len(list.Rows) != 0 {
		t.Errorf("got %d rows, want none", list.Total)
	}
}
