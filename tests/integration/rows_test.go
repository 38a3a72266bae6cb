package integration

import (
	"context"
	"testing"

	"github.com/DrewBradfordXYZ/appwrite-go"
	"github.com/DrewBradfordXYZ/appwrite-go/id"
	"github.com/DrewBradfordXYZ/appwrite-go/query"
	"github.com/DrewBradfordXYZ/appwrite-go/tablesdb"
)

type book struct {
	ID        string `json:"$id"`
	Title     string `json:"title"`
	Pages     int    `json:"pages"`
	Published bool   `json:"published"`
}

// deleteAllRows clears the test table.
func deleteAllRows(t *testing.T, ctx context.Context) {
	t.Helper()
	tc := getTestContext(t)
	if _, err := tables.DeleteRows(ctx, tablesdb.DeleteRowsParams{
		DatabaseID: tc.DatabaseID,
		TableID:    tc.TableID,
	}); err != nil {
		t.Fatalf("DeleteRows failed: %v", err)
	}
}

func TestRowCRUD(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)
	deleteAllRows(t, ctx)

	rowID := id.Unique()

	t.Run("creates a row", func(t *testing.T) {
		row, err := tables.CreateRow(ctx, tablesdb.CreateRowParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			RowID:      rowID,
			Data:       map[string]any{"title": "Dune", "pages": 412},
		})
		if err != nil {
			t.Fatalf("CreateRow failed: %v", err)
		}
		rowID = row.ID
		if row.TableID != tc.TableID {
			t.Errorf("TableID = %q, want %q", row.TableID, tc.TableID)
		}
		if row.Data["title"] != "Dune" {
			t.Errorf("title = %v, want Dune", row.Data["title"])
		}
	})

	t.Run("gets the row and decodes it", func(t *testing.T) {
		row, err := tables.GetRow(ctx, tablesdb.GetRowParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			RowID:      rowID,
		})
		if err != nil {
			t.Fatalf("GetRow failed: %v", err)
		}
		var b book
		if err := row.Decode(&b); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if b.ID != rowID || b.Title != "Dune" || b.Pages != 412 {
			t.Errorf("decoded %+v", b)
		}
	})

	t.Run("updates the row", func(t *testing.T) {
		row, err := tables.UpdateRow(ctx, tablesdb.UpdateRowParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			RowID:      rowID,
			Data:       map[string]any{"published": true},
		})
		if err != nil {
			t.Fatalf("UpdateRow failed: %v", err)
		}
		if row.Data["published"] != true {
			t.Errorf("published = %v, want true", row.Data["published"])
		}
		if row.Data["title"] != "Dune" {
			t.Errorf("title changed to %v", row.Data["title"])
		}
	})

	t.Run("increments a column", func(t *testing.T) {
		row, err := tables.IncrementRowColumn(ctx, tablesdb.IncrementRowColumnParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			RowID:      rowID,
			Column:     "pages",
			Value:      appwrite.Ptr(8.0),
		})
		if err != nil {
			t.Fatalf("IncrementRowColumn failed: %v", err)
		}
		if pages, _ := row.Data["pages"].(float64); pages != 420 {
			t.Errorf("pages = %v, want 420", row.Data["pages"])
		}
	})

	t.Run("deletes the row", func(t *testing.T) {
		err := tables.DeleteRow(ctx, tablesdb.DeleteRowParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			RowID:      rowID,
		})
		if err != nil {
			t.Fatalf("DeleteRow failed: %v", err)
		}
		_, err = tables.GetRow(ctx, tablesdb.GetRowParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			RowID:      rowID,
		})
		if !appwrite.IsNotFound(err) {
			t.Errorf("GetRow after delete: err = %v, want not found", err)
		}
	})
}

func TestListAndIterateRows(t *testing.T) {
	skipIfNoCredentials(t)
	ctx := context.Background()
	tc := getTestContext(t)
	deleteAllRows(t, ctx)

	rows := make([]map[string]any, 0, 7)
	for i := 1; i <= 7; i++ {
		rows = append(rows, map[string]any{
			"$id":       id.Unique(),
			"title":     "Volume",
			"pages":     i * 100,
			"published": i%2 == 0,
		})
	}
	created, err := tables.CreateRows(ctx, tablesdb.CreateRowsParams{
		DatabaseID: tc.DatabaseID,
		TableID:    tc.TableID,
		Rows:       rows,
	})
	if err != nil {
		t.Fatalf("CreateRows failed: %v", err)
	}
	if created.Total != 7 {
		t.Fatalf("created %d rows, want 7", created.Total)
	}

	t.Run("filters with queries", func(t *testing.T) {
		list, err := tables.ListRows(ctx, tablesdb.ListRowsParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			Queries:    []string{query.Equal("published", true)},
		})
		if err != nil {
			t.Fatalf("ListRows failed: %v", err)
		}
		if list.Total != 3 {
			t.Errorf("Total = %d, want 3", list.Total)
		}
	})

	t.Run("iterates across pages", func(t *testing.T) {
		seen := 0
		for row, err := range tables.IterateRows(ctx, tablesdb.ListRowsParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
		}, appwrite.PaginationOptions{PageSize: 2}) {
			if err != nil {
				t.Fatalf("IterateRows failed: %v", err)
			}
			if row.TableID != tc.TableID {
				t.Errorf("TableID = %q", row.TableID)
			}
			seen++
		}
		if seen != 7 {
			t.Errorf("iterated %d rows, want 7", seen)
		}
	})

	t.Run("respects the limit", func(t *testing.T) {
		seen := 0
		for _, err := range tables.IterateRows(ctx, tablesdb.ListRowsParams{
			DatabaseID: tc.DatabaseID,
			TableID:    tc.TableID,
			Queries:    []string{query.OrderDesc("pages")},
		}, appwrite.PaginationOptions{PageSize: 2, Limit: 3}) {
			if err != nil {
				t.Fatalf("IterateRows failed: %v", err)
			}
			seen++
		}
		if seen != 3 {
			t.Errorf("iterated %d rows, want 3", seen)
		}
	})
}
