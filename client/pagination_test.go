package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DrewBradfordXYZ/appwrite-go/query"
	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID string
}

func itemID(i item) string { return i.ID }

// fakeList serves n items, honouring limit, cursorAfter and offset queries.
func fakeList(n int, seen *[][]string) PageFetcher[item] {
	all := make([]item, n)
	for i := range all {
		all[i] = item{ID: fmt.Sprintf("id%02d", i)}
	}
	return func(ctx context.Context, queries []string) (Page[item], error) {
		*seen = append(*seen, queries)
		limit, start := 25, 0
		for _, raw := range queries {
			q, err := query.Parse(raw)
			if err != nil {
				return Page[item]{}, err
			}
			switch q.Method {
			case "limit":
				limit = int(q.Values[0].(float64))
			case "offset":
				start = int(q.Values[0].(float64))
			case "cursorAfter":
				for i, it := range all {
					if it.ID == q.Values[0] {
						start = i + 1
					}
				}
			}
		}
		end := min(start+limit, n)
		if start > n {
			start = n
		}
		return Page[item]{Items: all[start:end], Total: n}, nil
	}
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestPaginate_Cursor(t *testing.T) {
	var seen [][]string
	got, err := CollectAll(context.Background(), fakeList(7, &seen), itemID, PaginationOptions{PageSize: 3})
	if err != nil {
		t.Fatalf("CollectAll() error = %v", err)
	}
	if diff := cmp.Diff([]string{"id00", "id01", "id02", "id03", "id04", "id05", "id06"}, ids(got)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	wantQueries := [][]string{
		{query.Limit(3)},
		{query.Limit(3), query.CursorAfter("id02")},
		{query.Limit(3), query.CursorAfter("id05")},
	}
	if diff := cmp.Diff(wantQueries, seen); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
}

func TestPaginate_Offset(t *testing.T) {
	var seen [][]string
	got, err := CollectAll(context.Background(), fakeList(5, &seen), itemID, PaginationOptions{
		PageSize: 2,
		Type:     PaginationTypeOffset,
		Queries:  []string{query.OrderAsc("name")},
	})
	if err != nil {
		t.Fatalf("CollectAll() error = %v", err)
	}
	if len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
	wantQueries := [][]string{
		{query.OrderAsc("name"), query.Limit(2)},
		{query.OrderAsc("name"), query.Limit(2), query.Offset(2)},
		{query.OrderAsc("name"), query.Limit(2), query.Offset(4)},
	}
	if diff := cmp.Diff(wantQueries, seen); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
}

func TestPaginate_StopsAtTotal(t *testing.T) {
	var seen [][]string
	got, err := CollectAll(context.Background(), fakeList(6, &seen), itemID, PaginationOptions{PageSize: 3})
	if err != nil {
		t.Fatalf("CollectAll() error = %v", err)
	}
	if len(got) != 6 {
		t.Errorf("len = %d, want 6", len(got))
	}
	if len(seen) != 2 {
		t.Errorf("fetched %d pages, want 2", len(seen))
	}
}

func TestCollectN(t *testing.T) {
	var seen [][]string
	got, err := CollectN(context.Background(), fakeList(50, &seen), itemID, 5, PaginationOptions{PageSize: 3})
	if err != nil {
		t.Fatalf("CollectN() error = %v", err)
	}
	if diff := cmp.Diff([]string{"id00", "id01", "id02", "id03", "id04"}, ids(got)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{query.Limit(2), query.CursorAfter("id02")}, seen[1]); diff != "" {
		t.Errorf("second page should only ask for the remainder (-want +got):\n%s", diff)
	}
}

func TestPaginate_Error(t *testing.T) {
	boom := errors.New("boom")
	fetcher := func(ctx context.Context, queries []string) (Page[item], error) {
		return Page[item]{}, boom
	}
	_, err := CollectAll(context.Background(), fetcher, itemID, PaginationOptions{})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestPaginate_EarlyBreak(t *testing.T) {
	var seen [][]string
	count := 0
	for _, err := range Paginate(context.Background(), fakeList(100, &seen), itemID, PaginationOptions{PageSize: 10}) {
		if err != nil {
			t.Fatal(err)
		}
		count++
		if count == 3 {
			break
		}
	}
	if len(seen) != 1 {
		t.Errorf("fetched %d pages, want 1", len(seen))
	}
}
