package client

import (
	"context"
	"iter"
	"slices"

	"github.com/DrewBradfordXYZ/appwrite-go/query"
)

// DefaultPageSize is the page size used when PaginationOptions.PageSize is zero.
const DefaultPageSize = 100

// PaginationType selects how successive pages are requested.
type PaginationType string

const (
	// PaginationTypeCursor pages with cursorAfter on the last item's ID.
	// Stable under concurrent inserts; the default.
	PaginationTypeCursor PaginationType = "cursor"
	// PaginationTypeOffset pages with offset.
	PaginationTypeOffset PaginationType = "offset"
)

// Page is one page returned by a list endpoint.
type Page[T any] struct {
	Items []T
	Total int
}

// PageFetcher fetches one page given the queries to send.
type PageFetcher[T any] func(ctx context.Context, queries []string) (Page[T], error)

// PaginationOptions controls automatic pagination behavior.
type PaginationOptions struct {
	// PageSize is the number of items requested per page (default 100).
	PageSize int
	// Limit is the maximum number of items to fetch across all pages.
	// Zero means no limit.
	Limit int
	// Queries are sent with every page (filters, ordering, select).
	Queries []string
	// Type is the pagination strategy (default cursor).
	Type PaginationType
}

// Paginate returns an iterator over every item of a list endpoint. id returns
// the ID used as the cursor for the next page.
//
//	for doc, err := range client.Paginate(ctx, fetch, func(d models.Document) string { return d.ID }, client.PaginationOptions{}) {
//	    if err != nil { ... }
//	}
func Paginate[T any](ctx context.Context, fetcher PageFetcher[T], id func(T) string, opts PaginationOptions) iter.Seq2[T, error] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(yield func(T, error) bool) {
		var (
			zero    T
			cursor  string
			fetched int
		)

		for {
			size := pageSize
			if opts.Limit > 0 {
				size = min(size, opts.Limit-fetched)
			}

			queries := append(slices.Clone(opts.Queries), query.Limit(size))
			switch {
			case opts.Type == PaginationTypeOffset:
				if fetched > 0 {
					queries = append(queries, query.Offset(fetched))
				}
			case cursor != "":
				queries = append(queries, query.CursorAfter(cursor))
			}

			page, err := fetcher(ctx, queries)
			if err != nil {
				yield(zero, err)
				return
			}

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}
			fetched += len(page.Items)

			if len(page.Items) < size {
				return
			}
			if opts.Limit > 0 && fetched >= opts.Limit {
				return
			}
			if page.Total > 0 && fetched >= page.Total {
				return
			}
			cursor = id(page.Items[len(page.Items)-1])
		}
	}
}

// CollectAll fetches all pages and returns all items.
func CollectAll[T any](ctx context.Context, fetcher PageFetcher[T], id func(T) string, opts PaginationOptions) ([]T, error) {
	var result []T
	for item, err := range Paginate(ctx, fetcher, id, opts) {
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// CollectN fetches up to n items across pages.
func CollectN[T any](ctx context.Context, fetcher PageFetcher[T], id func(T) string, n int, opts PaginationOptions) ([]T, error) {
	opts.Limit = n
	return CollectAll(ctx, fetcher, id, opts)
}
