package tablesdb

import (
	"context"
	"iter"
	"slices"

	"github.com/DrewBradfordXYZ/appwrite-go/client"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// IterateRows walks every row matching p.Queries. Paging queries are added by
// the iterator.
func (s *Service) IterateRows(ctx context.Context, p ListRowsParams, opts client.PaginationOptions) iter.Seq2[models.Row, error] {
	opts.Queries = slices.Concat(p.Queries, opts.Queries)
	fetch := func(ctx context.Context, queries []string) (client.Page[models.Row], error) {
		page := p
		page.Queries = queries
		list, err := s.ListRows(ctx, page)
		if err != nil {
			return client.Page[models.Row]{}, err
		}
		return client.Page[models.Row]{Items: list.Rows, Total: list.Total}, nil
	}
	return client.Paginate(ctx, fetch, func(r models.Row) string { return r.ID }, opts)
}

// IterateTables walks every table of a database.
func (s *Service) IterateTables(ctx context.Context, p ListTablesParams, opts client.PaginationOptions) iter.Seq2[models.Table, error] {
	opts.Queries = slices.Concat(p.Queries, opts.Queries)
	fetch := func(ctx context.Context, queries []string) (client.Page[models.Table], error) {
		page := p
		page.Queries = queries
		list, err := s.ListTables(ctx, page)
		if err != nil {
			return client.Page[models.Table]{}, err
		}
		return client.Page[models.Table]{Items: list.Tables, Total: list.Total}, nil
	}
	return client.Paginate(ctx, fetch, func(t models.Table) string { return t.ID }, opts)
}
