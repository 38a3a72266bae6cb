package databases

import (
	"context"
	"iter"
	"slices"

	"github.com/DrewBradfordXYZ/appwrite-go/client"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// IterateDocuments walks every document matching p.Queries, fetching pages on
// demand. The limit, cursor and offset queries are managed by the iterator and
// must not be included in p.Queries.
//
//	for doc, err := range db.IterateDocuments(ctx, params, client.PaginationOptions{PageSize: 50}) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(doc.ID)
//	}
func (s *Service) IterateDocuments(ctx context.Context, p ListDocumentsParams, opts client.PaginationOptions) iter.Seq2[models.Document, error] {
	opts.Queries = slices.Concat(p.Queries, opts.Queries)
	fetch := func(ctx context.Context, queries []string) (client.Page[models.Document], error) {
		page := p
		page.Queries = queries
		list, err := s.ListDocuments(ctx, page)
		if err != nil {
			return client.Page[models.Document]{}, err
		}
		return client.Page[models.Document]{Items: list.Documents, Total: list.Total}, nil
	}
	return client.Paginate(ctx, fetch, documentID, opts)
}

// IterateCollections walks every collection of a database.
func (s *Service) IterateCollections(ctx context.Context, p ListCollectionsParams, opts client.PaginationOptions) iter.Seq2[models.Collection, error] {
	opts.Queries = slices.Concat(p.Queries, opts.Queries)
	fetch := func(ctx context.Context, queries []string) (client.Page[models.Collection], error) {
		page := p
		page.Queries = queries
		list, err := s.ListCollections(ctx, page)
		if err != nil {
			return client.Page[models.Collection]{}, err
		}
		return client.Page[models.Collection]{Items: list.Collections, Total: list.Total}, nil
	}
	return client.Paginate(ctx, fetch, func(c models.Collection) string { return c.ID }, opts)
}

func documentID(d models.Document) string {
	return d.ID
}
