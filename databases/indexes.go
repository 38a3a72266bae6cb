package databases

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListIndexesParams holds the parameters of ListIndexes.
type ListIndexesParams struct {
	DatabaseID   string
	CollectionID string
	Queries      []string
	Total        *bool
}

// ListIndexes returns the indexes of a collection.
func (s *Service) ListIndexes(ctx context.Context, p ListIndexesParams) (*models.IndexList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/indexes", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.IndexList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateIndexParams holds the parameters of CreateIndex.
type CreateIndexParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Type         string
	Attributes   []string
	Orders       []string
	Lengths      []int
}

// CreateIndex creates an index over Attributes. Type is one of the
// models.IndexType* constants; Orders holds models.OrderAsc or models.OrderDesc
// per attribute.
func (s *Service) CreateIndex(ctx context.Context, p CreateIndexParams) (*models.Index, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Type == "" {
		return nil, core.NewMissingParameterError("type")
	}
	if p.Attributes == nil {
		return nil, core.NewMissingParameterError("attributes")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/indexes", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{
		"key":        p.Key,
		"type":       p.Type,
		"attributes": p.Attributes,
	}
	if p.Orders != nil {
		params["orders"] = p.Orders
	}
	if p.Lengths != nil {
		params["lengths"] = p.Lengths
	}

	return core.Fetch[models.Index](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetIndexParams holds the parameters of GetIndex.
type GetIndexParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
}

// GetIndex returns an index by key.
func (s *Service) GetIndex(ctx context.Context, p GetIndexParams) (*models.Index, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/indexes/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)

	return core.Fetch[models.Index](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteIndexParams holds the parameters of DeleteIndex.
type DeleteIndexParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
}

// DeleteIndex deletes an index.
func (s *Service) DeleteIndex(ctx context.Context, p DeleteIndexParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/indexes/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
