package tablesdb

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListIndexesParams holds the parameters of ListIndexes.
type ListIndexesParams struct {
	DatabaseID string
	TableID    string
	Queries    []string
	Total      *bool
}

// ListIndexes lists the indexes of a table.
func (s *Service) ListIndexes(ctx context.Context, p ListIndexesParams) (*models.ColumnIndexList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/indexes", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.ColumnIndexList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateIndexParams holds the parameters of CreateIndex.
type CreateIndexParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Type       string
	Columns    []string
	Orders     []string
	Lengths    []int
}

// CreateIndex creates an index over Columns. Type is one of the
// models.IndexType* constants.
func (s *Service) CreateIndex(ctx context.Context, p CreateIndexParams) (*models.ColumnIndex, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Type == "" {
		return nil, core.NewMissingParameterError("type")
	}
	if p.Columns == nil {
		return nil, core.NewMissingParameterError("columns")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/indexes", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":     p.Key,
		"type":    p.Type,
		"columns": p.Columns,
	}
	if p.Orders != nil {
		params["orders"] = p.Orders
	}
	if p.Lengths != nil {
		params["lengths"] = p.Lengths
	}

	return core.Fetch[models.ColumnIndex](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetIndexParams holds the parameters of GetIndex.
type GetIndexParams struct {
	DatabaseID string
	TableID    string
	Key        string
}

// GetIndex returns an index by key.
func (s *Service) GetIndex(ctx context.Context, p GetIndexParams) (*models.ColumnIndex, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/indexes/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)

	return core.Fetch[models.ColumnIndex](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteIndexParams holds the parameters of DeleteIndex.
type DeleteIndexParams struct {
	DatabaseID string
	TableID    string
	Key        string
}

// DeleteIndex deletes an index.
func (s *Service) DeleteIndex(ctx context.Context, p DeleteIndexParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/indexes/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
