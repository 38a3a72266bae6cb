package tablesdb

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListTablesParams holds the parameters of ListTables.
type ListTablesParams struct {
	DatabaseID string
	Queries    []string
	Search     *string
	Total      *bool
}

// ListTables lists the tables of a database.
func (s *Service) ListTables(ctx context.Context, p ListTablesParams) (*models.TableList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables", "databaseId", p.DatabaseID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Search != nil {
		params["search"] = *p.Search
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.TableList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateTableParams holds the parameters of CreateTable.
type CreateTableParams struct {
	DatabaseID  string
	TableID     string
	Name        string
	Permissions []string
	RowSecurity *bool
	Enabled     *bool
}

// CreateTable creates a table. With RowSecurity enabled, per-row permissions
// are checked in addition to table permissions.
func (s *Service) CreateTable(ctx context.Context, p CreateTableParams) (*models.Table, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables", "databaseId", p.DatabaseID)
	params := map[string]any{
		"tableId": p.TableID,
		"name":    p.Name,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.RowSecurity != nil {
		params["rowSecurity"] = *p.RowSecurity
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}

	return core.Fetch[models.Table](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetTableParams holds the parameters of GetTable.
type GetTableParams struct {
	DatabaseID string
	TableID    string
}

// GetTable returns a table with its columns and indexes.
func (s *Service) GetTable(ctx context.Context, p GetTableParams) (*models.Table, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}", "databaseId", p.DatabaseID, "tableId", p.TableID)

	return core.Fetch[models.Table](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateTableParams holds the parameters of UpdateTable.
type UpdateTableParams struct {
	DatabaseID  string
	TableID     string
	Name        string
	Permissions []string
	RowSecurity *bool
	Enabled     *bool
}

// UpdateTable updates a table's name and settings.
func (s *Service) UpdateTable(ctx context.Context, p UpdateTableParams) (*models.Table, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"name": p.Name,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.RowSecurity != nil {
		params["rowSecurity"] = *p.RowSecurity
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}

	return core.Fetch[models.Table](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteTableParams holds the parameters of DeleteTable.
type DeleteTableParams struct {
	DatabaseID string
	TableID    string
}

// DeleteTable deletes a table and all its rows.
func (s *Service) DeleteTable(ctx context.Context, p DeleteTableParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}", "databaseId", p.DatabaseID, "tableId", p.TableID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
