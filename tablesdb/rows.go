package tablesdb

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListRowsParams holds the parameters of ListRows.
type ListRowsParams struct {
	DatabaseID    string
	TableID       string
	Queries       []string
	TransactionID *string
	Total         *bool
}

// ListRows returns a page of rows matching Queries.
func (s *Service) ListRows(ctx context.Context, p ListRowsParams) (*models.RowList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.RowList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateRowParams holds the parameters of CreateRow.
type CreateRowParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	Data          any
	Permissions   []string
	TransactionID *string
}

// CreateRow creates a row. Data is any value that marshals to a JSON object.
func (s *Service) CreateRow(ctx context.Context, p CreateRowParams) (*models.Row, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return nil, core.NewMissingParameterError("rowId")
	}
	if core.IsNil(p.Data) {
		return nil, core.NewMissingParameterError("data")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"rowId": p.RowID,
		"data":  p.Data,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Row](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateRowsParams holds the parameters of CreateRows.
type CreateRowsParams struct {
	DatabaseID    string
	TableID       string
	Rows          []map[string]any
	TransactionID *string
}

// CreateRows creates rows in bulk.
func (s *Service) CreateRows(ctx context.Context, p CreateRowsParams) (*models.RowList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Rows == nil {
		return nil, core.NewMissingParameterError("rows")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"rows": p.Rows,
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.RowList](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpsertRowsParams holds the parameters of UpsertRows.
type UpsertRowsParams struct {
	DatabaseID    string
	TableID       string
	Rows          []map[string]any
	TransactionID *string
}

// UpsertRows creates or replaces rows in bulk, matched by $id.
func (s *Service) UpsertRows(ctx context.Context, p UpsertRowsParams) (*models.RowList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Rows == nil {
		return nil, core.NewMissingParameterError("rows")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"rows": p.Rows,
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.RowList](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateRowsParams holds the parameters of UpdateRows.
type UpdateRowsParams struct {
	DatabaseID    string
	TableID       string
	Data          any
	Queries       []string
	TransactionID *string
}

// UpdateRows applies Data to every row matching Queries.
func (s *Service) UpdateRows(ctx context.Context, p UpdateRowsParams) (*models.RowList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{}
	if p.Data != nil {
		params["data"] = p.Data
	}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.RowList](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteRowsParams holds the parameters of DeleteRows.
type DeleteRowsParams struct {
	DatabaseID    string
	TableID       string
	Queries       []string
	TransactionID *string
}

// DeleteRows deletes every row matching Queries and returns them.
func (s *Service) DeleteRows(ctx context.Context, p DeleteRowsParams) (*models.RowList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.RowList](ctx, s.caller, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetRowParams holds the parameters of GetRow.
type GetRowParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	Queries       []string
	TransactionID *string
}

// GetRow returns a row by ID.
func (s *Service) GetRow(ctx context.Context, p GetRowParams) (*models.Row, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return nil, core.NewMissingParameterError("rowId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows/{rowId}", "databaseId", p.DatabaseID, "tableId", p.TableID, "rowId", p.RowID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Row](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// UpsertRowParams holds the parameters of UpsertRow.
type UpsertRowParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	Data          any
	Permissions   []string
	TransactionID *string
}

// UpsertRow creates the row or replaces it if it exists.
func (s *Service) UpsertRow(ctx context.Context, p UpsertRowParams) (*models.Row, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return nil, core.NewMissingParameterError("rowId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows/{rowId}", "databaseId", p.DatabaseID, "tableId", p.TableID, "rowId", p.RowID)
	params := map[string]any{}
	if p.Data != nil {
		params["data"] = p.Data
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Row](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateRowParams holds the parameters of UpdateRow.
type UpdateRowParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	Data          any
	Permissions   []string
	TransactionID *string
}

// UpdateRow updates the given columns of a row.
func (s *Service) UpdateRow(ctx context.Context, p UpdateRowParams) (*models.Row, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return nil, core.NewMissingParameterError("rowId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows/{rowId}", "databaseId", p.DatabaseID, "tableId", p.TableID, "rowId", p.RowID)
	params := map[string]any{}
	if p.Data != nil {
		params["data"] = p.Data
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Row](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteRowParams holds the parameters of DeleteRow.
type DeleteRowParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	TransactionID *string
}

// DeleteRow deletes a row.
func (s *Service) DeleteRow(ctx context.Context, p DeleteRowParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return core.NewMissingParameterError("rowId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows/{rowId}", "databaseId", p.DatabaseID, "tableId", p.TableID, "rowId", p.RowID)
	params := map[string]any{}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	}, nil)
}

// DecrementRowColumnParams holds the parameters of DecrementRowColumn.
type DecrementRowColumnParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	Column        string
	Value         *float64
	Min           *float64
	TransactionID *string
}

// DecrementRowColumn atomically decrements a numeric column.
func (s *Service) DecrementRowColumn(ctx context.Context, p DecrementRowColumnParams) (*models.Row, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return nil, core.NewMissingParameterError("rowId")
	}
	if p.Column == "" {
		return nil, core.NewMissingParameterError("column")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows/{rowId}/{column}/decrement", "databaseId", p.DatabaseID, "tableId", p.TableID, "rowId", p.RowID, "column", p.Column)
	params := map[string]any{}
	if p.Value != nil {
		params["value"] = *p.Value
	}
	if p.Min != nil {
		params["min"] = *p.Min
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Row](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// IncrementRowColumnParams holds the parameters of IncrementRowColumn.
type IncrementRowColumnParams struct {
	DatabaseID    string
	TableID       string
	RowID         string
	Column        string
	Value         *float64
	Max           *float64
	TransactionID *string
}

// IncrementRowColumn atomically increments a numeric column.
func (s *Service) IncrementRowColumn(ctx context.Context, p IncrementRowColumnParams) (*models.Row, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RowID == "" {
		return nil, core.NewMissingParameterError("rowId")
	}
	if p.Column == "" {
		return nil, core.NewMissingParameterError("column")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/rows/{rowId}/{column}/increment", "databaseId", p.DatabaseID, "tableId", p.TableID, "rowId", p.RowID, "column", p.Column)
	params := map[string]any{}
	if p.Value != nil {
		params["value"] = *p.Value
	}
	if p.Max != nil {
		params["max"] = *p.Max
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Row](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}
