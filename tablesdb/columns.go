package tablesdb

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListColumnsParams holds the parameters of ListColumns.
type ListColumnsParams struct {
	DatabaseID string
	TableID    string
	Queries    []string
	Total      *bool
}

// ListColumns lists the columns of a table.
func (s *Service) ListColumns(ctx context.Context, p ListColumnsParams) (*models.ColumnList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.ColumnList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateBooleanColumnParams holds the parameters of CreateBooleanColumn.
type CreateBooleanColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *bool
	Array      *bool
}

// CreateBooleanColumn creates a boolean column in the table.
func (s *Service) CreateBooleanColumn(ctx context.Context, p CreateBooleanColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/boolean", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateBooleanColumnParams holds the parameters of UpdateBooleanColumn.
type UpdateBooleanColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *bool
	NewKey     *string
}

// UpdateBooleanColumn updates a boolean column. A nil Default clears the default value.
func (s *Service) UpdateBooleanColumn(ctx context.Context, p UpdateBooleanColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/boolean/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateDatetimeColumnParams holds the parameters of CreateDatetimeColumn.
type CreateDatetimeColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	Array      *bool
}

// CreateDatetimeColumn creates a column holding an ISO 8601 datetime.
func (s *Service) CreateDatetimeColumn(ctx context.Context, p CreateDatetimeColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/datetime", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateDatetimeColumnParams holds the parameters of UpdateDatetimeColumn.
type UpdateDatetimeColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	NewKey     *string
}

// UpdateDatetimeColumn updates a datetime column.
func (s *Service) UpdateDatetimeColumn(ctx context.Context, p UpdateDatetimeColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/datetime/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateEmailColumnParams holds the parameters of CreateEmailColumn.
type CreateEmailColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	Array      *bool
}

// CreateEmailColumn creates a column holding an email address.
func (s *Service) CreateEmailColumn(ctx context.Context, p CreateEmailColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/email", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateEmailColumnParams holds the parameters of UpdateEmailColumn.
type UpdateEmailColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	NewKey     *string
}

// UpdateEmailColumn updates an email column.
func (s *Service) UpdateEmailColumn(ctx context.Context, p UpdateEmailColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/email/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateEnumColumnParams holds the parameters of CreateEnumColumn.
type CreateEnumColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Elements   []string
	Required   bool
	Default    *string
	Array      *bool
}

// CreateEnumColumn creates a column restricted to Elements.
func (s *Service) CreateEnumColumn(ctx context.Context, p CreateEnumColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Elements == nil {
		return nil, core.NewMissingParameterError("elements")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/enum", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"elements": p.Elements,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateEnumColumnParams holds the parameters of UpdateEnumColumn.
type UpdateEnumColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Elements   []string
	Required   bool
	Default    *string
	NewKey     *string
}

// UpdateEnumColumn updates an enum column.
func (s *Service) UpdateEnumColumn(ctx context.Context, p UpdateEnumColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Elements == nil {
		return nil, core.NewMissingParameterError("elements")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/enum/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"elements": p.Elements,
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateFloatColumnParams holds the parameters of CreateFloatColumn.
type CreateFloatColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Min        *float64
	Max        *float64
	Default    *float64
	Array      *bool
}

// CreateFloatColumn creates a float column with an optional range.
func (s *Service) CreateFloatColumn(ctx context.Context, p CreateFloatColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/float", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Min != nil {
		params["min"] = *p.Min
	}
	if p.Max != nil {
		params["max"] = *p.Max
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateFloatColumnParams holds the parameters of UpdateFloatColumn.
type UpdateFloatColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *float64
	Min        *float64
	Max        *float64
	NewKey     *string
}

// UpdateFloatColumn updates a float column.
func (s *Service) UpdateFloatColumn(ctx context.Context, p UpdateFloatColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/float/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.Min != nil {
		params["min"] = *p.Min
	}
	if p.Max != nil {
		params["max"] = *p.Max
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateIntegerColumnParams holds the parameters of CreateIntegerColumn.
type CreateIntegerColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Min        *int64
	Max        *int64
	Default    *int64
	Array      *bool
}

// CreateIntegerColumn creates an integer column with an optional range.
func (s *Service) CreateIntegerColumn(ctx context.Context, p CreateIntegerColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/integer", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Min != nil {
		params["min"] = *p.Min
	}
	if p.Max != nil {
		params["max"] = *p.Max
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateIntegerColumnParams holds the parameters of UpdateIntegerColumn.
type UpdateIntegerColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *int64
	Min        *int64
	Max        *int64
	NewKey     *string
}

// UpdateIntegerColumn updates an integer column.
func (s *Service) UpdateIntegerColumn(ctx context.Context, p UpdateIntegerColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/integer/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.Min != nil {
		params["min"] = *p.Min
	}
	if p.Max != nil {
		params["max"] = *p.Max
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateIPColumnParams holds the parameters of CreateIPColumn.
type CreateIPColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	Array      *bool
}

// CreateIPColumn creates a column holding an IPv4 or IPv6 address.
func (s *Service) CreateIPColumn(ctx context.Context, p CreateIPColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/ip", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateIPColumnParams holds the parameters of UpdateIPColumn.
type UpdateIPColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	NewKey     *string
}

// UpdateIPColumn updates an IP column.
func (s *Service) UpdateIPColumn(ctx context.Context, p UpdateIPColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/ip/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateRelationshipColumnParams holds the parameters of CreateRelationshipColumn.
type CreateRelationshipColumnParams struct {
	DatabaseID     string
	TableID        string
	RelatedTableID string
	Type           string
	TwoWay         *bool
	Key            *string
	TwoWayKey      *string
	OnDelete       *string
}

// CreateRelationshipColumn links the table to another one.
//
// Type is one of the models.Relation* constants and OnDelete one of the
// models.RelationMutate* constants.
func (s *Service) CreateRelationshipColumn(ctx context.Context, p CreateRelationshipColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.RelatedTableID == "" {
		return nil, core.NewMissingParameterError("relatedTableId")
	}
	if p.Type == "" {
		return nil, core.NewMissingParameterError("type")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/relationship", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"relatedTableId": p.RelatedTableID,
		"type":           p.Type,
	}
	if p.TwoWay != nil {
		params["twoWay"] = *p.TwoWay
	}
	if p.Key != nil {
		params["key"] = *p.Key
	}
	if p.TwoWayKey != nil {
		params["twoWayKey"] = *p.TwoWayKey
	}
	if p.OnDelete != nil {
		params["onDelete"] = *p.OnDelete
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateRelationshipColumnParams holds the parameters of UpdateRelationshipColumn.
type UpdateRelationshipColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	OnDelete   *string
	NewKey     *string
}

// UpdateRelationshipColumn updates the on-delete behaviour or key of a relationship.
func (s *Service) UpdateRelationshipColumn(ctx context.Context, p UpdateRelationshipColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/{key}/relationship", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{}
	if p.OnDelete != nil {
		params["onDelete"] = *p.OnDelete
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateStringColumnParams holds the parameters of CreateStringColumn.
type CreateStringColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Size       int
	Required   bool
	Default    *string
	Array      *bool
	Encrypt    *bool
}

// CreateStringColumn creates a string column of at most Size characters.
// Encrypted values are stored encrypted at rest and cannot be queried.
func (s *Service) CreateStringColumn(ctx context.Context, p CreateStringColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Size == 0 {
		return nil, core.NewMissingParameterError("size")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/string", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"size":     p.Size,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}
	if p.Encrypt != nil {
		params["encrypt"] = *p.Encrypt
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateStringColumnParams holds the parameters of UpdateStringColumn.
type UpdateStringColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	Size       *int
	NewKey     *string
}

// UpdateStringColumn updates a string column.
func (s *Service) UpdateStringColumn(ctx context.Context, p UpdateStringColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/string/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.Size != nil {
		params["size"] = *p.Size
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateURLColumnParams holds the parameters of CreateURLColumn.
type CreateURLColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	Array      *bool
}

// CreateURLColumn creates a column holding a URL.
func (s *Service) CreateURLColumn(ctx context.Context, p CreateURLColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/url", "databaseId", p.DatabaseID, "tableId", p.TableID)
	params := map[string]any{
		"key":      p.Key,
		"required": p.Required,
	}
	if p.Default != nil {
		params["default"] = *p.Default
	}
	if p.Array != nil {
		params["array"] = *p.Array
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateURLColumnParams holds the parameters of UpdateURLColumn.
type UpdateURLColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
	Required   bool
	Default    *string
	NewKey     *string
}

// UpdateURLColumn updates a URL column.
func (s *Service) UpdateURLColumn(ctx context.Context, p UpdateURLColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/url/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetColumnParams holds the parameters of GetColumn.
type GetColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
}

// GetColumn returns a column by key.
func (s *Service) GetColumn(ctx context.Context, p GetColumnParams) (*models.Column, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return nil, core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)

	return core.Fetch[models.Column](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteColumnParams holds the parameters of DeleteColumn.
type DeleteColumnParams struct {
	DatabaseID string
	TableID    string
	Key        string
}

// DeleteColumn deletes a column.
func (s *Service) DeleteColumn(ctx context.Context, p DeleteColumnParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.TableID == "" {
		return core.NewMissingParameterError("tableId")
	}
	if p.Key == "" {
		return core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/tablesdb/{databaseId}/tables/{tableId}/columns/{key}", "databaseId", p.DatabaseID, "tableId", p.TableID, "key", p.Key)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
