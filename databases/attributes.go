package databases

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListAttributesParams holds the parameters of ListAttributes.
type ListAttributesParams struct {
	DatabaseID   string
	CollectionID string
	Queries      []string
	Total        *bool
}

// ListAttributes returns the attributes of a collection.
func (s *Service) ListAttributes(ctx context.Context, p ListAttributesParams) (*models.AttributeList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.AttributeList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateBooleanAttributeParams holds the parameters of CreateBooleanAttribute.
type CreateBooleanAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *bool
	Array        *bool
}

// CreateBooleanAttribute creates a boolean attribute in the collection.
func (s *Service) CreateBooleanAttribute(ctx context.Context, p CreateBooleanAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/boolean", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateBooleanAttributeParams holds the parameters of UpdateBooleanAttribute.
type UpdateBooleanAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *bool
	NewKey       *string
}

// UpdateBooleanAttribute updates a boolean attribute. A nil Default clears the default value.
func (s *Service) UpdateBooleanAttribute(ctx context.Context, p UpdateBooleanAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/boolean/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateDatetimeAttributeParams holds the parameters of CreateDatetimeAttribute.
type CreateDatetimeAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	Array        *bool
}

// CreateDatetimeAttribute creates an attribute holding an ISO 8601 datetime.
func (s *Service) CreateDatetimeAttribute(ctx context.Context, p CreateDatetimeAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/datetime", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateDatetimeAttributeParams holds the parameters of UpdateDatetimeAttribute.
type UpdateDatetimeAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	NewKey       *string
}

// UpdateDatetimeAttribute updates a datetime attribute.
func (s *Service) UpdateDatetimeAttribute(ctx context.Context, p UpdateDatetimeAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/datetime/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateEmailAttributeParams holds the parameters of CreateEmailAttribute.
type CreateEmailAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	Array        *bool
}

// CreateEmailAttribute creates an attribute holding an email address.
func (s *Service) CreateEmailAttribute(ctx context.Context, p CreateEmailAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/email", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateEmailAttributeParams holds the parameters of UpdateEmailAttribute.
type UpdateEmailAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	NewKey       *string
}

// UpdateEmailAttribute updates an email attribute.
func (s *Service) UpdateEmailAttribute(ctx context.Context, p UpdateEmailAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/email/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateEnumAttributeParams holds the parameters of CreateEnumAttribute.
type CreateEnumAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Elements     []string
	Required     bool
	Default      *string
	Array        *bool
}

// CreateEnumAttribute creates an attribute restricted to Elements.
func (s *Service) CreateEnumAttribute(ctx context.Context, p CreateEnumAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Elements == nil {
		return nil, core.NewMissingParameterError("elements")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/enum", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateEnumAttributeParams holds the parameters of UpdateEnumAttribute.
type UpdateEnumAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Elements     []string
	Required     bool
	Default      *string
	NewKey       *string
}

// UpdateEnumAttribute updates an enum attribute.
func (s *Service) UpdateEnumAttribute(ctx context.Context, p UpdateEnumAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Elements == nil {
		return nil, core.NewMissingParameterError("elements")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/enum/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{
		"elements": p.Elements,
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateFloatAttributeParams holds the parameters of CreateFloatAttribute.
type CreateFloatAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Min          *float64
	Max          *float64
	Default      *float64
	Array        *bool
}

// CreateFloatAttribute creates a float attribute with an optional range.
func (s *Service) CreateFloatAttribute(ctx context.Context, p CreateFloatAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/float", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateFloatAttributeParams holds the parameters of UpdateFloatAttribute.
type UpdateFloatAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *float64
	Min          *float64
	Max          *float64
	NewKey       *string
}

// UpdateFloatAttribute updates a float attribute.
func (s *Service) UpdateFloatAttribute(ctx context.Context, p UpdateFloatAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/float/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateIntegerAttributeParams holds the parameters of CreateIntegerAttribute.
type CreateIntegerAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Min          *int64
	Max          *int64
	Default      *int64
	Array        *bool
}

// CreateIntegerAttribute creates an integer attribute with an optional range.
func (s *Service) CreateIntegerAttribute(ctx context.Context, p CreateIntegerAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/integer", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateIntegerAttributeParams holds the parameters of UpdateIntegerAttribute.
type UpdateIntegerAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *int64
	Min          *int64
	Max          *int64
	NewKey       *string
}

// UpdateIntegerAttribute updates an integer attribute.
func (s *Service) UpdateIntegerAttribute(ctx context.Context, p UpdateIntegerAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/integer/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateIPAttributeParams holds the parameters of CreateIPAttribute.
type CreateIPAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	Array        *bool
}

// CreateIPAttribute creates an attribute holding an IPv4 or IPv6 address.
func (s *Service) CreateIPAttribute(ctx context.Context, p CreateIPAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/ip", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateIPAttributeParams holds the parameters of UpdateIPAttribute.
type UpdateIPAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	NewKey       *string
}

// UpdateIPAttribute updates an IP attribute.
func (s *Service) UpdateIPAttribute(ctx context.Context, p UpdateIPAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/ip/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateRelationshipAttributeParams holds the parameters of CreateRelationshipAttribute.
type CreateRelationshipAttributeParams struct {
	DatabaseID          string
	CollectionID        string
	RelatedCollectionID string
	Type                string
	TwoWay              *bool
	Key                 *string
	TwoWayKey           *string
	OnDelete            *string
}

// CreateRelationshipAttribute links the collection to another one.
//
// Type is one of the models.Relation* constants and OnDelete one of the
// models.RelationMutate* constants.
func (s *Service) CreateRelationshipAttribute(ctx context.Context, p CreateRelationshipAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.RelatedCollectionID == "" {
		return nil, core.NewMissingParameterError("relatedCollectionId")
	}
	if p.Type == "" {
		return nil, core.NewMissingParameterError("type")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/relationship", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{
		"relatedCollectionId": p.RelatedCollectionID,
		"type":                p.Type,
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateRelationshipAttributeParams holds the parameters of UpdateRelationshipAttribute.
type UpdateRelationshipAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	OnDelete     *string
	NewKey       *string
}

// UpdateRelationshipAttribute updates the on-delete behaviour or key of a relationship.
func (s *Service) UpdateRelationshipAttribute(ctx context.Context, p UpdateRelationshipAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/{key}/relationship", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{}
	if p.OnDelete != nil {
		params["onDelete"] = *p.OnDelete
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateStringAttributeParams holds the parameters of CreateStringAttribute.
type CreateStringAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Size         int
	Required     bool
	Default      *string
	Array        *bool
	Encrypt      *bool
}

// CreateStringAttribute creates a string attribute of at most Size characters.
// Encrypted values are stored encrypted at rest and cannot be queried.
func (s *Service) CreateStringAttribute(ctx context.Context, p CreateStringAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Size == 0 {
		return nil, core.NewMissingParameterError("size")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/string", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateStringAttributeParams holds the parameters of UpdateStringAttribute.
type UpdateStringAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	Size         *int
	NewKey       *string
}

// UpdateStringAttribute updates a string attribute.
func (s *Service) UpdateStringAttribute(ctx context.Context, p UpdateStringAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/string/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateURLAttributeParams holds the parameters of CreateURLAttribute.
type CreateURLAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	Array        *bool
}

// CreateURLAttribute creates an attribute holding a URL.
func (s *Service) CreateURLAttribute(ctx context.Context, p CreateURLAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/url", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateURLAttributeParams holds the parameters of UpdateURLAttribute.
type UpdateURLAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
	Required     bool
	Default      *string
	NewKey       *string
}

// UpdateURLAttribute updates a URL attribute.
func (s *Service) UpdateURLAttribute(ctx context.Context, p UpdateURLAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/url/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)
	params := map[string]any{
		"required": p.Required,
		"default":  p.Default,
	}
	if p.NewKey != nil {
		params["newKey"] = *p.NewKey
	}

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetAttributeParams holds the parameters of GetAttribute.
type GetAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
}

// GetAttribute returns an attribute by key.
func (s *Service) GetAttribute(ctx context.Context, p GetAttributeParams) (*models.Attribute, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)

	return core.Fetch[models.Attribute](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteAttributeParams holds the parameters of DeleteAttribute.
type DeleteAttributeParams struct {
	DatabaseID   string
	CollectionID string
	Key          string
}

// DeleteAttribute deletes an attribute.
func (s *Service) DeleteAttribute(ctx context.Context, p DeleteAttributeParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return core.NewMissingParameterError("collectionId")
	}
	if p.Key == "" {
		return core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/attributes/{key}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "key", p.Key)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
