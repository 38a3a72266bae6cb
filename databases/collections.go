package databases

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListCollectionsParams holds the parameters of ListCollections.
type ListCollectionsParams struct {
	DatabaseID string
	Queries    []string
	Search     *string
	Total      *bool
}

// ListCollections returns the collections of a database.
func (s *Service) ListCollections(ctx context.Context, p ListCollectionsParams) (*models.CollectionList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections", "databaseId", p.DatabaseID)
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

	return core.Fetch[models.CollectionList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateCollectionParams holds the parameters of CreateCollection.
type CreateCollectionParams struct {
	DatabaseID       string
	CollectionID     string
	Name             string
	Permissions      []string
	DocumentSecurity *bool
	Enabled          *bool
}

// CreateCollection creates a collection. Permissions are built with the
// permission and role packages. With DocumentSecurity enabled, per-document
// permissions are checked in addition to collection permissions.
func (s *Service) CreateCollection(ctx context.Context, p CreateCollectionParams) (*models.Collection, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections", "databaseId", p.DatabaseID)
	params := map[string]any{
		"collectionId": p.CollectionID,
		"name":         p.Name,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.DocumentSecurity != nil {
		params["documentSecurity"] = *p.DocumentSecurity
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}

	return core.Fetch[models.Collection](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetCollectionParams holds the parameters of GetCollection.
type GetCollectionParams struct {
	DatabaseID   string
	CollectionID string
}

// GetCollection returns a collection with its attributes and indexes.
func (s *Service) GetCollection(ctx context.Context, p GetCollectionParams) (*models.Collection, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)

	return core.Fetch[models.Collection](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateCollectionParams holds the parameters of UpdateCollection.
type UpdateCollectionParams struct {
	DatabaseID       string
	CollectionID     string
	Name             string
	Permissions      []string
	DocumentSecurity *bool
	Enabled          *bool
}

// UpdateCollection updates a collection.
func (s *Service) UpdateCollection(ctx context.Context, p UpdateCollectionParams) (*models.Collection, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{
		"name": p.Name,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.DocumentSecurity != nil {
		params["documentSecurity"] = *p.DocumentSecurity
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}

	return core.Fetch[models.Collection](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteCollectionParams holds the parameters of DeleteCollection.
type DeleteCollectionParams struct {
	DatabaseID   string
	CollectionID string
}

// DeleteCollection deletes a collection and its documents.
func (s *Service) DeleteCollection(ctx context.Context, p DeleteCollectionParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
