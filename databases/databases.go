// Package databases implements the legacy Databases API: databases,
// collections, attributes, documents and indexes, plus transactions.
//
// Every method validates its required parameters before sending anything and
// returns a *core.MissingParameterError naming the first one that is empty.
//
//	db := databases.New(c)
//	doc, err := db.GetDocument(ctx, databases.GetDocumentParams{
//	    DatabaseID:   "main",
//	    CollectionID: "books",
//	    DocumentID:   "dune",
//	})
package databases

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// Service is the Databases API.
type Service struct {
	caller core.Caller
}

// New creates a Databases service on top of caller (usually a *client.Client).
func New(caller core.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams holds the parameters of List.
type ListParams struct {
	Queries []string
	Search  *string
	Total   *bool
}

// List returns the databases of the project. Queries are built with the query
// package; Search matches database names.
func (s *Service) List(ctx context.Context, p ListParams) (*models.DatabaseList, error) {
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

	return core.Fetch[models.DatabaseList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   "/databases",
		Params: params,
	})
}

// CreateParams holds the parameters of Create.
type CreateParams struct {
	DatabaseID string
	Name       string
	Enabled    *bool
}

// Create creates a database. Use id.Unique() to let the server pick the ID.
func (s *Service) Create(ctx context.Context, p CreateParams) (*models.Database, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}

	params := map[string]any{
		"databaseId": p.DatabaseID,
		"name":       p.Name,
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}

	return core.Fetch[models.Database](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    "/databases",
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetParams holds the parameters of Get.
type GetParams struct {
	DatabaseID string
}

// Get returns a database by ID.
func (s *Service) Get(ctx context.Context, p GetParams) (*models.Database, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}

	path := core.ExpandPath("/databases/{databaseId}", "databaseId", p.DatabaseID)

	return core.Fetch[models.Database](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateParams holds the parameters of Update.
type UpdateParams struct {
	DatabaseID string
	Name       string
	Enabled    *bool
}

// Update renames or enables/disables a database.
func (s *Service) Update(ctx context.Context, p UpdateParams) (*models.Database, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}

	path := core.ExpandPath("/databases/{databaseId}", "databaseId", p.DatabaseID)
	params := map[string]any{
		"name": p.Name,
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}

	return core.Fetch[models.Database](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteParams holds the parameters of Delete.
type DeleteParams struct {
	DatabaseID string
}

// Delete deletes a database and everything in it.
func (s *Service) Delete(ctx context.Context, p DeleteParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}

	path := core.ExpandPath("/databases/{databaseId}", "databaseId", p.DatabaseID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
