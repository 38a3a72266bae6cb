package databases

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListDocumentsParams holds the parameters of ListDocuments.
type ListDocumentsParams struct {
	DatabaseID    string
	CollectionID  string
	Queries       []string
	TransactionID *string
	Total         *bool
}

// ListDocuments returns a page of documents matching Queries. Use
// IterateDocuments to walk every page.
func (s *Service) ListDocuments(ctx context.Context, p ListDocumentsParams) (*models.DocumentList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.DocumentList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateDocumentParams holds the parameters of CreateDocument.
type CreateDocumentParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	Data          any
	Permissions   []string
	TransactionID *string
}

// CreateDocument creates a document. Data is any value that marshals to a
// JSON object.
func (s *Service) CreateDocument(ctx context.Context, p CreateDocumentParams) (*models.Document, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return nil, core.NewMissingParameterError("documentId")
	}
	if core.IsNil(p.Data) {
		return nil, core.NewMissingParameterError("data")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{
		"documentId": p.DocumentID,
		"data":       p.Data,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Document](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateDocumentsParams holds the parameters of CreateDocuments.
type CreateDocumentsParams struct {
	DatabaseID    string
	CollectionID  string
	Documents     []map[string]any
	TransactionID *string
}

// CreateDocuments creates documents in bulk. Each entry may carry its own $id
// and $permissions.
func (s *Service) CreateDocuments(ctx context.Context, p CreateDocumentsParams) (*models.DocumentList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Documents == nil {
		return nil, core.NewMissingParameterError("documents")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{
		"documents": p.Documents,
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.DocumentList](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpsertDocumentsParams holds the parameters of UpsertDocuments.
type UpsertDocumentsParams struct {
	DatabaseID    string
	CollectionID  string
	Documents     []map[string]any
	TransactionID *string
}

// UpsertDocuments creates or replaces documents in bulk, matched by $id.
func (s *Service) UpsertDocuments(ctx context.Context, p UpsertDocumentsParams) (*models.DocumentList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.Documents == nil {
		return nil, core.NewMissingParameterError("documents")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{
		"documents": p.Documents,
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.DocumentList](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateDocumentsParams holds the parameters of UpdateDocuments.
type UpdateDocumentsParams struct {
	DatabaseID    string
	CollectionID  string
	Data          any
	Queries       []string
	TransactionID *string
}

// UpdateDocuments applies Data to every document matching Queries.
func (s *Service) UpdateDocuments(ctx context.Context, p UpdateDocumentsParams) (*models.DocumentList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
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

	return core.Fetch[models.DocumentList](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteDocumentsParams holds the parameters of DeleteDocuments.
type DeleteDocumentsParams struct {
	DatabaseID    string
	CollectionID  string
	Queries       []string
	TransactionID *string
}

// DeleteDocuments deletes every document matching Queries and returns them.
func (s *Service) DeleteDocuments(ctx context.Context, p DeleteDocumentsParams) (*models.DocumentList, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents", "databaseId", p.DatabaseID, "collectionId", p.CollectionID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.DocumentList](ctx, s.caller, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetDocumentParams holds the parameters of GetDocument.
type GetDocumentParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	Queries       []string
	TransactionID *string
}

// GetDocument returns a document. Queries may contain query.Select to limit
// the returned attributes.
func (s *Service) GetDocument(ctx context.Context, p GetDocumentParams) (*models.Document, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return nil, core.NewMissingParameterError("documentId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents/{documentId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "documentId", p.DocumentID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Document](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// UpsertDocumentParams holds the parameters of UpsertDocument.
type UpsertDocumentParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	Data          any
	Permissions   []string
	TransactionID *string
}

// UpsertDocument creates the document or replaces it if it exists.
func (s *Service) UpsertDocument(ctx context.Context, p UpsertDocumentParams) (*models.Document, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return nil, core.NewMissingParameterError("documentId")
	}
	if core.IsNil(p.Data) {
		return nil, core.NewMissingParameterError("data")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents/{documentId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "documentId", p.DocumentID)
	params := map[string]any{
		"data": p.Data,
	}
	if p.Permissions != nil {
		params["permissions"] = p.Permissions
	}
	if p.TransactionID != nil {
		params["transactionId"] = *p.TransactionID
	}

	return core.Fetch[models.Document](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// UpdateDocumentParams holds the parameters of UpdateDocument.
type UpdateDocumentParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	Data          any
	Permissions   []string
	TransactionID *string
}

// UpdateDocument updates the given attributes of a document.
func (s *Service) UpdateDocument(ctx context.Context, p UpdateDocumentParams) (*models.Document, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return nil, core.NewMissingParameterError("documentId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents/{documentId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "documentId", p.DocumentID)
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

	return core.Fetch[models.Document](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteDocumentParams holds the parameters of DeleteDocument.
type DeleteDocumentParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	TransactionID *string
}

// DeleteDocument deletes a document.
func (s *Service) DeleteDocument(ctx context.Context, p DeleteDocumentParams) error {
	if p.DatabaseID == "" {
		return core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return core.NewMissingParameterError("documentId")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents/{documentId}", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "documentId", p.DocumentID)
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

// DecrementDocumentAttributeParams holds the parameters of DecrementDocumentAttribute.
type DecrementDocumentAttributeParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	Attribute     string
	Value         *float64
	Min           *float64
	TransactionID *string
}

// DecrementDocumentAttribute atomically decrements a numeric attribute by
// Value (1 when nil), never going below Min.
func (s *Service) DecrementDocumentAttribute(ctx context.Context, p DecrementDocumentAttributeParams) (*models.Document, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return nil, core.NewMissingParameterError("documentId")
	}
	if p.Attribute == "" {
		return nil, core.NewMissingParameterError("attribute")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents/{documentId}/{attribute}/decrement", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "documentId", p.DocumentID, "attribute", p.Attribute)
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

	return core.Fetch[models.Document](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// IncrementDocumentAttributeParams holds the parameters of IncrementDocumentAttribute.
type IncrementDocumentAttributeParams struct {
	DatabaseID    string
	CollectionID  string
	DocumentID    string
	Attribute     string
	Value         *float64
	Max           *float64
	TransactionID *string
}

// IncrementDocumentAttribute atomically increments a numeric attribute by
// Value (1 when nil), never going above Max.
func (s *Service) IncrementDocumentAttribute(ctx context.Context, p IncrementDocumentAttributeParams) (*models.Document, error) {
	if p.DatabaseID == "" {
		return nil, core.NewMissingParameterError("databaseId")
	}
	if p.CollectionID == "" {
		return nil, core.NewMissingParameterError("collectionId")
	}
	if p.DocumentID == "" {
		return nil, core.NewMissingParameterError("documentId")
	}
	if p.Attribute == "" {
		return nil, core.NewMissingParameterError("attribute")
	}

	path := core.ExpandPath("/databases/{databaseId}/collections/{collectionId}/documents/{documentId}/{attribute}/increment", "databaseId", p.DatabaseID, "collectionId", p.CollectionID, "documentId", p.DocumentID, "attribute", p.Attribute)
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

	return core.Fetch[models.Document](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}
