// Package tokens implements the Tokens API: resource tokens that grant
// access to individual storage files without a session.
package tokens

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// Service is the Tokens API.
type Service struct {
	caller core.Caller
}

// New creates a Tokens service.
func New(caller core.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams holds the parameters of List.
type ListParams struct {
	BucketID string
	FileID   string
	Queries  []string
	Total    *bool
}

// List returns the tokens issued for a storage file.
func (s *Service) List(ctx context.Context, p ListParams) (*models.ResourceTokenList, error) {
	if p.BucketID == "" {
		return nil, core.NewMissingParameterError("bucketId")
	}
	if p.FileID == "" {
		return nil, core.NewMissingParameterError("fileId")
	}

	path := core.ExpandPath("/tokens/buckets/{bucketId}/files/{fileId}", "bucketId", p.BucketID, "fileId", p.FileID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.ResourceTokenList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateFileTokenParams holds the parameters of CreateFileToken.
type CreateFileTokenParams struct {
	BucketID string
	FileID   string
	Expire   *string
}

// CreateFileToken issues a token granting access to a single file. Expire is
// an ISO 8601 date (see core.FormatDatetime); without it the token never
// expires.
func (s *Service) CreateFileToken(ctx context.Context, p CreateFileTokenParams) (*models.ResourceToken, error) {
	if p.BucketID == "" {
		return nil, core.NewMissingParameterError("bucketId")
	}
	if p.FileID == "" {
		return nil, core.NewMissingParameterError("fileId")
	}

	path := core.ExpandPath("/tokens/buckets/{bucketId}/files/{fileId}", "bucketId", p.BucketID, "fileId", p.FileID)
	params := map[string]any{}
	if p.Expire != nil {
		params["expire"] = *p.Expire
	}

	return core.Fetch[models.ResourceToken](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetParams holds the parameters of Get.
type GetParams struct {
	TokenID string
}

// Get returns a token by ID.
func (s *Service) Get(ctx context.Context, p GetParams) (*models.ResourceToken, error) {
	if p.TokenID == "" {
		return nil, core.NewMissingParameterError("tokenId")
	}

	path := core.ExpandPath("/tokens/{tokenId}", "tokenId", p.TokenID)

	return core.Fetch[models.ResourceToken](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateParams holds the parameters of Update.
type UpdateParams struct {
	TokenID string
	Expire  *string
}

// Update changes the expiry of a token. A nil Expire makes it never expire.
func (s *Service) Update(ctx context.Context, p UpdateParams) (*models.ResourceToken, error) {
	if p.TokenID == "" {
		return nil, core.NewMissingParameterError("tokenId")
	}

	path := core.ExpandPath("/tokens/{tokenId}", "tokenId", p.TokenID)
	params := map[string]any{
		"expire": p.Expire,
	}

	return core.Fetch[models.ResourceToken](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteParams holds the parameters of Delete.
type DeleteParams struct {
	TokenID string
}

// Delete revokes a token.
func (s *Service) Delete(ctx context.Context, p DeleteParams) error {
	if p.TokenID == "" {
		return core.NewMissingParameterError("tokenId")
	}

	path := core.ExpandPath("/tokens/{tokenId}", "tokenId", p.TokenID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
