// Package organizations implements the Appwrite Cloud organizations API.
package organizations

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// Service is the Organizations API.
type Service struct {
	caller core.Caller
}

// New creates a Organizations service.
func New(caller core.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams holds the parameters of List.
type ListParams struct {
	Queries []string
	Search  *string
}

// List returns the organizations the caller belongs to.
func (s *Service) List(ctx context.Context, p ListParams) (*models.OrganizationList, error) {
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Search != nil {
		params["search"] = *p.Search
	}

	return core.Fetch[models.OrganizationList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   "/organizations",
		Params: params,
	})
}

// CreateParams holds the parameters of Create.
type CreateParams struct {
	OrganizationID   string
	Name             string
	BillingPlan      string
	PaymentMethodID  *string
	BillingAddressID *string
	Invites          []string
	CouponID         *string
	TaxID            *string
	Budget           *int
}

// Create creates an organization on BillingPlan. Invites holds email
// addresses to invite as members.
func (s *Service) Create(ctx context.Context, p CreateParams) (*models.Organization, error) {
	if p.OrganizationID == "" {
		return nil, core.NewMissingParameterError("organizationId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}
	if p.BillingPlan == "" {
		return nil, core.NewMissingParameterError("billingPlan")
	}

	params := map[string]any{
		"organizationId": p.OrganizationID,
		"name":           p.Name,
		"billingPlan":    p.BillingPlan,
	}
	if p.PaymentMethodID != nil {
		params["paymentMethodId"] = *p.PaymentMethodID
	}
	if p.BillingAddressID != nil {
		params["billingAddressId"] = *p.BillingAddressID
	}
	if p.Invites != nil {
		params["invites"] = p.Invites
	}
	if p.CouponID != nil {
		params["couponId"] = *p.CouponID
	}
	if p.TaxID != nil {
		params["taxId"] = *p.TaxID
	}
	if p.Budget != nil {
		params["budget"] = *p.Budget
	}

	return core.Fetch[models.Organization](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    "/organizations",
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetParams holds the parameters of Get.
type GetParams struct {
	OrganizationID string
}

// Get returns an organization by ID.
func (s *Service) Get(ctx context.Context, p GetParams) (*models.Organization, error) {
	if p.OrganizationID == "" {
		return nil, core.NewMissingParameterError("organizationId")
	}

	path := core.ExpandPath("/organizations/{organizationId}", "organizationId", p.OrganizationID)

	return core.Fetch[models.Organization](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteParams holds the parameters of Delete.
type DeleteParams struct {
	OrganizationID string
}

// Delete deletes an organization. It fails while invoices are unpaid; call
// EstimationDeleteOrganization first to list them.
func (s *Service) Delete(ctx context.Context, p DeleteParams) error {
	if p.OrganizationID == "" {
		return core.NewMissingParameterError("organizationId")
	}

	path := core.ExpandPath("/organizations/{organizationId}", "organizationId", p.OrganizationID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}

// EstimationDeleteOrganizationParams holds the parameters of EstimationDeleteOrganization.
type EstimationDeleteOrganizationParams struct {
	OrganizationID string
}

// EstimationDeleteOrganization reports what would block deleting the
// organization.
func (s *Service) EstimationDeleteOrganization(ctx context.Context, p EstimationDeleteOrganizationParams) (*models.EstimationDeleteOrganization, error) {
	if p.OrganizationID == "" {
		return nil, core.NewMissingParameterError("organizationId")
	}

	path := core.ExpandPath("/organizations/{organizationId}/estimations/delete-organization", "organizationId", p.OrganizationID)

	return core.Fetch[models.EstimationDeleteOrganization](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
	})
}
