// Package sites implements the Sites API: static and server-rendered web
// sites, their deployments, request logs and environment variables.
package sites

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// Service is the Sites API.
type Service struct {
	caller core.Caller
}

// New creates a Sites service.
func New(caller core.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams holds the parameters of List.
type ListParams struct {
	Queries []string
	Search  *string
	Total   *bool
}

// List returns the sites of the project.
func (s *Service) List(ctx context.Context, p ListParams) (*models.SiteList, error) {
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

	return core.Fetch[models.SiteList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   "/sites",
		Params: params,
	})
}

// CreateParams holds the parameters of Create.
type CreateParams struct {
	SiteID                string
	Name                  string
	Framework             string
	BuildRuntime          string
	Enabled               *bool
	Logging               *bool
	Timeout               *int
	InstallCommand        *string
	BuildCommand          *string
	OutputDirectory       *string
	Adapter               *string
	InstallationID        *string
	FallbackFile          *string
	ProviderRepositoryID  *string
	ProviderBranch        *string
	ProviderSilentMode    *bool
	ProviderRootDirectory *string
	Specification         *string
}

// Create creates a site. Framework and BuildRuntime must be one of the values
// reported by ListFrameworks; Adapter is models.AdapterStatic or
// models.AdapterSSR. Git-backed sites set InstallationID and the Provider*
// fields.
func (s *Service) Create(ctx context.Context, p CreateParams) (*models.Site, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}
	if p.Framework == "" {
		return nil, core.NewMissingParameterError("framework")
	}
	if p.BuildRuntime == "" {
		return nil, core.NewMissingParameterError("buildRuntime")
	}

	params := map[string]any{
		"siteId":       p.SiteID,
		"name":         p.Name,
		"framework":    p.Framework,
		"buildRuntime": p.BuildRuntime,
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}
	if p.Logging != nil {
		params["logging"] = *p.Logging
	}
	if p.Timeout != nil {
		params["timeout"] = *p.Timeout
	}
	if p.InstallCommand != nil {
		params["installCommand"] = *p.InstallCommand
	}
	if p.BuildCommand != nil {
		params["buildCommand"] = *p.BuildCommand
	}
	if p.OutputDirectory != nil {
		params["outputDirectory"] = *p.OutputDirectory
	}
	if p.Adapter != nil {
		params["adapter"] = *p.Adapter
	}
	if p.InstallationID != nil {
		params["installationId"] = *p.InstallationID
	}
	if p.FallbackFile != nil {
		params["fallbackFile"] = *p.FallbackFile
	}
	if p.ProviderRepositoryID != nil {
		params["providerRepositoryId"] = *p.ProviderRepositoryID
	}
	if p.ProviderBranch != nil {
		params["providerBranch"] = *p.ProviderBranch
	}
	if p.ProviderSilentMode != nil {
		params["providerSilentMode"] = *p.ProviderSilentMode
	}
	if p.ProviderRootDirectory != nil {
		params["providerRootDirectory"] = *p.ProviderRootDirectory
	}
	if p.Specification != nil {
		params["specification"] = *p.Specification
	}

	return core.Fetch[models.Site](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    "/sites",
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// ListFrameworks returns the frameworks sites can be built with.
func (s *Service) ListFrameworks(ctx context.Context) (*models.FrameworkList, error) {
	return core.Fetch[models.FrameworkList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   "/sites/frameworks",
	})
}

// ListSpecifications returns the compute specifications available to sites.
func (s *Service) ListSpecifications(ctx context.Context) (*models.SpecificationList, error) {
	return core.Fetch[models.SpecificationList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   "/sites/specifications",
	})
}

// GetParams holds the parameters of Get.
type GetParams struct {
	SiteID string
}

// Get returns a site by ID.
func (s *Service) Get(ctx context.Context, p GetParams) (*models.Site, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}

	path := core.ExpandPath("/sites/{siteId}", "siteId", p.SiteID)

	return core.Fetch[models.Site](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateParams holds the parameters of Update.
type UpdateParams struct {
	SiteID                string
	Name                  string
	Framework             string
	BuildRuntime          *string
	Enabled               *bool
	Logging               *bool
	Timeout               *int
	InstallCommand        *string
	BuildCommand          *string
	OutputDirectory       *string
	Adapter               *string
	InstallationID        *string
	FallbackFile          *string
	ProviderRepositoryID  *string
	ProviderBranch        *string
	ProviderSilentMode    *bool
	ProviderRootDirectory *string
	Specification         *string
}

// Update replaces the configuration of a site.
func (s *Service) Update(ctx context.Context, p UpdateParams) (*models.Site, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.Name == "" {
		return nil, core.NewMissingParameterError("name")
	}
	if p.Framework == "" {
		return nil, core.NewMissingParameterError("framework")
	}

	path := core.ExpandPath("/sites/{siteId}", "siteId", p.SiteID)
	params := map[string]any{
		"name":      p.Name,
		"framework": p.Framework,
	}
	if p.BuildRuntime != nil {
		params["buildRuntime"] = *p.BuildRuntime
	}
	if p.Enabled != nil {
		params["enabled"] = *p.Enabled
	}
	if p.Logging != nil {
		params["logging"] = *p.Logging
	}
	if p.Timeout != nil {
		params["timeout"] = *p.Timeout
	}
	if p.InstallCommand != nil {
		params["installCommand"] = *p.InstallCommand
	}
	if p.BuildCommand != nil {
		params["buildCommand"] = *p.BuildCommand
	}
	if p.OutputDirectory != nil {
		params["outputDirectory"] = *p.OutputDirectory
	}
	if p.Adapter != nil {
		params["adapter"] = *p.Adapter
	}
	if p.InstallationID != nil {
		params["installationId"] = *p.InstallationID
	}
	if p.FallbackFile != nil {
		params["fallbackFile"] = *p.FallbackFile
	}
	if p.ProviderRepositoryID != nil {
		params["providerRepositoryId"] = *p.ProviderRepositoryID
	}
	if p.ProviderBranch != nil {
		params["providerBranch"] = *p.ProviderBranch
	}
	if p.ProviderSilentMode != nil {
		params["providerSilentMode"] = *p.ProviderSilentMode
	}
	if p.ProviderRootDirectory != nil {
		params["providerRootDirectory"] = *p.ProviderRootDirectory
	}
	if p.Specification != nil {
		params["specification"] = *p.Specification
	}

	return core.Fetch[models.Site](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteParams holds the parameters of Delete.
type DeleteParams struct {
	SiteID string
}

// Delete deletes a site with its deployments.
func (s *Service) Delete(ctx context.Context, p DeleteParams) error {
	if p.SiteID == "" {
		return core.NewMissingParameterError("siteId")
	}

	path := core.ExpandPath("/sites/{siteId}", "siteId", p.SiteID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}

// UpdateSiteDeploymentParams holds the parameters of UpdateSiteDeployment.
type UpdateSiteDeploymentParams struct {
	SiteID       string
	DeploymentID string
}

// UpdateSiteDeployment makes a ready deployment the live one.
func (s *Service) UpdateSiteDeployment(ctx context.Context, p UpdateSiteDeploymentParams) (*models.Site, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.DeploymentID == "" {
		return nil, core.NewMissingParameterError("deploymentId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployment", "siteId", p.SiteID)
	params := map[string]any{
		"deploymentId": p.DeploymentID,
	}

	return core.Fetch[models.Site](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}
