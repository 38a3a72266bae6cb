package sites

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListDeploymentsParams holds the parameters of ListDeployments.
type ListDeploymentsParams struct {
	SiteID  string
	Queries []string
	Search  *string
	Total   *bool
}

// ListDeployments lists the deployments of a site.
func (s *Service) ListDeployments(ctx context.Context, p ListDeploymentsParams) (*models.DeploymentList, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments", "siteId", p.SiteID)
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

	return core.Fetch[models.DeploymentList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// CreateDeploymentParams holds the parameters of CreateDeployment.
type CreateDeploymentParams struct {
	SiteID          string
	Code            *core.InputFile
	Activate        bool
	InstallCommand  *string
	BuildCommand    *string
	OutputDirectory *string
	OnProgress      func(core.UploadProgress)
}

// CreateDeployment uploads a gzipped tarball of the site source and starts a
// build. Archives larger than the client chunk size are sent in chunks;
// OnProgress, if set, is called after each one.
//
//	code, err := core.NewInputFileFromPath("site.tar.gz")
//	if err != nil {
//	    return err
//	}
//	dep, err := sites.New(c).CreateDeployment(ctx, sites.CreateDeploymentParams{
//	    SiteID:   "blog",
//	    Code:     &code,
//	    Activate: true,
//	})
func (s *Service) CreateDeployment(ctx context.Context, p CreateDeploymentParams) (*models.Deployment, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.Code == nil {
		return nil, core.NewMissingParameterError("code")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments", "siteId", p.SiteID)
	params := map[string]any{
		"code":     p.Code,
		"activate": p.Activate,
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

	var out models.Deployment
	err := s.caller.ChunkedUpload(ctx, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.MultipartHeaders(),
		Params:  params,
	}, core.Upload{ParamName: "code", OnProgress: p.OnProgress}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDuplicateDeploymentParams holds the parameters of CreateDuplicateDeployment.
type CreateDuplicateDeploymentParams struct {
	SiteID       string
	DeploymentID string
}

// CreateDuplicateDeployment rebuilds an existing deployment.
func (s *Service) CreateDuplicateDeployment(ctx context.Context, p CreateDuplicateDeploymentParams) (*models.Deployment, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.DeploymentID == "" {
		return nil, core.NewMissingParameterError("deploymentId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/duplicate", "siteId", p.SiteID)
	params := map[string]any{
		"deploymentId": p.DeploymentID,
	}

	return core.Fetch[models.Deployment](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateTemplateDeploymentParams holds the parameters of CreateTemplateDeployment.
type CreateTemplateDeploymentParams struct {
	SiteID        string
	Repository    string
	Owner         string
	RootDirectory string
	Type          string
	Reference     string
	Activate      *bool
}

// CreateTemplateDeployment deploys a starter template from a public
// repository. Type is one of the models.DeploymentType* constants and
// Reference the branch, commit or tag it names.
func (s *Service) CreateTemplateDeployment(ctx context.Context, p CreateTemplateDeploymentParams) (*models.Deployment, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.Repository == "" {
		return nil, core.NewMissingParameterError("repository")
	}
	if p.Owner == "" {
		return nil, core.NewMissingParameterError("owner")
	}
	if p.RootDirectory == "" {
		return nil, core.NewMissingParameterError("rootDirectory")
	}
	if p.Type == "" {
		return nil, core.NewMissingParameterError("type")
	}
	if p.Reference == "" {
		return nil, core.NewMissingParameterError("reference")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/template", "siteId", p.SiteID)
	params := map[string]any{
		"repository":    p.Repository,
		"owner":         p.Owner,
		"rootDirectory": p.RootDirectory,
		"type":          p.Type,
		"reference":     p.Reference,
	}
	if p.Activate != nil {
		params["activate"] = *p.Activate
	}

	return core.Fetch[models.Deployment](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// CreateVCSDeploymentParams holds the parameters of CreateVCSDeployment.
type CreateVCSDeploymentParams struct {
	SiteID    string
	Type      string
	Reference string
	Activate  *bool
}

// CreateVCSDeployment deploys a revision of the site's connected repository.
func (s *Service) CreateVCSDeployment(ctx context.Context, p CreateVCSDeploymentParams) (*models.Deployment, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.Type == "" {
		return nil, core.NewMissingParameterError("type")
	}
	if p.Reference == "" {
		return nil, core.NewMissingParameterError("reference")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/vcs", "siteId", p.SiteID)
	params := map[string]any{
		"type":      p.Type,
		"reference": p.Reference,
	}
	if p.Activate != nil {
		params["activate"] = *p.Activate
	}

	return core.Fetch[models.Deployment](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetDeploymentParams holds the parameters of GetDeployment.
type GetDeploymentParams struct {
	SiteID       string
	DeploymentID string
}

// GetDeployment returns a deployment by ID.
func (s *Service) GetDeployment(ctx context.Context, p GetDeploymentParams) (*models.Deployment, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.DeploymentID == "" {
		return nil, core.NewMissingParameterError("deploymentId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/{deploymentId}", "siteId", p.SiteID, "deploymentId", p.DeploymentID)

	return core.Fetch[models.Deployment](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteDeploymentParams holds the parameters of DeleteDeployment.
type DeleteDeploymentParams struct {
	SiteID       string
	DeploymentID string
}

// DeleteDeployment deletes a deployment.
func (s *Service) DeleteDeployment(ctx context.Context, p DeleteDeploymentParams) error {
	if p.SiteID == "" {
		return core.NewMissingParameterError("siteId")
	}
	if p.DeploymentID == "" {
		return core.NewMissingParameterError("deploymentId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/{deploymentId}", "siteId", p.SiteID, "deploymentId", p.DeploymentID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}

// GetDeploymentDownloadParams holds the parameters of GetDeploymentDownload.
type GetDeploymentDownloadParams struct {
	SiteID       string
	DeploymentID string
	Type         *string
}

// GetDeploymentDownload returns the deployment archive. Type selects
// models.DeploymentDownloadSource (the default) or the build output.
func (s *Service) GetDeploymentDownload(ctx context.Context, p GetDeploymentDownloadParams) ([]byte, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.DeploymentID == "" {
		return nil, core.NewMissingParameterError("deploymentId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/{deploymentId}/download", "siteId", p.SiteID, "deploymentId", p.DeploymentID)
	params := map[string]any{}
	if p.Type != nil {
		params["type"] = *p.Type
	}

	var out []byte
	if err := s.caller.Call(ctx, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDeploymentStatusParams holds the parameters of UpdateDeploymentStatus.
type UpdateDeploymentStatusParams struct {
	SiteID       string
	DeploymentID string
}

// UpdateDeploymentStatus cancels an ongoing build.
func (s *Service) UpdateDeploymentStatus(ctx context.Context, p UpdateDeploymentStatusParams) (*models.Deployment, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.DeploymentID == "" {
		return nil, core.NewMissingParameterError("deploymentId")
	}

	path := core.ExpandPath("/sites/{siteId}/deployments/{deploymentId}/status", "siteId", p.SiteID, "deploymentId", p.DeploymentID)

	return core.Fetch[models.Deployment](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
	})
}
