package sites

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListVariablesParams holds the parameters of ListVariables.
type ListVariablesParams struct {
	SiteID string
}

// ListVariables lists the environment variables of a site.
func (s *Service) ListVariables(ctx context.Context, p ListVariablesParams) (*models.VariableList, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}

	path := core.ExpandPath("/sites/{siteId}/variables", "siteId", p.SiteID)

	return core.Fetch[models.VariableList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// CreateVariableParams holds the parameters of CreateVariable.
type CreateVariableParams struct {
	SiteID string
	Key    string
	Value  string
	Secret *bool
}

// CreateVariable adds an environment variable to the site. Secret values can
// be read by the site but not by API calls. Changes apply on the next
// deployment.
func (s *Service) CreateVariable(ctx context.Context, p CreateVariableParams) (*models.Variable, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}
	if p.Value == "" {
		return nil, core.NewMissingParameterError("value")
	}

	path := core.ExpandPath("/sites/{siteId}/variables", "siteId", p.SiteID)
	params := map[string]any{
		"key":   p.Key,
		"value": p.Value,
	}
	if p.Secret != nil {
		params["secret"] = *p.Secret
	}

	return core.Fetch[models.Variable](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetVariableParams holds the parameters of GetVariable.
type GetVariableParams struct {
	SiteID     string
	VariableID string
}

// GetVariable returns a site variable by ID.
func (s *Service) GetVariable(ctx context.Context, p GetVariableParams) (*models.Variable, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.VariableID == "" {
		return nil, core.NewMissingParameterError("variableId")
	}

	path := core.ExpandPath("/sites/{siteId}/variables/{variableId}", "siteId", p.SiteID, "variableId", p.VariableID)

	return core.Fetch[models.Variable](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateVariableParams holds the parameters of UpdateVariable.
type UpdateVariableParams struct {
	SiteID     string
	VariableID string
	Key        string
	Value      *string
	Secret     *bool
}

// UpdateVariable updates a site variable.
func (s *Service) UpdateVariable(ctx context.Context, p UpdateVariableParams) (*models.Variable, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.VariableID == "" {
		return nil, core.NewMissingParameterError("variableId")
	}
	if p.Key == "" {
		return nil, core.NewMissingParameterError("key")
	}

	path := core.ExpandPath("/sites/{siteId}/variables/{variableId}", "siteId", p.SiteID, "variableId", p.VariableID)
	params := map[string]any{
		"key": p.Key,
	}
	if p.Value != nil {
		params["value"] = *p.Value
	}
	if p.Secret != nil {
		params["secret"] = *p.Secret
	}

	return core.Fetch[models.Variable](ctx, s.caller, &core.Request{
		Method:  http.MethodPut,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteVariableParams holds the parameters of DeleteVariable.
type DeleteVariableParams struct {
	SiteID     string
	VariableID string
}

// DeleteVariable deletes a site variable.
func (s *Service) DeleteVariable(ctx context.Context, p DeleteVariableParams) error {
	if p.SiteID == "" {
		return core.NewMissingParameterError("siteId")
	}
	if p.VariableID == "" {
		return core.NewMissingParameterError("variableId")
	}

	path := core.ExpandPath("/sites/{siteId}/variables/{variableId}", "siteId", p.SiteID, "variableId", p.VariableID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
