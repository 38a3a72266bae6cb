package sites

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListLogsParams holds the parameters of ListLogs.
type ListLogsParams struct {
	SiteID  string
	Queries []string
	Total   *bool
}

// ListLogs returns the request logs of a site.
func (s *Service) ListLogs(ctx context.Context, p ListLogsParams) (*models.ExecutionList, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}

	path := core.ExpandPath("/sites/{siteId}/logs", "siteId", p.SiteID)
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}
	if p.Total != nil {
		params["total"] = *p.Total
	}

	return core.Fetch[models.ExecutionList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// GetLogParams holds the parameters of GetLog.
type GetLogParams struct {
	SiteID string
	LogID  string
}

// GetLog returns a site request log by ID.
func (s *Service) GetLog(ctx context.Context, p GetLogParams) (*models.Execution, error) {
	if p.SiteID == "" {
		return nil, core.NewMissingParameterError("siteId")
	}
	if p.LogID == "" {
		return nil, core.NewMissingParameterError("logId")
	}

	path := core.ExpandPath("/sites/{siteId}/logs/{logId}", "siteId", p.SiteID, "logId", p.LogID)

	return core.Fetch[models.Execution](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// DeleteLogParams holds the parameters of DeleteLog.
type DeleteLogParams struct {
	SiteID string
	LogID  string
}

// DeleteLog deletes a site request log.
func (s *Service) DeleteLog(ctx context.Context, p DeleteLogParams) error {
	if p.SiteID == "" {
		return core.NewMissingParameterError("siteId")
	}
	if p.LogID == "" {
		return core.NewMissingParameterError("logId")
	}

	path := core.ExpandPath("/sites/{siteId}/logs/{logId}", "siteId", p.SiteID, "logId", p.LogID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}
