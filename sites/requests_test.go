package sites

import (
	"context"
	"net/http"
	"testing"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
)

func TestRequests(t *testing.T) {
	ctx := context.Background()
	file := new(core.InputFile)
	file.InitFromBytes([]byte("data"), "code.tar.gz")

	tests := []struct {
		name        string
		call        func(s *Service) error
		method      string
		path        string
		contentType string
		upload      bool
	}{
		{
			name: "List",
			call: func(s *Service) error {
				_, err := s.List(ctx, ListParams{})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites",
			contentType: "",
		},
		{
			name: "Create",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{SiteID: "siteId-1", Name: "name-1", Framework: "framework-1", BuildRuntime: "buildRuntime-1"})
				return err
			},
			method:      http.MethodPost,
			path:        "/sites",
			contentType: "application/json",
		},
		{
			name: "ListFrameworks",
			call: func(s *Service) error {
				_, err := s.ListFrameworks(ctx)
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/frameworks",
			contentType: "",
		},
		{
			name: "ListSpecifications",
			call: func(s *Service) error {
				_, err := s.ListSpecifications(ctx)
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/specifications",
			contentType: "",
		},
		{
			name: "Get",
			call: func(s *Service) error {
				_, err := s.Get(ctx, GetParams{SiteID: "siteId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1",
			contentType: "",
		},
		{
			name: "Update",
			call: func(s *Service) error {
				_, err := s.Update(ctx, UpdateParams{SiteID: "siteId-1", Name: "name-1", Framework: "framework-1"})
				return err
			},
			method:      http.MethodPut,
			path:        "/sites/siteId-1",
			contentType: "application/json",
		},
		{
			name: "Delete",
			call: func(s *Service) error {
				return s.Delete(ctx, DeleteParams{SiteID: "siteId-1"})
			},
			method:      http.MethodDelete,
			path:        "/sites/siteId-1",
			contentType: "application/json",
		},
		{
			name: "UpdateSiteDeployment",
			call: func(s *Service) error {
				_, err := s.UpdateSiteDeployment(ctx, UpdateSiteDeploymentParams{SiteID: "siteId-1", DeploymentID: "deploymentId-1"})
				return err
			},
			method:      http.MethodPatch,
			path:        "/sites/siteId-1/deployment",
			contentType: "application/json",
		},
		{
			name: "ListDeployments",
			call: func(s *Service) error {
				_, err := s.ListDeployments(ctx, ListDeploymentsParams{SiteID: "siteId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/deployments",
			contentType: "",
		},
		{
			name: "CreateDeployment",
			call: func(s *Service) error {
				_, err := s.CreateDeployment(ctx, CreateDeploymentParams{SiteID: "siteId-1", Code: file})
				return err
			},
			method:      http.MethodPost,
			path:        "/sites/siteId-1/deployments",
			contentType: "multipart/form-data",
			upload:      true,
		},
		{
			name: "CreateDuplicateDeployment",
			call: func(s *Service) error {
				_, err := s.CreateDuplicateDeployment(ctx, CreateDuplicateDeploymentParams{SiteID: "siteId-1", DeploymentID: "deploymentId-1"})
				return err
			},
			method:      http.MethodPost,
			path:        "/sites/siteId-1/deployments/duplicate",
			contentType: "application/json",
		},
		{
			name: "CreateTemplateDeployment",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{SiteID: "siteId-1", Repository: "repository-1", Owner: "owner-1", RootDirectory: "rootDirectory-1", Type: "type-1", Reference: "reference-1"})
				return err
			},
			method:      http.MethodPost,
			path:        "/sites/siteId-1/deployments/template",
			contentType: "application/json",
		},
		{
			name: "CreateVCSDeployment",
			call: func(s *Service) error {
				_, err := s.CreateVCSDeployment(ctx, CreateVCSDeploymentParams{SiteID: "siteId-1", Type: "type-1", Reference: "reference-1"})
				return err
			},
			method:      http.MethodPost,
			path:        "/sites/siteId-1/deployments/vcs",
			contentType: "application/json",
		},
		{
			name: "GetDeployment",
			call: func(s *Service) error {
				_, err := s.GetDeployment(ctx, GetDeploymentParams{SiteID: "siteId-1", DeploymentID: "deploymentId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/deployments/deploymentId-1",
			contentType: "",
		},
		{
			name: "DeleteDeployment",
			call: func(s *Service) error {
				return s.DeleteDeployment(ctx, DeleteDeploymentParams{SiteID: "siteId-1", DeploymentID: "deploymentId-1"})
			},
			method:      http.MethodDelete,
			path:        "/sites/siteId-1/deployments/deploymentId-1",
			contentType: "application/json",
		},
		{
			name: "GetDeploymentDownload",
			call: func(s *Service) error {
				_, err := s.GetDeploymentDownload(ctx, GetDeploymentDownloadParams{SiteID: "siteId-1", DeploymentID: "deploymentId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/deployments/deploymentId-1/download",
			contentType: "",
		},
		{
			name: "UpdateDeploymentStatus",
			call: func(s *Service) error {
				_, err := s.UpdateDeploymentStatus(ctx, UpdateDeploymentStatusParams{SiteID: "siteId-1", DeploymentID: "deploymentId-1"})
				return err
			},
			method:      http.MethodPatch,
			path:        "/sites/siteId-1/deployments/deploymentId-1/status",
			contentType: "application/json",
		},
		{
			name: "ListLogs",
			call: func(s *Service) error {
				_, err := s.ListLogs(ctx, ListLogsParams{SiteID: "siteId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/logs",
			contentType: "",
		},
		{
			name: "GetLog",
			call: func(s *Service) error {
				_, err := s.GetLog(ctx, GetLogParams{SiteID: "siteId-1", LogID: "logId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/logs/logId-1",
			contentType: "",
		},
		{
			name: "DeleteLog",
			call: func(s *Service) error {
				return s.DeleteLog(ctx, DeleteLogParams{SiteID: "siteId-1", LogID: "logId-1"})
			},
			method:      http.MethodDelete,
			path:        "/sites/siteId-1/logs/logId-1",
			contentType: "application/json",
		},
		{
			name: "ListVariables",
			call: func(s *Service) error {
				_, err := s.ListVariables(ctx, ListVariablesParams{SiteID: "siteId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/variables",
			contentType: "",
		},
		{
			name: "CreateVariable",
			call: func(s *Service) error {
				_, err := s.CreateVariable(ctx, CreateVariableParams{SiteID: "siteId-1", Key: "key-1", Value: "value-1"})
				return err
			},
			method:      http.MethodPost,
			path:        "/sites/siteId-1/variables",
			contentType: "application/json",
		},
		{
			name: "GetVariable",
			call: func(s *Service) error {
				_, err := s.GetVariable(ctx, GetVariableParams{SiteID: "siteId-1", VariableID: "variableId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/sites/siteId-1/variables/variableId-1",
			contentType: "",
		},
		{
			name: "UpdateVariable",
			call: func(s *Service) error {
				_, err := s.UpdateVariable(ctx, UpdateVariableParams{SiteID: "siteId-1", VariableID: "variableId-1", Key: "key-1"})
				return err
			},
			method:      http.MethodPut,
			path:        "/sites/siteId-1/variables/variableId-1",
			contentType: "application/json",
		},
		{
			name: "DeleteVariable",
			call: func(s *Service) error {
				return s.DeleteVariable(ctx, DeleteVariableParams{SiteID: "siteId-1", VariableID: "variableId-1"})
			},
			method:      http.MethodDelete,
			path:        "/sites/siteId-1/variables/variableId-1",
			contentType: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCaller{}
			if err := tt.call(New(mock)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mock.calls != 1 {
				t.Fatalf("calls = %d, want 1", mock.calls)
			}
			if mock.last.Method != tt.method {
				t.Errorf("method = %q, want %q", mock.last.Method, tt.method)
			}
			if mock.last.Path != tt.path {
				t.Errorf("path = %q, want %q", mock.last.Path, tt.path)
			}
			if got := mock.last.ContentType(); got != tt.contentType {
				t.Errorf("content-type = %q, want %q", got, tt.contentType)
			}
			if mock.uploaded != tt.upload {
				t.Errorf("chunked upload = %v, want %v", mock.uploaded, tt.upload)
			}
		})
	}
}

func TestMissingParameters(t *testing.T) {
	ctx := context.Background()
	file := new(core.InputFile)
	file.InitFromBytes([]byte("data"), "code.tar.gz")

	tests := []struct {
		name  string
		call  func(s *Service) error
		param string
	}{
		{
			name: "Create/siteId",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{Name: "name-1", Framework: "framework-1", BuildRuntime: "buildRuntime-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "Create/name",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{SiteID: "siteId-1", Framework: "framework-1", BuildRuntime: "buildRuntime-1"})
				return err
			},
			param: "name",
		},
		{
			name: "Create/framework",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{SiteID: "siteId-1", Name: "name-1", BuildRuntime: "buildRuntime-1"})
				return err
			},
			param: "framework",
		},
		{
			name: "Create/buildRuntime",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{SiteID: "siteId-1", Name: "name-1", Framework: "framework-1"})
				return err
			},
			param: "buildRuntime",
		},
		{
			name: "Get/siteId",
			call: func(s *Service) error {
				_, err := s.Get(ctx, GetParams{})
				return err
			},
			param: "siteId",
		},
		{
			name: "Update/siteId",
			call: func(s *Service) error {
				_, err := s.Update(ctx, UpdateParams{Name: "name-1", Framework: "framework-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "Update/name",
			call: func(s *Service) error {
				_, err := s.Update(ctx, UpdateParams{SiteID: "siteId-1", Framework: "framework-1"})
				return err
			},
			param: "name",
		},
		{
			name: "Update/framework",
			call: func(s *Service) error {
				_, err := s.Update(ctx, UpdateParams{SiteID: "siteId-1", Name: "name-1"})
				return err
			},
			param: "framework",
		},
		{
			name: "Delete/siteId",
			call: func(s *Service) error {
				return s.Delete(ctx, DeleteParams{})
			},
			param: "siteId",
		},
		{
			name: "UpdateSiteDeployment/siteId",
			call: func(s *Service) error {
				_, err := s.UpdateSiteDeployment(ctx, UpdateSiteDeploymentParams{DeploymentID: "deploymentId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "UpdateSiteDeployment/deploymentId",
			call: func(s *Service) error {
				_, err := s.UpdateSiteDeployment(ctx, UpdateSiteDeploymentParams{SiteID: "siteId-1"})
				return err
			},
			param: "deploymentId",
		},
		{
			name: "ListDeployments/siteId",
			call: func(s *Service) error {
				_, err := s.ListDeployments(ctx, ListDeploymentsParams{})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateDeployment/siteId",
			call: func(s *Service) error {
				_, err := s.CreateDeployment(ctx, CreateDeploymentParams{Code: file})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateDeployment/code",
			call: func(s *Service) error {
				_, err := s.CreateDeployment(ctx, CreateDeploymentParams{SiteID: "siteId-1"})
				return err
			},
			param: "code",
		},
		{
			name: "CreateDuplicateDeployment/siteId",
			call: func(s *Service) error {
				_, err := s.CreateDuplicateDeployment(ctx, CreateDuplicateDeploymentParams{DeploymentID: "deploymentId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateDuplicateDeployment/deploymentId",
			call: func(s *Service) error {
				_, err := s.CreateDuplicateDeployment(ctx, CreateDuplicateDeploymentParams{SiteID: "siteId-1"})
				return err
			},
			param: "deploymentId",
		},
		{
			name: "CreateTemplateDeployment/siteId",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{Repository: "repository-1", Owner: "owner-1", RootDirectory: "rootDirectory-1", Type: "type-1", Reference: "reference-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateTemplateDeployment/repository",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{SiteID: "siteId-1", Owner: "owner-1", RootDirectory: "rootDirectory-1", Type: "type-1", Reference: "reference-1"})
				return err
			},
			param: "repository",
		},
		{
			name: "CreateTemplateDeployment/owner",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{SiteID: "siteId-1", Repository: "repository-1", RootDirectory: "rootDirectory-1", Type: "type-1", Reference: "reference-1"})
				return err
			},
			param: "owner",
		},
		{
			name: "CreateTemplateDeployment/rootDirectory",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{SiteID: "siteId-1", Repository: "repository-1", Owner: "owner-1", Type: "type-1", Reference: "reference-1"})
				return err
			},
			param: "rootDirectory",
		},
		{
			name: "CreateTemplateDeployment/type",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{SiteID: "siteId-1", Repository: "repository-1", Owner: "owner-1", RootDirectory: "rootDirectory-1", Reference: "reference-1"})
				return err
			},
			param: "type",
		},
		{
			name: "CreateTemplateDeployment/reference",
			call: func(s *Service) error {
				_, err := s.CreateTemplateDeployment(ctx, CreateTemplateDeploymentParams{SiteID: "siteId-1", Repository: "repository-1", Owner: "owner-1", RootDirectory: "rootDirectory-1", Type: "type-1"})
				return err
			},
			param: "reference",
		},
		{
			name: "CreateVCSDeployment/siteId",
			call: func(s *Service) error {
				_, err := s.CreateVCSDeployment(ctx, CreateVCSDeploymentParams{Type: "type-1", Reference: "reference-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateVCSDeployment/type",
			call: func(s *Service) error {
				_, err := s.CreateVCSDeployment(ctx, CreateVCSDeploymentParams{SiteID: "siteId-1", Reference: "reference-1"})
				return err
			},
			param: "type",
		},
		{
			name: "CreateVCSDeployment/reference",
			call: func(s *Service) error {
				_, err := s.CreateVCSDeployment(ctx, CreateVCSDeploymentParams{SiteID: "siteId-1", Type: "type-1"})
				return err
			},
			param: "reference",
		},
		{
			name: "GetDeployment/siteId",
			call: func(s *Service) error {
				_, err := s.GetDeployment(ctx, GetDeploymentParams{DeploymentID: "deploymentId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "GetDeployment/deploymentId",
			call: func(s *Service) error {
				_, err := s.GetDeployment(ctx, GetDeploymentParams{SiteID: "siteId-1"})
				return err
			},
			param: "deploymentId",
		},
		{
			name: "DeleteDeployment/siteId",
			call: func(s *Service) error {
				return s.DeleteDeployment(ctx, DeleteDeploymentParams{DeploymentID: "deploymentId-1"})
			},
			param: "siteId",
		},
		{
			name: "DeleteDeployment/deploymentId",
			call: func(s *Service) error {
				return s.DeleteDeployment(ctx, DeleteDeploymentParams{SiteID: "siteId-1"})
			},
			param: "deploymentId",
		},
		{
			name: "GetDeploymentDownload/siteId",
			call: func(s *Service) error {
				_, err := s.GetDeploymentDownload(ctx, GetDeploymentDownloadParams{DeploymentID: "deploymentId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "GetDeploymentDownload/deploymentId",
			call: func(s *Service) error {
				_, err := s.GetDeploymentDownload(ctx, GetDeploymentDownloadParams{SiteID: "siteId-1"})
				return err
			},
			param: "deploymentId",
		},
		{
			name: "UpdateDeploymentStatus/siteId",
			call: func(s *Service) error {
				_, err := s.UpdateDeploymentStatus(ctx, UpdateDeploymentStatusParams{DeploymentID: "deploymentId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "UpdateDeploymentStatus/deploymentId",
			call: func(s *Service) error {
				_, err := s.UpdateDeploymentStatus(ctx, UpdateDeploymentStatusParams{SiteID: "siteId-1"})
				return err
			},
			param: "deploymentId",
		},
		{
			name: "ListLogs/siteId",
			call: func(s *Service) error {
				_, err := s.ListLogs(ctx, ListLogsParams{})
				return err
			},
			param: "siteId",
		},
		{
			name: "GetLog/siteId",
			call: func(s *Service) error {
				_, err := s.GetLog(ctx, GetLogParams{LogID: "logId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "GetLog/logId",
			call: func(s *Service) error {
				_, err := s.GetLog(ctx, GetLogParams{SiteID: "siteId-1"})
				return err
			},
			param: "logId",
		},
		{
			name: "DeleteLog/siteId",
			call: func(s *Service) error {
				return s.DeleteLog(ctx, DeleteLogParams{LogID: "logId-1"})
			},
			param: "siteId",
		},
		{
			name: "DeleteLog/logId",
			call: func(s *Service) error {
				return s.DeleteLog(ctx, DeleteLogParams{SiteID: "siteId-1"})
			},
			param: "logId",
		},
		{
			name: "ListVariables/siteId",
			call: func(s *Service) error {
				_, err := s.ListVariables(ctx, ListVariablesParams{})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateVariable/siteId",
			call: func(s *Service) error {
				_, err := s.CreateVariable(ctx, CreateVariableParams{Key: "key-1", Value: "value-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "CreateVariable/key",
			call: func(s *Service) error {
				_, err := s.CreateVariable(ctx, CreateVariableParams{SiteID: "siteId-1", Value: "value-1"})
				return err
			},
			param: "key",
		},
		{
			name: "CreateVariable/value",
			call: func(s *Service) error {
				_, err := s.CreateVariable(ctx, CreateVariableParams{SiteID: "siteId-1", Key: "key-1"})
				return err
			},
			param: "value",
		},
		{
			name: "GetVariable/siteId",
			call: func(s *Service) error {
				_, err := s.GetVariable(ctx, GetVariableParams{VariableID: "variableId-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "GetVariable/variableId",
			call: func(s *Service) error {
				_, err := s.GetVariable(ctx, GetVariableParams{SiteID: "siteId-1"})
				return err
			},
			param: "variableId",
		},
		{
			name: "UpdateVariable/siteId",
			call: func(s *Service) error {
				_, err := s.UpdateVariable(ctx, UpdateVariableParams{VariableID: "variableId-1", Key: "key-1"})
				return err
			},
			param: "siteId",
		},
		{
			name: "UpdateVariable/variableId",
			call: func(s *Service) error {
				_, err := s.UpdateVariable(ctx, UpdateVariableParams{SiteID: "siteId-1", Key: "key-1"})
				return err
			},
			param: "variableId",
		},
		{
			name: "UpdateVariable/key",
			call: func(s *Service) error {
				_, err := s.UpdateVariable(ctx, UpdateVariableParams{SiteID: "siteId-1", VariableID: "variableId-1"})
				return err
			},
			param: "key",
		},
		{
			name: "DeleteVariable/siteId",
			call: func(s *Service) error {
				return s.DeleteVariable(ctx, DeleteVariableParams{VariableID: "variableId-1"})
			},
			param: "siteId",
		},
		{
			name: "DeleteVariable/variableId",
			call: func(s *Service) error {
				return s.DeleteVariable(ctx, DeleteVariableParams{SiteID: "siteId-1"})
			},
			param: "variableId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCaller{}
			err := tt.call(New(mock))
			mp, ok := err.(*core.MissingParameterError)
			if !ok {
				t.Fatalf("error = %v, want *core.MissingParameterError", err)
			}
			if mp.Parameter != tt.param {
				t.Errorf("Parameter = %q, want %q", mp.Parameter, tt.param)
			}
			if mock.calls != 0 {
				t.Errorf("calls = %d, want no request", mock.calls)
			}
		})
	}
}
