package organizations

import (
	"context"
	"net/http"
	"testing"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
)

func TestRequests(t *testing.T) {
	ctx := context.Background()

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
			path:        "/organizations",
			contentType: "",
		},
		{
			name: "Create",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{OrganizationID: "organizationId-1", Name: "name-1", BillingPlan: "billingPlan-1"})
				return err
			},
			method:      http.MethodPost,
			path:        "/organizations",
			contentType: "application/json",
		},
		{
			name: "Get",
			call: func(s *Service) error {
				_, err := s.Get(ctx, GetParams{OrganizationID: "organizationId-1"})
				return err
			},
			method:      http.MethodGet,
			path:        "/organizations/organizationId-1",
			contentType: "",
		},
		{
			name: "Delete",
			call: func(s *Service) error {
				return s.Delete(ctx, DeleteParams{OrganizationID: "organizationId-1"})
			},
			method:      http.MethodDelete,
			path:        "/organizations/organizationId-1",
			contentType: "application/json",
		},
		{
			name: "EstimationDeleteOrganization",
			call: func(s *Service) error {
				_, err := s.EstimationDeleteOrganization(ctx, EstimationDeleteOrganizationParams{OrganizationID: "organizationId-1"})
				return err
			},
			method:      http.MethodPatch,
			path:        "/organizations/organizationId-1/estimations/delete-organization",
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

	tests := []struct {
		name  string
		call  func(s *Service) error
		param string
	}{
		{
			name: "Create/organizationId",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{Name: "name-1", BillingPlan: "billingPlan-1"})
				return err
			},
			param: "organizationId",
		},
		{
			name: "Create/name",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{OrganizationID: "organizationId-1", BillingPlan: "billingPlan-1"})
				return err
			},
			param: "name",
		},
		{
			name: "Create/billingPlan",
			call: func(s *Service) error {
				_, err := s.Create(ctx, CreateParams{OrganizationID: "organizationId-1", Name: "name-1"})
				return err
			},
			param: "billingPlan",
		},
		{
			name: "Get/organizationId",
			call: func(s *Service) error {
				_, err := s.Get(ctx, GetParams{})
				return err
			},
			param: "organizationId",
		},
		{
			name: "Delete/organizationId",
			call: func(s *Service) error {
				return s.Delete(ctx, DeleteParams{})
			},
			param: "organizationId",
		},
		{
			name: "EstimationDeleteOrganization/organizationId",
			call: func(s *Service) error {
				_, err := s.EstimationDeleteOrganization(ctx, EstimationDeleteOrganizationParams{})
				return err
			},
			param: "organizationId",
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
