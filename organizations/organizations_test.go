package organizations

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/google/go-cmp/cmp"
)

type mockCaller struct {
	calls    int
	uploaded bool
	last     *core.Request
	body     string
}

func (m *mockCaller) Call(ctx context.Context, req *core.Request, out any) error {
	m.calls++
	m.last = req
	if out == nil {
		return nil
	}
	body := m.body
	if body == "" {
		body = "{}"
	}
	return json.Unmarshal([]byte(body), out)
}

func (m *mockCaller) ChunkedUpload(ctx context.Context, req *core.Request, upload core.Upload, out any) error {
	m.uploaded = true
	return m.Call(ctx, req, out)
}

func TestCreate(t *testing.T) {
	mock := &mockCaller{body: `{"$id":"acme","name":"Acme","billingPlan":"tier-1","billingBudget":100}`}
	budget := 100

	org, err := New(mock).Create(context.Background(), CreateParams{
		OrganizationID: "acme",
		Name:           "Acme",
		BillingPlan:    "tier-1",
		Invites:        []string{"ops@example.com"},
		Budget:         &budget,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if org.BillingBudget != 100 {
		t.Errorf("BillingBudget = %d, want 100", org.BillingBudget)
	}

	want := map[string]any{
		"organizationId": "acme",
		"name":           "Acme",
		"billingPlan":    "tier-1",
		"invites":        []string{"ops@example.com"},
		"budget":         100,
	}
	if diff := cmp.Diff(want, mock.last.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestEstimationDeleteOrganization(t *testing.T) {
	mock := &mockCaller{body: `{"unpaidInvoices":[{"$id":"inv1","amount":12.5,"currency":"USD","status":"failed"}]}`}

	est, err := New(mock).EstimationDeleteOrganization(context.Background(), EstimationDeleteOrganizationParams{OrganizationID: "acme"})
	if err != nil {
		t.Fatalf("EstimationDeleteOrganization() error = %v", err)
	}
	if len(est.UnpaidInvoices) != 1 || est.UnpaidInvoices[0].Amount != 12.5 {
		t.Errorf("estimation = %+v", est)
	}
}
