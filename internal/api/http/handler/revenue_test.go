package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/peyvand/peyvand_backend/internal/repo"
	"github.com/peyvand/peyvand_backend/internal/service/revenue"
	"github.com/peyvand/peyvand_backend/pkg/revsplit"
)

// stubService backs the handlers with the real calculator but no storage.
type stubService struct{}

func (stubService) CreatePolicy(ctx context.Context, in revenue.PolicyInput) (*repo.DistributionPolicy, error) {
	return nil, revenue.ErrPolicyNameTaken
}

func (stubService) UpdatePolicy(ctx context.Context, id uuid.UUID, in revenue.PolicyInput) (*repo.DistributionPolicy, error) {
	return nil, revenue.ErrPolicyNotFound
}

func (stubService) GetPolicy(ctx context.Context, id uuid.UUID) (*repo.DistributionPolicy, error) {
	return nil, revenue.ErrPolicyNotFound
}

func (stubService) ListPolicies(ctx context.Context, page, perPage int) ([]*repo.DistributionPolicy, error) {
	return nil, nil
}

func (stubService) DeletePolicy(ctx context.Context, id uuid.UUID) error {
	return revenue.ErrPolicyNotFound
}

func (stubService) SetDefaultPolicy(ctx context.Context, id uuid.UUID) error {
	return revenue.ErrPolicyNotFound
}

func (stubService) DefaultPolicy(ctx context.Context) (*repo.DistributionPolicy, error) {
	return nil, revenue.ErrNoDefaultPolicy
}

func (stubService) Preview(ctx context.Context, total float64, in revenue.PolicyInput) (*revsplit.Result, error) {
	return revsplit.Distribute(total, revsplit.Policy{
		Mode:            in.Mode,
		AdminShare:      in.AdminShare,
		TherapistShare:  in.TherapistShare,
		DoctorShare:     in.DoctorShare,
		AutoBalanceRole: in.AutoBalanceRole,
	})
}

func (stubService) PreviewWithPolicy(ctx context.Context, id uuid.UUID, total float64) (*revsplit.Result, error) {
	return nil, revenue.ErrPolicyNotFound
}

func newTestApp() *fiber.App {
	app := fiber.New()
	h := NewRevenueHandler(stubService{})

	api := app.Group("/api/v1/revenue")
	api.Post("/preview", h.Preview)
	api.Get("/policies/default", h.DefaultPolicy)
	api.Get("/policies/:id", h.GetPolicy)

	return app
}

func TestPreview_PercentageAutoBalance(t *testing.T) {
	app := newTestApp()

	body := `{
		"total": 10000,
		"mode": "percentage",
		"admin_share": 10,
		"therapist_share": 60,
		"auto_balance_role": "doctor"
	}`
	req := httptest.NewRequest("POST", "/api/v1/revenue/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data revsplit.Result `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	res := envelope.Data
	if res.PlatformFee != 300 {
		t.Errorf("platform fee = %v, want 300", res.PlatformFee)
	}
	if res.Distributable != 9700 {
		t.Errorf("distributable = %v, want 9700", res.Distributable)
	}
	if res.Admin != 970 || res.Therapist != 5820 || res.Doctor != 2910 {
		t.Errorf("shares = %v/%v/%v, want 970/5820/2910", res.Admin, res.Therapist, res.Doctor)
	}
	if res.DoctorPercent != 30 {
		t.Errorf("doctor percent = %v, want 30", res.DoctorPercent)
	}
	if res.BelowThreshold {
		t.Error("admin share 970 should not be flagged below threshold")
	}
}

func TestPreview_InvalidTotal(t *testing.T) {
	app := newTestApp()

	body := `{"total": -5, "mode": "percentage", "admin_share": 10, "therapist_share": 60, "auto_balance_role": "doctor"}`
	req := httptest.NewRequest("POST", "/api/v1/revenue/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body400 struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body400); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body400.Field != "total" {
		t.Errorf("field = %q, want total", body400.Field)
	}
}

func TestPreview_PercentageMismatch(t *testing.T) {
	app := newTestApp()

	body := `{"total": 1000, "mode": "percentage", "admin_share": 50, "therapist_share": 60, "doctor_share": 10}`
	req := httptest.NewRequest("POST", "/api/v1/revenue/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var body422 struct {
		Error string  `json:"error"`
		Sum   float64 `json:"sum"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body422); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body422.Sum != 120 {
		t.Errorf("sum = %v, want 120", body422.Sum)
	}
}

func TestGetPolicy_NotFound(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/v1/revenue/policies/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetPolicy_BadID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/v1/revenue/policies/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDefaultPolicy_None(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/v1/revenue/policies/default", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
