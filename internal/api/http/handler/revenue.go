package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/peyvand/peyvand_backend/internal/service/revenue"
	"github.com/peyvand/peyvand_backend/pkg/revsplit"
)

type RevenueHandler struct {
	svc revenue.Service
}

func NewRevenueHandler(svc revenue.Service) *RevenueHandler {
	return &RevenueHandler{svc: svc}
}

// policyBody is the wire form of a distribution policy. Share fields are
// pointers so an omitted share is distinguishable from an explicit zero.
type policyBody struct {
	Name            string   `json:"name"`
	Mode            string   `json:"mode"`
	AdminShare      *float64 `json:"admin_share"`
	TherapistShare  *float64 `json:"therapist_share"`
	DoctorShare     *float64 `json:"doctor_share"`
	AutoBalanceRole string   `json:"auto_balance_role"`
	IsDefault       bool     `json:"is_default"`
}

func (b policyBody) toInput() revenue.PolicyInput {
	return revenue.PolicyInput{
		Name:            b.Name,
		Mode:            revsplit.Mode(b.Mode),
		AdminShare:      b.AdminShare,
		TherapistShare:  b.TherapistShare,
		DoctorShare:     b.DoctorShare,
		AutoBalanceRole: revsplit.Role(b.AutoBalanceRole),
		IsDefault:       b.IsDefault,
	}
}

// mapRevenueError translates service and calculator errors into responses
// with enough structure for the UI to render an inline correction message.
func mapRevenueError(c fiber.Ctx, err error) error {
	var invalid *revsplit.InvalidInputError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": invalid.Error(),
			"field": invalid.Field,
		})
	}
	var incomplete *revsplit.IncompleteInputError
	if errors.As(err, &incomplete) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": incomplete.Error(),
			"field": incomplete.Field,
		})
	}
	var mismatch *revsplit.PercentageMismatchError
	if errors.As(err, &mismatch) {
		return unprocessable(c, fiber.Map{
			"error": mismatch.Error(),
			"sum":   mismatch.Sum,
		})
	}

	switch {
	case errors.Is(err, revenue.ErrPolicyNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, revenue.ErrNoDefaultPolicy):
		return notFound(c, err.Error())
	case errors.Is(err, revenue.ErrPolicyInactive):
		return badRequest(c, err.Error())
	case errors.Is(err, revenue.ErrPolicyNameTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Preview
// ---------------------------------------------------------------------------

// POST /revenue/preview
// Stateless calculation for live forms: recomputed on every call.
func (h *RevenueHandler) Preview(c fiber.Ctx) error {
	var body struct {
		Total float64 `json:"total"`
		policyBody
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Preview(c.Context(), body.Total, body.toInput())
	if err != nil {
		return mapRevenueError(c, err)
	}
	return ok(c, res)
}

// GET /revenue/policies/:id/preview?total=...
func (h *RevenueHandler) PreviewWithPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid policy id")
	}
	total, err := strconv.ParseFloat(c.Query("total"), 64)
	if err != nil {
		return badRequest(c, "total must be a number")
	}

	res, err := h.svc.PreviewWithPolicy(c.Context(), id, total)
	if err != nil {
		return mapRevenueError(c, err)
	}
	return ok(c, res)
}

// ---------------------------------------------------------------------------
// Policy store
// ---------------------------------------------------------------------------

// POST /revenue/policies
func (h *RevenueHandler) CreatePolicy(c fiber.Ctx) error {
	var body policyBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	p, err := h.svc.CreatePolicy(c.Context(), body.toInput())
	if err != nil {
		return mapRevenueError(c, err)
	}
	return created(c, p)
}

// PUT /revenue/policies/:id
func (h *RevenueHandler) UpdatePolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid policy id")
	}

	var body policyBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	p, err := h.svc.UpdatePolicy(c.Context(), id, body.toInput())
	if err != nil {
		return mapRevenueError(c, err)
	}
	return ok(c, p)
}

// GET /revenue/policies
func (h *RevenueHandler) ListPolicies(c fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))

	policies, err := h.svc.ListPolicies(c.Context(), page, perPage)
	if err != nil {
		return mapRevenueError(c, err)
	}
	return ok(c, policies)
}

// GET /revenue/policies/default
func (h *RevenueHandler) DefaultPolicy(c fiber.Ctx) error {
	p, err := h.svc.DefaultPolicy(c.Context())
	if err != nil {
		return mapRevenueError(c, err)
	}
	return ok(c, p)
}

// GET /revenue/policies/:id
func (h *RevenueHandler) GetPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid policy id")
	}

	p, err := h.svc.GetPolicy(c.Context(), id)
	if err != nil {
		return mapRevenueError(c, err)
	}
	return ok(c, p)
}

// DELETE /revenue/policies/:id
func (h *RevenueHandler) DeletePolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid policy id")
	}

	if err := h.svc.DeletePolicy(c.Context(), id); err != nil {
		return mapRevenueError(c, err)
	}
	return noContent(c)
}

// POST /revenue/policies/:id/default
func (h *RevenueHandler) SetDefaultPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid policy id")
	}

	if err := h.svc.SetDefaultPolicy(c.Context(), id); err != nil {
		return mapRevenueError(c, err)
	}
	return noContent(c)
}
