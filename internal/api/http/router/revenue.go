package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/peyvand/peyvand_backend/internal/api/http/handler"
)

func (r *Router) registerRevenueRoutes(api fiber.Router, rh *handler.RevenueHandler) {
	rev := api.Group("/revenue")

	// Stateless preview, re-invoked by live forms on every input change
	rev.Post("/preview", rh.Preview)

	policies := rev.Group("/policies")
	policies.Get("/", rh.ListPolicies)
	policies.Post("/", rh.CreatePolicy)

	// Must come before /:id so "default" is not parsed as an id
	policies.Get("/default", rh.DefaultPolicy)

	policies.Get("/:id", rh.GetPolicy)
	policies.Put("/:id", rh.UpdatePolicy)
	policies.Delete("/:id", rh.DeletePolicy)
	policies.Post("/:id/default", rh.SetDefaultPolicy)
	policies.Get("/:id/preview", rh.PreviewWithPolicy)
}
