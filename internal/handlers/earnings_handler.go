package handlers

import (
	"deliverease/internal/middleware"
	"deliverease/internal/models"
	"deliverease/internal/services"

	"github.com/gofiber/fiber/v2"
)

// EarningsHandler handles HTTP requests for the earnings ledger.
type EarningsHandler struct {
	service *services.EarningsService
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(service *services.EarningsService) *EarningsHandler {
	return &EarningsHandler{
		service: service,
	}
}

// RegisterRoutes registers the earnings routes with the Fiber app. Earnings
// only exist for sellers and drivers.
func (h *EarningsHandler) RegisterRoutes(router fiber.Router) {
	earningsRoutes := router.Group("/earnings", middleware.RequireRole(models.RoleSeller, models.RoleDriver))
	earningsRoutes.Get("/", h.HandleGetSummary)
	earningsRoutes.Get("/entries", h.HandleGetEntries)
}

// HandleGetSummary returns the acting user's aggregate balances.
func (h *EarningsHandler) HandleGetSummary(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	summary, err := h.service.Summary(actor.ID)
	if err != nil {
		return respondError(c, err, "Could not retrieve earnings")
	}
	return c.JSON(summary)
}

// HandleGetEntries returns the acting user's individual ledger entries.
func (h *EarningsHandler) HandleGetEntries(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	entries, err := h.service.Entries(actor.ID)
	if err != nil {
		return respondError(c, err, "Could not retrieve earnings entries")
	}
	return c.JSON(entries)
}
