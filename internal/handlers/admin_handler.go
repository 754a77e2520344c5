package handlers

import (
	"log"

	"deliverease/internal/middleware"
	"deliverease/internal/models"
	"deliverease/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin dashboard: economic settings and withdrawal
// resolution.
type AdminHandler struct {
	settings    *services.SettingsService
	withdrawals *services.WithdrawalService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(settings *services.SettingsService, withdrawals *services.WithdrawalService) *AdminHandler {
	return &AdminHandler{
		settings:    settings,
		withdrawals: withdrawals,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/settings", h.HandleGetSettings)
	adminRoutes.Put("/settings/:key", h.HandleUpdateSetting)
	adminRoutes.Get("/withdrawals", h.HandleGetWithdrawals)
	adminRoutes.Patch("/withdrawals/:id", h.HandleResolveWithdrawal)
}

// HandleGetSettings returns every economic setting, defaults included.
func (h *AdminHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.settings.All()
	if err != nil {
		return respondError(c, err, "Could not retrieve settings")
	}
	return c.JSON(settings)
}

// SettingUpdateRequest represents the request body for a setting update.
type SettingUpdateRequest struct {
	Value string `json:"value"`
}

// HandleUpdateSetting updates one economic setting.
func (h *AdminHandler) HandleUpdateSetting(c *fiber.Ctx) error {
	var req SettingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing setting update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	key := c.Params("key")
	if err := h.settings.Set(key, req.Value); err != nil {
		log.Printf("Error updating setting %s: %v", key, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update setting",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Setting updated successfully",
		"key":     key,
		"value":   req.Value,
	})
}

// HandleGetWithdrawals lists every payout request.
func (h *AdminHandler) HandleGetWithdrawals(c *fiber.Ctx) error {
	requests, err := h.withdrawals.AllRequests()
	if err != nil {
		return respondError(c, err, "Could not retrieve withdrawal requests")
	}
	return c.JSON(requests)
}

// WithdrawalResolutionRequest represents the request body for resolving a
// payout request.
type WithdrawalResolutionRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// HandleResolveWithdrawal applies an admin decision to a payout request.
func (h *AdminHandler) HandleResolveWithdrawal(c *fiber.Ctx) error {
	var req WithdrawalResolutionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing withdrawal resolution body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for withdrawal resolution.",
		})
	}

	actor := middleware.ActorFromContext(c)
	request, err := h.withdrawals.Resolve(c.Params("id"), models.WithdrawalStatus(req.Status), req.AdminNotes, actor.ID)
	if err != nil {
		return respondError(c, err, "Could not resolve withdrawal request")
	}
	return c.JSON(request)
}
