package handlers

import (
	"log"

	"deliverease/internal/middleware"
	"deliverease/internal/models"
	"deliverease/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// WithdrawalHandler handles HTTP requests for payout requests.
type WithdrawalHandler struct {
	service *services.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(service *services.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{
		service: service,
	}
}

// RegisterRoutes registers the withdrawal routes with the Fiber app.
func (h *WithdrawalHandler) RegisterRoutes(router fiber.Router) {
	withdrawalRoutes := router.Group("/withdrawals", middleware.RequireRole(models.RoleSeller, models.RoleDriver))
	withdrawalRoutes.Post("/", h.HandleCreateRequest)
	withdrawalRoutes.Get("/", h.HandleGetOwnRequests)
}

// WithdrawalRequestBody represents the request body for opening a payout
// request.
type WithdrawalRequestBody struct {
	Amount string `json:"amount"`
}

// HandleCreateRequest opens a payout request against the acting user's
// available balance.
func (h *WithdrawalHandler) HandleCreateRequest(c *fiber.Ctx) error {
	var req WithdrawalRequestBody
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing withdrawal request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "amount must be a positive decimal number.",
		})
	}

	actor := middleware.ActorFromContext(c)
	request, err := h.service.CreateRequest(actor.ID, actor.Role, amount)
	if err != nil {
		return respondError(c, err, "Could not create withdrawal request")
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// HandleGetOwnRequests lists the acting user's payout requests.
func (h *WithdrawalHandler) HandleGetOwnRequests(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	requests, err := h.service.RequestsForUser(actor.ID)
	if err != nil {
		return respondError(c, err, "Could not retrieve withdrawal requests")
	}
	return c.JSON(requests)
}
