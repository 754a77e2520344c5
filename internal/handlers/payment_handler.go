package handlers

import (
	"log"

	"deliverease/internal/middleware"
	"deliverease/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payment confirmation.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/payments/confirm", h.HandleConfirmPayment)
}

// ConfirmPaymentRequest represents the request body for payment confirmation.
type ConfirmPaymentRequest struct {
	OrderID          string `json:"order_id"`
	PaymentReference string `json:"payment_reference"`
}

// HandleConfirmPayment verifies a charge and settles the order on success.
func (h *PaymentHandler) HandleConfirmPayment(c *fiber.Ctx) error {
	var req ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment confirmation body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.OrderID == "" || req.PaymentReference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "order_id and payment_reference are required.",
		})
	}

	actor := middleware.ActorFromContext(c)
	status, err := h.service.ConfirmPayment(actor, req.OrderID, req.PaymentReference)
	if err != nil {
		return respondError(c, err, "Could not confirm payment")
	}
	return c.JSON(fiber.Map{
		"order_id":       req.OrderID,
		"payment_status": status,
	})
}
