package handlers

import (
	"log"

	"deliverease/internal/middleware"
	"deliverease/internal/models"
	"deliverease/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All routes
// require authentication; the available-orders pool and claims are further
// gated to drivers.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/checkout", h.HandleCheckout)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/available", middleware.RequireRole(models.RoleDriver), h.HandleGetAvailableOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Post("/:id/claim", middleware.RequireRole(models.RoleDriver), h.HandleClaimOrder)
}

// CheckoutRequest represents the request body for checkout.
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	PhoneNumber     string `json:"phone_number"`
}

// HandleCheckout turns the buyer's cart into a pending order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.DeliveryAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "delivery_address is required.",
		})
	}

	actor := middleware.ActorFromContext(c)
	order, err := h.service.Checkout(actor.ID, req.DeliveryAddress, req.PhoneNumber)
	if err != nil {
		return respondError(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders retrieves the acting user's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	orders, err := h.service.OrdersForUser(actor.ID)
	if err != nil {
		return respondError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetAvailableOrders lists unclaimed ready orders for drivers.
func (h *OrderHandler) HandleGetAvailableOrders(c *fiber.Ctx) error {
	orders, err := h.service.AvailableOrders()
	if err != nil {
		return respondError(c, err, "Could not retrieve available orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	order, err := h.service.GetOrder(actor, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleUpdateOrderStatus applies one status transition to an order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	actor := middleware.ActorFromContext(c)
	order, err := h.service.TransitionOrder(actor, c.Params("id"), models.OrderStatus(updateData.Status))
	if err != nil {
		return respondError(c, err, "Could not update order status")
	}
	return c.JSON(order)
}

// HandleClaimOrder assigns a ready order to the acting driver.
func (h *OrderHandler) HandleClaimOrder(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	order, err := h.service.ClaimOrder(actor, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Could not claim order")
	}
	return c.JSON(order)
}
