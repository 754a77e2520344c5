package handlers

import (
	"log"

	"deliverease/internal/middleware"
	"deliverease/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the buyer's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// CartItemRequest represents the request body for adding or updating a cart
// line.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HandleGetCart returns the cart resolved against the current catalog.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	lines, err := h.service.Lines(actor.ID)
	if err != nil {
		return respondError(c, err, "Could not retrieve cart")
	}
	return c.JSON(lines)
}

// HandleAddItem puts a product in the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and a positive quantity are required.",
		})
	}

	actor := middleware.ActorFromContext(c)
	if err := h.service.AddItem(actor.ID, req.ProductID, req.Quantity); err != nil {
		return respondError(c, err, "Could not add item to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added to cart",
	})
}

// HandleUpdateItem changes a cart line's quantity; zero removes the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	actor := middleware.ActorFromContext(c)
	if err := h.service.UpdateItem(actor.ID, c.Params("productId"), req.Quantity); err != nil {
		return respondError(c, err, "Could not update cart item")
	}
	return c.JSON(fiber.Map{
		"message": "Cart item updated",
	})
}

// HandleRemoveItem takes one product out of the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	if err := h.service.RemoveItem(actor.ID, c.Params("productId")); err != nil {
		return respondError(c, err, "Could not remove cart item")
	}
	return c.JSON(fiber.Map{
		"message": "Cart item removed",
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	if err := h.service.Clear(actor.ID); err != nil {
		return respondError(c, err, "Could not clear cart")
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
