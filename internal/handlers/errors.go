package handlers

import (
	"errors"
	"log"

	"deliverease/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto HTTP statuses. Anything that is not a
// known sentinel becomes a 500 so a store failure never masquerades as a
// client mistake.
func respondError(c *fiber.Ctx, err error, message string) error {
	log.Printf("%s: %v", message, err)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrOrderNotFound), errors.Is(err, errs.ErrRequestNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrAlreadyClaimed), errors.Is(err, errs.ErrEarningsExist):
		status = fiber.StatusConflict
	case errors.Is(err, errs.ErrNotAuthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientEarnings):
		status = fiber.StatusPaymentRequired
	case errors.Is(err, errs.ErrUpstreamFailure):
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
