package services

import (
	"errors"
	"fmt"
	"log"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/pkg/payments"
	"deliverease/pkg/rabbitmq"
)

// PaymentService confirms payments and triggers settlement.
type PaymentService struct {
	orderRepo repositories.OrderRepository
	earnings  *EarningsService
	settings  *SettingsService
	gateway   payments.Gateway
	mqClient  *rabbitmq.Client
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(
	orderRepo repositories.OrderRepository,
	earnings *EarningsService,
	settings *SettingsService,
	gateway payments.Gateway,
	mqClient *rabbitmq.Client,
) *PaymentService {
	return &PaymentService{
		orderRepo: orderRepo,
		earnings:  earnings,
		settings:  settings,
		gateway:   gateway,
		mqClient:  mqClient,
	}
}

// ConfirmPayment verifies a charge with the gateway and, on success, marks
// the order paid and settles it into the earnings ledger. Marking paid is a
// conditional write: a repeat confirmation of an already-paid order reports
// paid without settling again. Settlement failures are logged but do not
// fail the confirmation; the ledger's idempotency guard makes a later retry
// safe.
func (s *PaymentService) ConfirmPayment(actor Actor, orderID, paymentReference string) (models.PaymentStatus, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return "", err
	}
	if actor.Role != models.RoleAdmin && actor.ID != order.BuyerID {
		return "", fmt.Errorf("%w: only the buyer can confirm payment for order %s", errs.ErrNotAuthorized, orderID)
	}

	status, err := s.gateway.VerifyPayment(paymentReference)
	if err != nil {
		return "", fmt.Errorf("%w: payment verification failed: %v", errs.ErrUpstreamFailure, err)
	}
	switch status {
	case payments.StatusProcessing:
		return models.PaymentProcessing, nil
	case payments.StatusFailed:
		return models.PaymentFailed, nil
	case payments.StatusSucceeded:
		// fall through to settlement
	default:
		return "", fmt.Errorf("%w: unexpected gateway status %q", errs.ErrUpstreamFailure, status)
	}

	flipped, err := s.orderRepo.MarkPaid(orderID, paymentReference)
	if err != nil {
		return "", err
	}
	if !flipped {
		// Already paid; settlement ran (or is running) on the first confirmation.
		return models.PaymentPaid, nil
	}

	pc := s.settings.PricingContext()
	if err := s.earnings.CreateForOrder(order, pc); err != nil {
		if errors.Is(err, errs.ErrEarningsExist) {
			log.Printf("Order %s already settled, skipping earnings creation", orderID)
		} else {
			log.Printf("Failed to create earnings for order %s: %v", orderID, err)
		}
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"order_id":          orderID,
			"payment_reference": paymentReference,
		}
		if err := s.mqClient.PublishEvent(rabbitmq.EventPaymentConfirmed, payload); err != nil {
			log.Printf("Failed to publish %s event: %v", rabbitmq.EventPaymentConfirmed, err)
		}
	}

	return models.PaymentPaid, nil
}
