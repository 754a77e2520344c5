package services_test

import (
	"errors"
	"testing"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/internal/services"
	"deliverease/pkg/payments"

	"github.com/stretchr/testify/assert"
)

type paymentFixture struct {
	service      *services.PaymentService
	orderRepo    *repositories.MockOrderRepository
	earningsRepo *repositories.MockEarningsRepository
	gateway      *payments.MockGateway
}

func newPaymentFixture(t *testing.T, driver *string) (*paymentFixture, *models.Order) {
	t.Helper()
	orderRepo := repositories.NewMockOrderRepository()
	earningsRepo := repositories.NewMockEarningsRepository()
	gateway := payments.NewMockGateway()
	settings := services.NewSettingsService(repositories.NewMockSettingsRepository())
	earningsService := services.NewEarningsService(earningsRepo)
	service := services.NewPaymentService(orderRepo, earningsService, settings, gateway, nil)

	order := paidOrderForTest(driver)
	order.Status = models.OrderPending
	order.PaymentStatus = models.PaymentPending
	assert.NoError(t, orderRepo.Create(order))

	return &paymentFixture{
		service:      service,
		orderRepo:    orderRepo,
		earningsRepo: earningsRepo,
		gateway:      gateway,
	}, order
}

func TestPaymentService_ConfirmPayment(t *testing.T) {
	driver := driverID
	f, order := newPaymentFixture(t, &driver)
	buyer := services.Actor{ID: buyerID, Role: models.RoleBuyer}

	status, err := f.service.ConfirmPayment(buyer, order.ID, "pay-ref-1")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, status)

	stored, err := f.orderRepo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
	assert.Equal(t, "pay-ref-1", stored.PaymentReference)

	// Settlement ran: one entry per party.
	sellerEntries, _ := f.earningsRepo.GetByUser(sellerID)
	driverEntries, _ := f.earningsRepo.GetByUser(driverID)
	assert.Len(t, sellerEntries, 1)
	assert.Len(t, driverEntries, 1)
}

func TestPaymentService_ConfirmPaymentIsIdempotent(t *testing.T) {
	driver := driverID
	f, order := newPaymentFixture(t, &driver)
	buyer := services.Actor{ID: buyerID, Role: models.RoleBuyer}

	_, err := f.service.ConfirmPayment(buyer, order.ID, "pay-ref-1")
	assert.NoError(t, err)

	// A repeat confirmation still reports paid and does not settle twice.
	status, err := f.service.ConfirmPayment(buyer, order.ID, "pay-ref-1")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, status)

	sellerEntries, _ := f.earningsRepo.GetByUser(sellerID)
	driverEntries, _ := f.earningsRepo.GetByUser(driverID)
	assert.Len(t, sellerEntries, 1)
	assert.Len(t, driverEntries, 1)
}

func TestPaymentService_ConfirmPaymentNonSuccess(t *testing.T) {
	driver := driverID

	t.Run("processing", func(t *testing.T) {
		f, order := newPaymentFixture(t, &driver)
		f.gateway.SetResult("pay-ref-1", payments.StatusProcessing)

		status, err := f.service.ConfirmPayment(services.Actor{ID: buyerID, Role: models.RoleBuyer}, order.ID, "pay-ref-1")
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentProcessing, status)

		// Nothing is marked paid and nothing is settled.
		stored, _ := f.orderRepo.GetByID(order.ID)
		assert.Equal(t, models.PaymentPending, stored.PaymentStatus)
		sellerEntries, _ := f.earningsRepo.GetByUser(sellerID)
		assert.Empty(t, sellerEntries)
	})

	t.Run("failed", func(t *testing.T) {
		f, order := newPaymentFixture(t, &driver)
		f.gateway.SetResult("pay-ref-1", payments.StatusFailed)

		status, err := f.service.ConfirmPayment(services.Actor{ID: buyerID, Role: models.RoleBuyer}, order.ID, "pay-ref-1")
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentFailed, status)

		stored, _ := f.orderRepo.GetByID(order.ID)
		assert.Equal(t, models.PaymentPending, stored.PaymentStatus)
	})
}

func TestPaymentService_ConfirmPaymentAuthorization(t *testing.T) {
	driver := driverID
	f, order := newPaymentFixture(t, &driver)

	_, err := f.service.ConfirmPayment(services.Actor{ID: "buyer-2", Role: models.RoleBuyer}, order.ID, "pay-ref-1")
	assert.True(t, errors.Is(err, errs.ErrNotAuthorized))

	_, err = f.service.ConfirmPayment(services.Actor{ID: sellerID, Role: models.RoleSeller}, order.ID, "pay-ref-1")
	assert.True(t, errors.Is(err, errs.ErrNotAuthorized))

	// Admins may confirm on a buyer's behalf.
	status, err := f.service.ConfirmPayment(services.Actor{ID: adminID, Role: models.RoleAdmin}, order.ID, "pay-ref-1")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, status)
}

func TestPaymentService_ConfirmPaymentMissingOrder(t *testing.T) {
	driver := driverID
	f, _ := newPaymentFixture(t, &driver)

	_, err := f.service.ConfirmPayment(services.Actor{ID: buyerID, Role: models.RoleBuyer}, "no-such-order", "pay-ref-1")
	assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
}
