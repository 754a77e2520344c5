package services_test

import (
	"errors"
	"testing"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func withdrawalFixture(t *testing.T, amounts ...int64) (*services.WithdrawalService, *repositories.MockEarningsRepository) {
	t.Helper()
	earningsRepo := repositories.NewMockEarningsRepository()
	for i, amount := range amounts {
		assert.NoError(t, earningsRepo.CreateBatch([]models.Earning{{
			ID:       string(rune('a' + i)),
			UserID:   sellerID,
			UserRole: models.RoleSeller,
			OrderID:  string(rune('A' + i)),
			Amount:   decimal.NewFromInt(amount),
			Status:   models.EarningAvailable,
		}}))
	}
	withdrawalRepo := repositories.NewMockWithdrawalRepository(earningsRepo)
	return services.NewWithdrawalService(withdrawalRepo, earningsRepo), earningsRepo
}

func TestWithdrawalService_CreateRequest(t *testing.T) {
	service, earningsRepo := withdrawalFixture(t, 30, 20, 10)

	req, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(45))
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, req.Status)
	assert.True(t, req.Amount.Equal(decimal.NewFromInt(45)))

	// Entries are marked whole, oldest first: 30 and 20 cover the 45, the 10
	// stays available.
	available, err := earningsRepo.GetAvailableByUser(sellerID)
	assert.NoError(t, err)
	assert.Len(t, available, 1)
	assert.True(t, available[0].Amount.Equal(decimal.NewFromInt(10)), "remaining: %s", available[0].Amount)
}

func TestWithdrawalService_CreateRequestExactCover(t *testing.T) {
	service, earningsRepo := withdrawalFixture(t, 30, 20, 10)

	_, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(50))
	assert.NoError(t, err)

	available, err := earningsRepo.GetAvailableByUser(sellerID)
	assert.NoError(t, err)
	assert.Len(t, available, 1)
	assert.True(t, available[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestWithdrawalService_CreateRequestOverBalance(t *testing.T) {
	service, earningsRepo := withdrawalFixture(t, 30, 20)

	_, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(51))
	assert.True(t, errors.Is(err, errs.ErrInsufficientEarnings), "expected ErrInsufficientEarnings, got %v", err)

	// Nothing was created or mutated.
	available, err := earningsRepo.GetAvailableByUser(sellerID)
	assert.NoError(t, err)
	assert.Len(t, available, 2)
	requests, err := service.RequestsForUser(sellerID)
	assert.NoError(t, err)
	assert.Empty(t, requests)
}

func TestWithdrawalService_CreateRequestNonPositive(t *testing.T) {
	service, _ := withdrawalFixture(t, 30)

	_, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.Zero)
	assert.Error(t, err)
	_, err = service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(-5))
	assert.Error(t, err)
}

func TestWithdrawalService_Resolve(t *testing.T) {
	t.Run("approve then pay", func(t *testing.T) {
		service, _ := withdrawalFixture(t, 100)
		req, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(60))
		assert.NoError(t, err)

		approved, err := service.Resolve(req.ID, models.WithdrawalApproved, "looks good", adminID)
		assert.NoError(t, err)
		assert.Equal(t, models.WithdrawalApproved, approved.Status)
		assert.Equal(t, "looks good", approved.AdminNotes)
		assert.Equal(t, adminID, approved.ProcessedBy)
		assert.Nil(t, approved.ProcessedAt, "processed_at is only stamped on paid")

		paid, err := service.Resolve(req.ID, models.WithdrawalPaid, "transferred", adminID)
		assert.NoError(t, err)
		assert.Equal(t, models.WithdrawalPaid, paid.Status)
		assert.NotNil(t, paid.ProcessedAt)
	})

	t.Run("reject is terminal", func(t *testing.T) {
		service, _ := withdrawalFixture(t, 100)
		req, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(60))
		assert.NoError(t, err)

		rejected, err := service.Resolve(req.ID, models.WithdrawalRejected, "bank details missing", adminID)
		assert.NoError(t, err)
		assert.Equal(t, models.WithdrawalRejected, rejected.Status)
		assert.Nil(t, rejected.ProcessedAt)

		_, err = service.Resolve(req.ID, models.WithdrawalApproved, "", adminID)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		_, err = service.Resolve(req.ID, models.WithdrawalPaid, "", adminID)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("pending cannot go straight to paid", func(t *testing.T) {
		service, _ := withdrawalFixture(t, 100)
		req, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(60))
		assert.NoError(t, err)

		_, err = service.Resolve(req.ID, models.WithdrawalPaid, "", adminID)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("paid is terminal", func(t *testing.T) {
		service, _ := withdrawalFixture(t, 100)
		req, err := service.CreateRequest(sellerID, models.RoleSeller, decimal.NewFromInt(60))
		assert.NoError(t, err)

		_, err = service.Resolve(req.ID, models.WithdrawalApproved, "", adminID)
		assert.NoError(t, err)
		_, err = service.Resolve(req.ID, models.WithdrawalPaid, "", adminID)
		assert.NoError(t, err)

		_, err = service.Resolve(req.ID, models.WithdrawalRejected, "", adminID)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("missing request", func(t *testing.T) {
		service, _ := withdrawalFixture(t, 100)

		_, err := service.Resolve("no-such-request", models.WithdrawalApproved, "", adminID)
		assert.True(t, errors.Is(err, errs.ErrRequestNotFound))
	})
}
