package services

import (
	"fmt"
	"time"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalService provides business logic for payout requests.
type WithdrawalService struct {
	withdrawalRepo repositories.WithdrawalRepository
	earningsRepo   repositories.EarningsRepository
}

// NewWithdrawalService creates a new instance of WithdrawalService.
func NewWithdrawalService(withdrawalRepo repositories.WithdrawalRepository, earningsRepo repositories.EarningsRepository) *WithdrawalService {
	return &WithdrawalService{
		withdrawalRepo: withdrawalRepo,
		earningsRepo:   earningsRepo,
	}
}

// CreateRequest opens a payout request for up to the user's available balance.
// Available entries are consumed oldest first and always whole: entries are
// marked withdrawn until their running sum covers the requested amount, even
// if the last one overshoots. The request amount stays what the user asked
// for.
func (s *WithdrawalService) CreateRequest(userID string, role models.Role, amount decimal.Decimal) (*models.WithdrawalRequest, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdrawal amount must be positive")
	}

	entries, err := s.earningsRepo.GetAvailableByUser(userID)
	if err != nil {
		return nil, err
	}

	available := decimal.Zero
	for _, entry := range entries {
		available = available.Add(entry.Amount)
	}
	if amount.GreaterThan(available) {
		return nil, fmt.Errorf("%w: requested %s, available %s", errs.ErrInsufficientEarnings, amount.StringFixed(2), available.StringFixed(2))
	}

	remaining := amount
	var earningIDs []string
	for _, entry := range entries {
		if !remaining.IsPositive() {
			break
		}
		earningIDs = append(earningIDs, entry.ID)
		remaining = remaining.Sub(entry.Amount)
	}

	req := &models.WithdrawalRequest{
		ID:       uuid.New().String(),
		UserID:   userID,
		UserRole: role,
		Amount:   RoundMoney(amount),
		Status:   models.WithdrawalPending,
	}
	if err := s.withdrawalRepo.Create(req, earningIDs); err != nil {
		return nil, err
	}
	return req, nil
}

// RequestsForUser lists a user's own payout requests.
func (s *WithdrawalService) RequestsForUser(userID string) ([]models.WithdrawalRequest, error) {
	return s.withdrawalRepo.GetByUser(userID)
}

// AllRequests lists every payout request, for the admin dashboard.
func (s *WithdrawalService) AllRequests() ([]models.WithdrawalRequest, error) {
	return s.withdrawalRepo.GetAll()
}

// Resolve applies an admin decision to a request. Allowed moves are
// pending -> approved, pending -> rejected and approved -> paid; ProcessedAt
// is stamped only on paid.
func (s *WithdrawalService) Resolve(requestID string, to models.WithdrawalStatus, adminNotes, adminID string) (*models.WithdrawalRequest, error) {
	req, err := s.withdrawalRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}

	allowed := false
	switch req.Status {
	case models.WithdrawalPending:
		allowed = to == models.WithdrawalApproved || to == models.WithdrawalRejected
	case models.WithdrawalApproved:
		allowed = to == models.WithdrawalPaid
	}
	if !allowed {
		return nil, fmt.Errorf("%w: withdrawal %s -> %s", errs.ErrInvalidTransition, req.Status, to)
	}

	var processedAt *time.Time
	if to == models.WithdrawalPaid {
		now := time.Now()
		processedAt = &now
	}
	if err := s.withdrawalRepo.UpdateStatus(req.ID, req.Status, to, adminNotes, adminID, processedAt); err != nil {
		return nil, err
	}
	return s.withdrawalRepo.GetByID(req.ID)
}
