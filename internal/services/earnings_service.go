package services

import (
	"fmt"

	"deliverease/internal/models"
	"deliverease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EarningsService provides business logic for the earnings ledger.
type EarningsService struct {
	repo repositories.EarningsRepository
}

// NewEarningsService creates a new instance of EarningsService.
func NewEarningsService(repo repositories.EarningsRepository) *EarningsService {
	return &EarningsService{
		repo: repo,
	}
}

// CreateForOrder settles a paid order into ledger entries: one for the seller,
// and one for the driver when the order has one and the commission is
// positive. The batch is atomic, so an order is either fully settled or not
// at all; a repeat settlement fails with errs.ErrEarningsExist.
func (s *EarningsService) CreateForOrder(order *models.Order, pc PricingContext) error {
	settlement := SettleOrder(order.Subtotal(), order.Total, order.DeliveryCharge, order.DriverCommission, pc)

	entries := []models.Earning{
		{
			ID:       uuid.New().String(),
			UserID:   order.SellerID,
			UserRole: models.RoleSeller,
			OrderID:  order.ID,
			Amount:   settlement.SellerEarnings,
			Status:   models.EarningAvailable,
		},
	}
	if order.DriverID != nil && settlement.DriverCommission.IsPositive() {
		entries = append(entries, models.Earning{
			ID:       uuid.New().String(),
			UserID:   *order.DriverID,
			UserRole: models.RoleDriver,
			OrderID:  order.ID,
			Amount:   settlement.DriverCommission,
			Status:   models.EarningAvailable,
		})
	}

	if err := s.repo.CreateBatch(entries); err != nil {
		return fmt.Errorf("failed to settle order %s: %w", order.ID, err)
	}
	return nil
}

// Entries returns every ledger entry for a user, newest first.
func (s *EarningsService) Entries(userID string) ([]models.Earning, error) {
	return s.repo.GetByUser(userID)
}

// Summary aggregates a user's entries by status.
func (s *EarningsService) Summary(userID string) (*models.EarningsSummary, error) {
	entries, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &models.EarningsSummary{
		Available: decimal.Zero,
		Pending:   decimal.Zero,
		Withdrawn: decimal.Zero,
	}
	for _, entry := range entries {
		switch entry.Status {
		case models.EarningAvailable:
			summary.Available = summary.Available.Add(entry.Amount)
		case models.EarningPending:
			summary.Pending = summary.Pending.Add(entry.Amount)
		case models.EarningWithdrawn:
			summary.Withdrawn = summary.Withdrawn.Add(entry.Amount)
		}
	}
	return summary, nil
}
