package repositories

import "deliverease/internal/models"

// EarningsRepository defines the interface for earnings ledger data access.
// Entries are append-only; the only mutation ever applied to them is the
// available -> withdrawn status flip owned by WithdrawalRepository.
type EarningsRepository interface {
	// CreateBatch inserts all entries atomically. A duplicate
	// (order_id, user_role) pair fails the whole batch with
	// errs.ErrEarningsExist.
	CreateBatch(entries []models.Earning) error
	GetByUser(userID string) ([]models.Earning, error)
	// GetAvailableByUser returns available entries oldest first, the order
	// the withdrawal workflow consumes them in.
	GetAvailableByUser(userID string) ([]models.Earning, error)
}
