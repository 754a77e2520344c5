package repositories

import (
	"time"

	"deliverease/internal/models"
)

// WithdrawalRepository defines the interface for withdrawal request data
// access.
type WithdrawalRepository interface {
	// Create inserts the request and flips the given available earnings
	// entries to withdrawn in one atomic write.
	Create(req *models.WithdrawalRequest, earningIDs []string) error
	GetByID(id string) (*models.WithdrawalRequest, error)
	GetByUser(userID string) ([]models.WithdrawalRequest, error)
	GetAll() ([]models.WithdrawalRequest, error)
	// UpdateStatus applies an admin resolution, conditional on the current
	// status. processedAt is only set when non-nil (the paid transition).
	UpdateStatus(id string, from, to models.WithdrawalStatus, adminNotes, processedBy string, processedAt *time.Time) error
}
