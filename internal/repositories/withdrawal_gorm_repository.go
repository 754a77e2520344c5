package repositories

import (
	"fmt"
	"time"

	"deliverease/internal/errs"
	"deliverease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWithdrawalRepository is a GORM implementation of WithdrawalRepository.
type GORMWithdrawalRepository struct {
	db *gorm.DB
}

// NewGORMWithdrawalRepository creates a new instance of
// GORMWithdrawalRepository.
func NewGORMWithdrawalRepository(db *gorm.DB) *GORMWithdrawalRepository {
	return &GORMWithdrawalRepository{
		db: db,
	}
}

// Create inserts the request and marks the covering earnings entries
// withdrawn inside one transaction. The status guard on the UPDATE ensures a
// concurrent withdrawal against the same entries rolls the whole request
// back instead of double-spending them.
func (r *GORMWithdrawalRepository) Create(req *models.WithdrawalRequest, earningIDs []string) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal request: %w", err)
		}
		if len(earningIDs) == 0 {
			return nil
		}
		res := tx.Model(&models.Earning{}).
			Where("id IN ? AND status = ?", earningIDs, models.EarningAvailable).
			Update("status", models.EarningWithdrawn)
		if res.Error != nil {
			return fmt.Errorf("failed to mark earnings withdrawn: %w", res.Error)
		}
		if res.RowsAffected != int64(len(earningIDs)) {
			return fmt.Errorf("%w: ledger entries changed while creating withdrawal", errs.ErrInsufficientEarnings)
		}
		return nil
	})
	return err
}

// GetByID retrieves a single withdrawal request.
func (r *GORMWithdrawalRepository) GetByID(id string) (*models.WithdrawalRequest, error) {
	var req models.WithdrawalRequest
	if err := r.db.First(&req, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal request %s: %w", id, err)
	}
	return &req, nil
}

// GetByUser retrieves a user's withdrawal requests, newest first.
func (r *GORMWithdrawalRepository) GetByUser(userID string) ([]models.WithdrawalRequest, error) {
	var requests []models.WithdrawalRequest
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get withdrawal requests for user %s: %w", userID, err)
	}
	return requests, nil
}

// GetAll retrieves every withdrawal request, newest first. Admin dashboard
// listing.
func (r *GORMWithdrawalRepository) GetAll() ([]models.WithdrawalRequest, error) {
	var requests []models.WithdrawalRequest
	if err := r.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get withdrawal requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus applies an admin resolution conditional on the current status.
func (r *GORMWithdrawalRepository) UpdateStatus(id string, from, to models.WithdrawalStatus, adminNotes, processedBy string, processedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":       to,
		"admin_notes":  adminNotes,
		"processed_by": processedBy,
	}
	if processedAt != nil {
		updates["processed_at"] = *processedAt
	}
	res := r.db.Model(&models.WithdrawalRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update withdrawal request %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var req models.WithdrawalRequest
		if err := r.db.Select("id", "status").First(&req, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.ErrRequestNotFound
			}
			return fmt.Errorf("failed to re-check withdrawal request %s: %w", id, err)
		}
		return fmt.Errorf("%w: request %s is %s, not %s", errs.ErrInvalidTransition, id, req.Status, from)
	}
	return nil
}
