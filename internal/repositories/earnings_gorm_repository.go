package repositories

import (
	"errors"
	"fmt"

	"deliverease/internal/errs"
	"deliverease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEarningsRepository is a GORM implementation of EarningsRepository.
// Requires gorm.Config{TranslateError: true} so driver duplicate-key errors
// surface as gorm.ErrDuplicatedKey.
type GORMEarningsRepository struct {
	db *gorm.DB
}

// NewGORMEarningsRepository creates a new instance of GORMEarningsRepository.
func NewGORMEarningsRepository(db *gorm.DB) *GORMEarningsRepository {
	return &GORMEarningsRepository{
		db: db,
	}
}

// CreateBatch inserts the seller and driver entries for one order in a single
// transaction, so a failed sibling write rolls back the whole settlement.
func (r *GORMEarningsRepository) CreateBatch(entries []models.Earning) error {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.New().String()
		}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrEarningsExist
		}
		return fmt.Errorf("failed to create earnings entries: %w", err)
	}
	return nil
}

// GetByUser retrieves every ledger entry for a user, oldest first.
func (r *GORMEarningsRepository) GetByUser(userID string) ([]models.Earning, error) {
	var entries []models.Earning
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get earnings for user %s: %w", userID, err)
	}
	return entries, nil
}

// GetAvailableByUser retrieves the user's available entries oldest first.
func (r *GORMEarningsRepository) GetAvailableByUser(userID string) ([]models.Earning, error) {
	var entries []models.Earning
	err := r.db.Where("user_id = ? AND status = ?", userID, models.EarningAvailable).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available earnings for user %s: %w", userID, err)
	}
	return entries, nil
}
