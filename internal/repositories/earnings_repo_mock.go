package repositories

import (
	"sync"
	"time"

	"deliverease/internal/errs"
	"deliverease/internal/models"

	"github.com/google/uuid"
)

// MockEarningsRepository is an in-memory implementation of EarningsRepository.
// Entries are kept in insertion order, which doubles as creation order for the
// oldest-first withdrawal walk.
type MockEarningsRepository struct {
	entries []models.Earning
	mu      sync.RWMutex
}

// NewMockEarningsRepository creates a new instance of MockEarningsRepository.
func NewMockEarningsRepository() *MockEarningsRepository {
	return &MockEarningsRepository{}
}

// CreateBatch inserts all entries, or none if any (order, role) pair exists.
func (r *MockEarningsRepository) CreateBatch(entries []models.Earning) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		for _, existing := range r.entries {
			if existing.OrderID == entry.OrderID && existing.UserRole == entry.UserRole {
				return errs.ErrEarningsExist
			}
		}
	}
	now := time.Now()
	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		entry.CreatedAt = now
		entry.UpdatedAt = now
		r.entries = append(r.entries, entry)
	}
	return nil
}

// GetByUser returns every ledger entry for a user, oldest first.
func (r *MockEarningsRepository) GetByUser(userID string) ([]models.Earning, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entryList []models.Earning
	for _, entry := range r.entries {
		if entry.UserID == userID {
			entryList = append(entryList, entry)
		}
	}
	return entryList, nil
}

// GetAvailableByUser returns the user's available entries, oldest first.
func (r *MockEarningsRepository) GetAvailableByUser(userID string) ([]models.Earning, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entryList []models.Earning
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.Status == models.EarningAvailable {
			entryList = append(entryList, entry)
		}
	}
	return entryList, nil
}

// markWithdrawn flips the given entries from available to withdrawn. Used by
// MockWithdrawalRepository to mirror the transactional GORM path. Returns the
// number of entries flipped.
func (r *MockEarningsRepository) markWithdrawn(ids []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	flipped := 0
	for _, id := range ids {
		for i := range r.entries {
			if r.entries[i].ID == id && r.entries[i].Status == models.EarningAvailable {
				r.entries[i].Status = models.EarningWithdrawn
				r.entries[i].UpdatedAt = time.Now()
				flipped++
			}
		}
	}
	return flipped
}
