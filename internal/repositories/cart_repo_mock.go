package repositories

import (
	"sync"
	"time"

	"deliverease/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository. Lines
// keep their insertion order per user.
type MockCartRepository struct {
	items map[string][]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string][]models.CartItem),
	}
}

// GetItems returns a user's cart lines.
func (r *MockCartRepository) GetItems(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.CartItem, len(r.items[userID]))
	copy(itemList, r.items[userID])
	return itemList, nil
}

// Upsert inserts a cart line or replaces its quantity.
func (r *MockCartRepository) Upsert(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.UpdatedAt = time.Now()
	lines := r.items[item.UserID]
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity = item.Quantity
			lines[i].UpdatedAt = item.UpdatedAt
			return nil
		}
	}
	item.CreatedAt = item.UpdatedAt
	r.items[item.UserID] = append(lines, *item)
	return nil
}

// Remove deletes one cart line.
func (r *MockCartRepository) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.items[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			r.items[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear empties a user's cart.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, userID)
	return nil
}
