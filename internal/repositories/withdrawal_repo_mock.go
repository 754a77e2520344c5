package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"deliverease/internal/errs"
	"deliverease/internal/models"

	"github.com/google/uuid"
)

// MockWithdrawalRepository is an in-memory implementation of
// WithdrawalRepository. It shares a MockEarningsRepository so request
// creation can flip ledger entries the way the GORM transaction does.
type MockWithdrawalRepository struct {
	requests map[string]models.WithdrawalRequest
	earnings *MockEarningsRepository
	mu       sync.RWMutex
}

// NewMockWithdrawalRepository creates a new instance of
// MockWithdrawalRepository backed by the given earnings store.
func NewMockWithdrawalRepository(earnings *MockEarningsRepository) *MockWithdrawalRepository {
	return &MockWithdrawalRepository{
		requests: make(map[string]models.WithdrawalRequest),
		earnings: earnings,
	}
}

// Create inserts the request and marks the covering earnings withdrawn.
func (r *MockWithdrawalRepository) Create(req *models.WithdrawalRequest, earningIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if flipped := r.earnings.markWithdrawn(earningIDs); flipped != len(earningIDs) {
		return fmt.Errorf("%w: ledger entries changed while creating withdrawal", errs.ErrInsufficientEarnings)
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	r.requests[req.ID] = *req
	return nil
}

// GetByID returns a withdrawal request by its ID.
func (r *MockWithdrawalRepository) GetByID(id string) (*models.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, errs.ErrRequestNotFound
	}
	return &req, nil
}

// GetByUser returns a user's withdrawal requests, newest first.
func (r *MockWithdrawalRepository) GetByUser(userID string) ([]models.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requestList []models.WithdrawalRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			requestList = append(requestList, req)
		}
	}
	sort.Slice(requestList, func(i, j int) bool {
		return requestList[i].CreatedAt.After(requestList[j].CreatedAt)
	})
	return requestList, nil
}

// GetAll returns every withdrawal request, newest first.
func (r *MockWithdrawalRepository) GetAll() ([]models.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requestList := make([]models.WithdrawalRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requestList = append(requestList, req)
	}
	sort.Slice(requestList, func(i, j int) bool {
		return requestList[i].CreatedAt.After(requestList[j].CreatedAt)
	})
	return requestList, nil
}

// UpdateStatus applies an admin resolution conditional on the current status.
func (r *MockWithdrawalRepository) UpdateStatus(id string, from, to models.WithdrawalStatus, adminNotes, processedBy string, processedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return errs.ErrRequestNotFound
	}
	if req.Status != from {
		return fmt.Errorf("%w: request %s is %s, not %s", errs.ErrInvalidTransition, id, req.Status, from)
	}
	req.Status = to
	req.AdminNotes = adminNotes
	req.ProcessedBy = processedBy
	if processedAt != nil {
		req.ProcessedAt = processedAt
	}
	req.UpdatedAt = time.Now()
	r.requests[id] = req
	return nil
}
