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

// MockOrderRepository is an in-memory implementation of OrderRepository.
// All conditional updates happen under the write lock, so it honors the same
// first-writer-wins claim semantics as the GORM implementation.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errs.ErrOrderNotFound
	}
	return &order, nil
}

// GetForUser returns the orders a user participates in, newest first.
func (r *MockOrderRepository) GetForUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orderList []models.Order
	for _, order := range r.orders {
		if order.BuyerID == userID || order.SellerID == userID ||
			(order.DriverID != nil && *order.DriverID == userID) {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetAvailableForDrivers returns unclaimed orders in ready status.
func (r *MockOrderRepository) GetAvailableForDrivers() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orderList []models.Order
	for _, order := range r.orders {
		if order.DriverID == nil && order.Status == models.OrderReady {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// UpdateStatus moves an order from one status to another, failing if the
// current status no longer matches.
func (r *MockOrderRepository) UpdateStatus(id string, from, to models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return errs.ErrOrderNotFound
	}
	if order.Status != from {
		return fmt.Errorf("%w: order %s is %s, not %s", errs.ErrInvalidTransition, id, order.Status, from)
	}
	order.Status = to
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Claim assigns a driver to an unclaimed, ready order. The check and the
// write share one critical section, so exactly one concurrent claimant wins.
func (r *MockOrderRepository) Claim(id, driverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return errs.ErrOrderNotFound
	}
	if order.DriverID != nil {
		return errs.ErrAlreadyClaimed
	}
	if order.Status != models.OrderReady {
		return fmt.Errorf("%w: order %s is %s, not %s", errs.ErrInvalidTransition, id, order.Status, models.OrderReady)
	}
	order.DriverID = &driverID
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// MarkPaid flips the payment status to paid once; false means already paid.
func (r *MockOrderRepository) MarkPaid(id, paymentReference string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return false, errs.ErrOrderNotFound
	}
	if order.PaymentStatus == models.PaymentPaid {
		return false, nil
	}
	order.PaymentStatus = models.PaymentPaid
	order.PaymentReference = paymentReference
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return true, nil
}
