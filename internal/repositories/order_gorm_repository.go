package repositories

import (
	"fmt"

	"deliverease/internal/errs"
	"deliverease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists a new order together with its snapshotted items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetForUser retrieves the orders a user participates in, as buyer, seller or
// driver, newest first.
func (r *GORMOrderRepository) GetForUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("buyer_id = ? OR seller_id = ? OR driver_id = ?", userID, userID, userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetAvailableForDrivers retrieves the unclaimed orders that are ready for
// pickup. Drivers poll this list.
func (r *GORMOrderRepository) GetAvailableForDrivers() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("driver_id IS NULL AND status = ?", models.OrderReady).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order from one status to another. The update is
// conditional on the current status so a stale caller cannot clobber a
// transition that already happened.
func (r *GORMOrderRepository) UpdateStatus(id string, from, to models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("failed to update order %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the order vanished or its status moved under us.
		var order models.Order
		if err := r.db.Select("id", "status").First(&order, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.ErrOrderNotFound
			}
			return fmt.Errorf("failed to re-check order %s: %w", id, err)
		}
		return fmt.Errorf("%w: order %s is %s, not %s", errs.ErrInvalidTransition, id, order.Status, from)
	}
	return nil
}

// Claim assigns a driver to an unclaimed, ready order. The WHERE clause is the
// compare-and-swap: only one of any number of concurrent claimants can match
// the driver_id IS NULL row, so at most one driver ever wins.
func (r *GORMOrderRepository) Claim(id, driverID string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", id, models.OrderReady).
		Update("driver_id", driverID)
	if res.Error != nil {
		return fmt.Errorf("failed to claim order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var order models.Order
		if err := r.db.Select("id", "status", "driver_id").First(&order, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.ErrOrderNotFound
			}
			return fmt.Errorf("failed to re-check order %s: %w", id, err)
		}
		if order.DriverID != nil {
			return errs.ErrAlreadyClaimed
		}
		return fmt.Errorf("%w: order %s is %s, not %s", errs.ErrInvalidTransition, id, order.Status, models.OrderReady)
	}
	return nil
}

// MarkPaid flips the payment status to paid exactly once. It returns false
// without error when the order was already paid, so a retried confirmation
// webhook settles nothing twice.
func (r *GORMOrderRepository) MarkPaid(id, paymentReference string) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND payment_status <> ?", id, models.PaymentPaid).
		Updates(map[string]interface{}{
			"payment_status":    models.PaymentPaid,
			"payment_reference": paymentReference,
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to mark order %s paid: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var order models.Order
		if err := r.db.Select("id").First(&order, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return false, errs.ErrOrderNotFound
			}
			return false, fmt.Errorf("failed to re-check order %s: %w", id, err)
		}
		return false, nil // already paid
	}
	return true, nil
}
