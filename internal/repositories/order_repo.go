package repositories

import "deliverease/internal/models"

// OrderRepository defines the interface for order data access.
//
// UpdateStatus and Claim are conditional writes: they only apply when the row
// still matches the expected current state, so concurrent actors cannot apply
// conflicting transitions. Both report errs.ErrOrderNotFound,
// errs.ErrInvalidTransition or errs.ErrAlreadyClaimed instead of silently
// overwriting.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetForUser(userID string) ([]models.Order, error)
	GetAvailableForDrivers() ([]models.Order, error)
	UpdateStatus(id string, from, to models.OrderStatus) error
	Claim(id, driverID string) error
	MarkPaid(id, paymentReference string) (bool, error)
}
