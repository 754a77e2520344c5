package models

import "time"

// CartItem links a buyer to a product they intend to order.
type CartItem struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"primaryKey;type:varchar(36)"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with its product, as returned to clients and
// consumed by checkout.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
