package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery lifecycle axis of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus is the payment axis, independent from the delivery status.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// OrderItem is a single line of an order. Price is the product price captured
// at order-creation time; later product edits do not touch it.
type OrderItem struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string          `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID   string          `json:"product_id" gorm:"type:varchar(36)"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
}

// Order represents a buyer's order against a single seller.
// DeliveryCharge and DriverCommission are snapshotted from settings at
// checkout; settlement reads them from the order row, never from live
// settings. DriverID stays nil until a driver claims the order and is
// write-once after that.
type Order struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID           string          `json:"buyer_id" gorm:"index;type:varchar(36)"`
	SellerID          string          `json:"seller_id" gorm:"index;type:varchar(36)"`
	DriverID          *string         `json:"driver_id" gorm:"index;type:varchar(36)"`
	Items             []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	Total             decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	DeliveryCharge    decimal.Decimal `json:"delivery_charge" gorm:"type:decimal(12,2)"`
	DriverCommission  decimal.Decimal `json:"driver_commission" gorm:"type:decimal(12,2)"`
	Status            OrderStatus     `json:"status" gorm:"type:varchar(16);index"`
	PaymentStatus     PaymentStatus   `json:"payment_status" gorm:"type:varchar(16);index"`
	PaymentReference  string          `json:"payment_reference,omitempty" gorm:"type:varchar(128)"`
	DeliveryAddress   string          `json:"delivery_address"`
	OrderPhoneNumber  string          `json:"order_phone_number"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
}

// Subtotal sums item price x quantity. Items are snapshotted, so this is the
// same value the checkout quote was computed from.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}
