package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product listed by a seller.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Image       string          `json:"image" validate:"omitempty,max=500"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	SellerID    string          `json:"seller_id" gorm:"index;type:varchar(36)"`
	SellerName  string          `json:"seller_name"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
