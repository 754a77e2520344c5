package models

import "gorm.io/gorm"

// Role determines which marketplace actions a user may perform.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

// User represents a marketplace account (buyer, seller, driver or admin).
// Admin accounts are seeded, never self-registered, hence the oneof tag.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       Role   `json:"role" gorm:"type:varchar(10);index" validate:"required,oneof=buyer seller driver"`
	Phone      string `json:"phone" gorm:"type:varchar(32)" validate:"omitempty,max=32"`
	Address    string `json:"address" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
