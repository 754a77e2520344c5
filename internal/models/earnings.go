package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EarningStatus tracks whether a ledger entry can still be withdrawn.
type EarningStatus string

const (
	EarningPending   EarningStatus = "pending"
	EarningAvailable EarningStatus = "available"
	EarningWithdrawn EarningStatus = "withdrawn"
)

// Earning is one party's settled claim on one order's value. Entries are never
// deleted and their amount is never mutated; only Status changes, and only
// from available to withdrawn. The unique index on (order_id, user_role)
// makes settlement idempotent per order and party.
type Earning struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string          `json:"user_id" gorm:"index;type:varchar(36)"`
	UserRole  Role            `json:"user_role" gorm:"type:varchar(10);uniqueIndex:idx_earnings_order_role"`
	OrderID   string          `json:"order_id" gorm:"type:varchar(36);uniqueIndex:idx_earnings_order_role"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	Status    EarningStatus   `json:"status" gorm:"type:varchar(10);index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EarningsSummary aggregates a user's ledger entries by status.
type EarningsSummary struct {
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	Withdrawn decimal.Decimal `json:"withdrawn"`
}
