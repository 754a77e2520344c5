package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the lifecycle of a payout request.
// pending -> approved -> paid, or pending -> rejected. Paid and rejected are
// terminal.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalPaid     WithdrawalStatus = "paid"
)

// WithdrawalRequest is a seller's or driver's request to pay out available
// earnings. ProcessedAt is stamped only when the request reaches paid,
// matching the admin dashboard's behavior.
type WithdrawalRequest struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string           `json:"user_id" gorm:"index;type:varchar(36)"`
	UserRole    Role             `json:"user_role" gorm:"type:varchar(10)"`
	Amount      decimal.Decimal  `json:"amount" gorm:"type:decimal(12,2)"`
	Status      WithdrawalStatus `json:"status" gorm:"type:varchar(10);index"`
	AdminNotes  string           `json:"admin_notes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty"`
	ProcessedBy string           `json:"processed_by,omitempty" gorm:"type:varchar(36)"`
}
