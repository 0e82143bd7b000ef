package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusPaid    TransactionStatus = "paid"
	TxnStatusFailed  TransactionStatus = "failed"
)

// StripeTransaction is a ledger entry for a checkout session. Status follows
// Stripe's lifecycle; rows are appended and their status updated, never removed.
type StripeTransaction struct {
	BaseModel
	AccountID         uuid.UUID         `gorm:"index"`
	CheckoutSessionID string            `gorm:"uniqueIndex;size:128"`
	PaymentIntentID   string            `gorm:"index;size:128"`
	AmountMinor       int64             // e.g. 500 = $5.00
	Currency          string            `gorm:"size:3"`
	Status            TransactionStatus `gorm:"size:16;index"`
	PlanType          PlanType          `gorm:"size:16"`

	PaidAt   *int64
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}
