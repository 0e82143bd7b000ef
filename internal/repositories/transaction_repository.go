package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dynastytrade/internal/models/db_models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.StripeTransaction) error
	FindByCheckoutSession(ctx context.Context, sessionID string) (*db_models.StripeTransaction, error)
	// MarkStatus records the provider's lifecycle transition for a checkout
	// session, stamping PaidAt when the status becomes paid.
	MarkStatus(ctx context.Context, sessionID string, status db_models.TransactionStatus, paymentIntentID string) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (t *transactionRepository) Insert(ctx context.Context, txn *db_models.StripeTransaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) FindByCheckoutSession(ctx context.Context, sessionID string) (*db_models.StripeTransaction, error) {
	var txn db_models.StripeTransaction
	err := t.db.WithContext(ctx).
		Where("checkout_session_id = ?", sessionID).
		First(&txn).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (t *transactionRepository) MarkStatus(ctx context.Context, sessionID string, status db_models.TransactionStatus, paymentIntentID string) error {
	updates := map[string]interface{}{"status": status}
	if paymentIntentID != "" {
		updates["payment_intent_id"] = paymentIntentID
	}
	if status == db_models.TxnStatusPaid {
		updates["paid_at"] = time.Now().Unix()
	}

	return t.db.WithContext(ctx).
		Model(&db_models.StripeTransaction{}).
		Where("checkout_session_id = ?", sessionID).
		Updates(updates).Error
}
