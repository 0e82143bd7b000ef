package memstore

import (
	"context"
	"sync"
	"time"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/repositories"
)

type TransactionStore struct {
	mu   sync.RWMutex
	data map[string]*db_models.StripeTransaction // keyed by checkout session id
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{data: make(map[string]*db_models.StripeTransaction)}
}

var _ repositories.TransactionRepository = (*TransactionStore)(nil)

func (s *TransactionStore) Insert(ctx context.Context, txn *db_models.StripeTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&txn.BaseModel)
	cp := *txn
	s.data[txn.CheckoutSessionID] = &cp
	return nil
}

func (s *TransactionStore) FindByCheckoutSession(ctx context.Context, sessionID string) (*db_models.StripeTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, ok := s.data[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (s *TransactionStore) MarkStatus(ctx context.Context, sessionID string, status db_models.TransactionStatus, paymentIntentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.data[sessionID]
	if !ok {
		return nil
	}
	txn.Status = status
	if paymentIntentID != "" {
		txn.PaymentIntentID = paymentIntentID
	}
	if status == db_models.TxnStatusPaid {
		now := time.Now().Unix()
		txn.PaidAt = &now
	}
	txn.UpdatedAt = time.Now().Unix()
	return nil
}
