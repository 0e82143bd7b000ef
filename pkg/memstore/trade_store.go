package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/repositories"
)

// TradeStore is append-only, like its SQL counterpart.
type TradeStore struct {
	mu      sync.RWMutex
	records []db_models.TradeRecord
}

func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

var _ repositories.TradeRecordRepository = (*TradeStore)(nil)

func (s *TradeStore) Insert(ctx context.Context, record *db_models.TradeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&record.BaseModel)
	s.records = append(s.records, *record)
	return nil
}

func (s *TradeStore) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []db_models.TradeRecord
	// Newest first.
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].AccountID == accountID {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}
