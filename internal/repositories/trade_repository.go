package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dynastytrade/internal/models/db_models"
)

// TradeRecordRepository is append-only: insert and list are the whole surface.
type TradeRecordRepository interface {
	Insert(ctx context.Context, record *db_models.TradeRecord) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.TradeRecord, error)
}

type tradeRecordRepository struct {
	db *gorm.DB
}

func NewTradeRecordRepository(db *gorm.DB) TradeRecordRepository {
	return &tradeRecordRepository{db: db}
}

func (t *tradeRecordRepository) Insert(ctx context.Context, record *db_models.TradeRecord) error {
	return t.db.WithContext(ctx).Create(record).Error
}

func (t *tradeRecordRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.TradeRecord, error) {
	var records []db_models.TradeRecord
	err := t.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
