package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TradeRecordKind string

const (
	TradeKindSuggestion TradeRecordKind = "suggestion"
	TradeKindEvaluation TradeRecordKind = "evaluation"
)

// TradeRecord is an append-only history entry. There is no update or delete
// path anywhere in the repository layer.
type TradeRecord struct {
	BaseModel
	AccountID uuid.UUID       `gorm:"index"`
	LeagueID  string          `gorm:"size:64"`
	Kind      TradeRecordKind `gorm:"size:16;index"`
	Payload   datatypes.JSON  `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}
