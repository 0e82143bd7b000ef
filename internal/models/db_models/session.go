package db_models

import "github.com/google/uuid"

// UserSession backs a signed session token. A token whose row is missing or
// whose ExpiresAt is in the past resolves to no user at all.
type UserSession struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	ExpiresAt int64     `gorm:"index;not null"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

func (s *UserSession) Expired(now int64) bool {
	return s.ExpiresAt <= now
}
