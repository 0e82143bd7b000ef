package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dynastytrade/internal/models/db_models"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *db_models.UserSession) error
	// FindActive returns nil for rows that are absent or already expired;
	// callers never see an expired session.
	FindActive(ctx context.Context, id uuid.UUID, now int64) (*db_models.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (s *sessionRepository) Insert(ctx context.Context, session *db_models.UserSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *sessionRepository) FindActive(ctx context.Context, id uuid.UUID, now int64) (*db_models.UserSession, error) {
	var session db_models.UserSession
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, now).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (s *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&db_models.UserSession{}, "id = ?", id).Error
}

func (s *sessionRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&db_models.UserSession{}, "expires_at <= ?", now)
	return res.RowsAffected, res.Error
}
