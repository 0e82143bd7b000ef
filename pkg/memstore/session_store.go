package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/repositories"
)

type SessionStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]*db_models.UserSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[uuid.UUID]*db_models.UserSession)}
}

var _ repositories.SessionRepository = (*SessionStore)(nil)

func (s *SessionStore) Insert(ctx context.Context, session *db_models.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&session.BaseModel)
	cp := *session
	s.data[session.ID] = &cp
	return nil
}

func (s *SessionStore) FindActive(ctx context.Context, id uuid.UUID, now int64) (*db_models.UserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.data[id]
	if !ok || session.Expired(now) {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, id)
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, session := range s.data {
		if session.Expired(now) {
			delete(s.data, id)
			removed++
		}
	}
	return removed, nil
}
