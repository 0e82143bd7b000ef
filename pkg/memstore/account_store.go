// Package memstore provides in-memory implementations of the repository
// interfaces. It backs local development when DATABASE_URL is unset and the
// unit tests; production runs swap it for the Postgres repositories. Single
// process only.
package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/repositories"
	"dynastytrade/pkg/utils"
)

type AccountStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*db_models.Account
	byEmail map[string]uuid.UUID
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:    make(map[uuid.UUID]*db_models.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

var _ repositories.AccountRepository = (*AccountStore)(nil)

func (s *AccountStore) Insert(ctx context.Context, account *db_models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(account.Email)
	if _, exists := s.byEmail[key]; exists {
		return utils.ErrEmailAlreadyExists
	}

	stamp(&account.BaseModel)
	cp := *account
	s.byID[account.ID] = &cp
	s.byEmail[key] = account.ID
	return nil
}

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *AccountStore) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (s *AccountStore) IncrementTradeCount(ctx context.Context, id uuid.UUID, cap int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byID[id]
	if !ok {
		return utils.ErrTradeLimitExceeded
	}
	// Same guard as the SQL statement: pro always passes, free only below cap.
	if account.Plan != db_models.PlanPro && account.TradeCount >= cap {
		return utils.ErrTradeLimitExceeded
	}
	account.TradeCount++
	account.UpdatedAt = time.Now().Unix()
	return nil
}

func (s *AccountStore) UpdatePlan(ctx context.Context, id uuid.UUID, plan db_models.PlanType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account, ok := s.byID[id]; ok {
		account.Plan = plan
		account.TradeCount = 0
		account.UpdatedAt = time.Now().Unix()
	}
	return nil
}

func (s *AccountStore) UpdateStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account, ok := s.byID[id]; ok {
		account.StripeCustomerID = &customerID
		account.UpdatedAt = time.Now().Unix()
	}
	return nil
}

func stamp(b *db_models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
