package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/repositories"
)

type leagueKey struct {
	accountID uuid.UUID
	leagueID  string
}

type LeagueStore struct {
	mu   sync.RWMutex
	data map[leagueKey]*db_models.LeagueConnection
}

func NewLeagueStore() *LeagueStore {
	return &LeagueStore{data: make(map[leagueKey]*db_models.LeagueConnection)}
}

var _ repositories.LeagueConnectionRepository = (*LeagueStore)(nil)

func (s *LeagueStore) Upsert(ctx context.Context, conn *db_models.LeagueConnection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := leagueKey{accountID: conn.AccountID, leagueID: conn.LeagueID}
	if existing, ok := s.data[key]; ok {
		existing.LeagueName = conn.LeagueName
		existing.TotalRosters = conn.TotalRosters
		existing.SelectedTeamID = conn.SelectedTeamID
		existing.SelectedTeamName = conn.SelectedTeamName
		existing.UpdatedAt = time.Now().Unix()
		*conn = *existing
		return nil
	}

	stamp(&conn.BaseModel)
	cp := *conn
	s.data[key] = &cp
	return nil
}

func (s *LeagueStore) FindByAccountAndLeague(ctx context.Context, accountID uuid.UUID, leagueID string) (*db_models.LeagueConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conn, ok := s.data[leagueKey{accountID: accountID, leagueID: leagueID}]
	if !ok {
		return nil, nil
	}
	cp := *conn
	return &cp, nil
}

func (s *LeagueStore) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.LeagueConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var conns []db_models.LeagueConnection
	for key, conn := range s.data {
		if key.accountID == accountID {
			conns = append(conns, *conn)
		}
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i].UpdatedAt > conns[j].UpdatedAt })
	return conns, nil
}
