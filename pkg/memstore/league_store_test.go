package memstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastytrade/internal/models/db_models"
)

func TestLeagueStoreUpsertCreatesThenUpdates(t *testing.T) {
	store := NewLeagueStore()
	ctx := context.Background()
	accountID := uuid.New()

	conn := &db_models.LeagueConnection{
		AccountID:    accountID,
		LeagueID:     "league-1",
		LeagueName:   "Dynasty Degens",
		TotalRosters: 12,
	}
	require.NoError(t, store.Upsert(ctx, conn))
	firstID := conn.ID
	require.NotZero(t, firstID)

	refreshed := &db_models.LeagueConnection{
		AccountID:        accountID,
		LeagueID:         "league-1",
		LeagueName:       "Dynasty Degens Renamed",
		TotalRosters:     12,
		SelectedTeamID:   "u1",
		SelectedTeamName: "Team One",
	}
	require.NoError(t, store.Upsert(ctx, refreshed))
	assert.Equal(t, firstID, refreshed.ID)

	found, err := store.FindByAccountAndLeague(ctx, accountID, "league-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Dynasty Degens Renamed", found.LeagueName)
	assert.Equal(t, "u1", found.SelectedTeamID)
}

func TestLeagueStoreScopedToAccount(t *testing.T) {
	store := NewLeagueStore()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, store.Upsert(ctx, &db_models.LeagueConnection{AccountID: alice, LeagueID: "league-1"}))
	require.NoError(t, store.Upsert(ctx, &db_models.LeagueConnection{AccountID: bob, LeagueID: "league-2"}))

	found, err := store.FindByAccountAndLeague(ctx, alice, "league-2")
	require.NoError(t, err)
	assert.Nil(t, found)

	conns, err := store.ListByAccount(ctx, alice)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, "league-1", conns[0].LeagueID)
}

func TestTradeStoreAppendOnlyNewestFirst(t *testing.T) {
	store := NewTradeStore()
	ctx := context.Background()
	accountID := uuid.New()

	first := &db_models.TradeRecord{AccountID: accountID, Kind: db_models.TradeKindSuggestion}
	second := &db_models.TradeRecord{AccountID: accountID, Kind: db_models.TradeKindEvaluation}
	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	records, err := store.ListByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)

	other, err := store.ListByAccount(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
