package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/models/request_models"
	"dynastytrade/pkg/advisor"
	"dynastytrade/pkg/memstore"
	"dynastytrade/pkg/utils"
)

type tradeServiceFixture struct {
	svc      TradeServiceInterface
	accounts *memstore.AccountStore
	leagues  *memstore.LeagueStore
	trades   *memstore.TradeStore
	sleeper  *fakeSleeper
}

func newTradeServiceFixture(t *testing.T, plan db_models.PlanType) (*tradeServiceFixture, *db_models.Account) {
	t.Helper()

	accounts := memstore.NewAccountStore()
	leagues := memstore.NewLeagueStore()
	trades := memstore.NewTradeStore()
	fake := newFakeSleeper()

	svc := NewTradeService(accounts, leagues, trades, fake, advisor.NewMockAdvisor())

	account := &db_models.Account{Email: "user@example.com", Plan: plan}
	require.NoError(t, accounts.Insert(context.Background(), account))

	require.NoError(t, leagues.Upsert(context.Background(), &db_models.LeagueConnection{
		AccountID:        account.ID,
		LeagueID:         "league-1",
		LeagueName:       "Dynasty Degens",
		TotalRosters:     2,
		SelectedTeamID:   "u1",
		SelectedTeamName: "Team One",
	}))

	return &tradeServiceFixture{
		svc:      svc,
		accounts: accounts,
		leagues:  leagues,
		trades:   trades,
		sleeper:  fake,
	}, account
}

func TestGenerateTrades(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)
	ctx := context.Background()

	resp, err := f.svc.GenerateTrades(ctx, account, request_models.GenerateTradesRequest{LeagueID: "league-1"})
	require.NoError(t, err)
	assert.Equal(t, "Team One", resp.TeamName)
	assert.Equal(t, 1, resp.TradeCount)
	require.Len(t, resp.Suggestions, 3)

	current, err := f.accounts.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.TradeCount)

	records, err := f.trades.ListByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, db_models.TradeKindSuggestion, records[0].Kind)
}

func TestGenerateTradesFreeCap(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)
	ctx := context.Background()
	req := request_models.GenerateTradesRequest{LeagueID: "league-1"}

	for i := 0; i < db_models.FreeTradeLimit; i++ {
		resp, err := f.svc.GenerateTrades(ctx, account, req)
		require.NoError(t, err)
		account.TradeCount = resp.TradeCount
	}

	_, err := f.svc.GenerateTrades(ctx, account, req)
	assert.ErrorIs(t, err, utils.ErrTradeLimitExceeded)

	current, err := f.accounts.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.FreeTradeLimit, current.TradeCount)
}

func TestGenerateTradesProUncapped(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanPro)
	ctx := context.Background()
	req := request_models.GenerateTradesRequest{LeagueID: "league-1"}

	for i := 0; i < db_models.FreeTradeLimit+2; i++ {
		_, err := f.svc.GenerateTrades(ctx, account, req)
		require.NoError(t, err)
	}
}

func TestGenerateTradesRequiresConnection(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)

	_, err := f.svc.GenerateTrades(context.Background(), account, request_models.GenerateTradesRequest{LeagueID: "other-league"})
	assert.ErrorIs(t, err, utils.ErrLeagueNotConnected)
}

func TestGenerateTradesRequiresTeamSelection(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)
	ctx := context.Background()

	require.NoError(t, f.leagues.Upsert(ctx, &db_models.LeagueConnection{
		AccountID:  account.ID,
		LeagueID:   "league-2",
		LeagueName: "No Team Picked",
	}))

	_, err := f.svc.GenerateTrades(ctx, account, request_models.GenerateTradesRequest{LeagueID: "league-2"})
	assert.ErrorIs(t, err, utils.ErrLeagueNotConnected)
}

func TestGenerateTradesUpstreamDown(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)
	f.sleeper.err = utils.ErrSleeperUnavailable

	_, err := f.svc.GenerateTrades(context.Background(), account, request_models.GenerateTradesRequest{LeagueID: "league-1"})
	assert.ErrorIs(t, err, utils.ErrSleeperUnavailable)

	// A failed run must not burn a trade.
	current, findErr := f.accounts.FindByID(context.Background(), account.ID)
	require.NoError(t, findErr)
	assert.Equal(t, 0, current.TradeCount)
}

func TestEvaluateTradeDoesNotCount(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)
	ctx := context.Background()

	resp, err := f.svc.EvaluateTrade(ctx, account, request_models.CalculateTradeRequest{
		TeamAPlayers: "Justin Jefferson\nBijan Robinson",
		TeamBPlayers: "Josh Allen",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Justin Jefferson", "Bijan Robinson"}, resp.TeamAPlayers)
	assert.NotZero(t, resp.Result.FairnessScore)

	current, err := f.accounts.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.TradeCount)

	records, err := f.trades.ListByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, db_models.TradeKindEvaluation, records[0].Kind)
}

func TestEvaluateTradeRejectsEmptySide(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)

	_, err := f.svc.EvaluateTrade(context.Background(), account, request_models.CalculateTradeRequest{
		TeamAPlayers: "Justin Jefferson",
		TeamBPlayers: "  \n  ",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestHistoryNewestFirst(t *testing.T) {
	f, account := newTradeServiceFixture(t, db_models.PlanFree)
	ctx := context.Background()

	_, err := f.svc.GenerateTrades(ctx, account, request_models.GenerateTradesRequest{LeagueID: "league-1"})
	require.NoError(t, err)
	_, err = f.svc.EvaluateTrade(ctx, account, request_models.CalculateTradeRequest{
		TeamAPlayers: "A",
		TeamBPlayers: "B",
	})
	require.NoError(t, err)

	history, err := f.svc.History(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "evaluation", history[0].Kind)
	assert.Equal(t, "suggestion", history[1].Kind)

	other, err := f.svc.History(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
