package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/pkg/utils"
)

func TestAccountStoreInsertAndLookup(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := &db_models.Account{
		Name:  "Alex",
		Email: "alex@example.com",
		Plan:  db_models.PlanFree,
	}
	require.NoError(t, store.Insert(ctx, account))
	require.NotZero(t, account.ID)

	byEmail, err := store.FindByEmail(ctx, "ALEX@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, account.ID, byEmail.ID)

	byID, err := store.FindByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Alex", byID.Name)
}

func TestAccountStoreRejectsDuplicateEmail(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, &db_models.Account{Email: "dup@example.com"}))

	err := store.Insert(ctx, &db_models.Account{Email: "DUP@example.com"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestAccountStoreFindMissingReturnsNil(t *testing.T) {
	store := NewAccountStore()

	account, err := store.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestIncrementTradeCountEnforcesCap(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := &db_models.Account{Email: "free@example.com", Plan: db_models.PlanFree}
	require.NoError(t, store.Insert(ctx, account))

	for i := 0; i < db_models.FreeTradeLimit; i++ {
		require.NoError(t, store.IncrementTradeCount(ctx, account.ID, db_models.FreeTradeLimit))
	}

	err := store.IncrementTradeCount(ctx, account.ID, db_models.FreeTradeLimit)
	assert.ErrorIs(t, err, utils.ErrTradeLimitExceeded)

	current, err := store.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.FreeTradeLimit, current.TradeCount)
}

func TestIncrementTradeCountProUnlimited(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := &db_models.Account{Email: "pro@example.com", Plan: db_models.PlanPro}
	require.NoError(t, store.Insert(ctx, account))

	for i := 0; i < db_models.FreeTradeLimit*3; i++ {
		require.NoError(t, store.IncrementTradeCount(ctx, account.ID, db_models.FreeTradeLimit))
	}
}

func TestIncrementTradeCountConcurrent(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := &db_models.Account{Email: "race@example.com", Plan: db_models.PlanFree}
	require.NoError(t, store.Insert(ctx, account))

	var wg sync.WaitGroup
	successes := make(chan struct{}, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.IncrementTradeCount(ctx, account.ID, db_models.FreeTradeLimit); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	assert.Len(t, successes, db_models.FreeTradeLimit)

	current, err := store.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.FreeTradeLimit, current.TradeCount)
}

func TestUpdatePlanResetsCount(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := &db_models.Account{Email: "upgrade@example.com", Plan: db_models.PlanFree}
	require.NoError(t, store.Insert(ctx, account))
	require.NoError(t, store.IncrementTradeCount(ctx, account.ID, db_models.FreeTradeLimit))

	require.NoError(t, store.UpdatePlan(ctx, account.ID, db_models.PlanPro))

	current, err := store.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.PlanPro, current.Plan)
	assert.Equal(t, 0, current.TradeCount)
}
