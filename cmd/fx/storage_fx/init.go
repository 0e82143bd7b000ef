package storage_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"dynastytrade/internal/infra"
	"dynastytrade/internal/repositories"
	"dynastytrade/pkg/memstore"
)

var Module = fx.Provide(
	provideRepositorySet,
	provideAccountRepository,
	provideSessionRepository,
	provideLeagueRepository,
	provideTradeRepository,
	provideTransactionRepository)

// repositorySet bundles one backend's worth of repositories so the choice
// between Postgres and in-memory storage is made exactly once.
type repositorySet struct {
	accounts     repositories.AccountRepository
	sessions     repositories.SessionRepository
	leagues      repositories.LeagueConnectionRepository
	trades       repositories.TradeRecordRepository
	transactions repositories.TransactionRepository
}

func provideRepositorySet(lc fx.Lifecycle) *repositorySet {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("DATABASE_URL not set, using in-memory storage")
		return &repositorySet{
			accounts:     memstore.NewAccountStore(),
			sessions:     memstore.NewSessionStore(),
			leagues:      memstore.NewLeagueStore(),
			trades:       memstore.NewTradeStore(),
			transactions: memstore.NewTransactionStore(),
		}
	}

	db := infra.InitPostgresql(dsn)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return &repositorySet{
		accounts:     repositories.NewAccountRepository(db),
		sessions:     repositories.NewSessionRepository(db),
		leagues:      repositories.NewLeagueConnectionRepository(db),
		trades:       repositories.NewTradeRecordRepository(db),
		transactions: repositories.NewTransactionRepository(db),
	}
}

func provideAccountRepository(s *repositorySet) repositories.AccountRepository {
	return s.accounts
}

func provideSessionRepository(s *repositorySet) repositories.SessionRepository {
	return s.sessions
}

func provideLeagueRepository(s *repositorySet) repositories.LeagueConnectionRepository {
	return s.leagues
}

func provideTradeRepository(s *repositorySet) repositories.TradeRecordRepository {
	return s.trades
}

func provideTransactionRepository(s *repositorySet) repositories.TransactionRepository {
	return s.transactions
}
