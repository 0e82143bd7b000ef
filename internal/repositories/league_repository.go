package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dynastytrade/internal/models/db_models"
)

type LeagueConnectionRepository interface {
	// Upsert keeps at most one row per (account, league) pair.
	Upsert(ctx context.Context, conn *db_models.LeagueConnection) error
	FindByAccountAndLeague(ctx context.Context, accountID uuid.UUID, leagueID string) (*db_models.LeagueConnection, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.LeagueConnection, error)
}

type leagueConnectionRepository struct {
	db *gorm.DB
}

func NewLeagueConnectionRepository(db *gorm.DB) LeagueConnectionRepository {
	return &leagueConnectionRepository{db: db}
}

func (l *leagueConnectionRepository) Upsert(ctx context.Context, conn *db_models.LeagueConnection) error {
	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}, {Name: "league_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"league_name", "total_rosters", "selected_team_id", "selected_team_name", "updated_at",
			}),
		}).
		Create(conn).Error
}

func (l *leagueConnectionRepository) FindByAccountAndLeague(ctx context.Context, accountID uuid.UUID, leagueID string) (*db_models.LeagueConnection, error) {
	var conn db_models.LeagueConnection
	err := l.db.WithContext(ctx).
		Where("account_id = ? AND league_id = ?", accountID, leagueID).
		First(&conn).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &conn, nil
}

func (l *leagueConnectionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.LeagueConnection, error) {
	var conns []db_models.LeagueConnection
	err := l.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&conns).Error

	if err != nil {
		return nil, err
	}

	return conns, nil
}
