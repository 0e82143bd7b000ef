package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/models/response_models"
	"dynastytrade/internal/repositories"
	"dynastytrade/pkg/sleeper"
	"dynastytrade/pkg/utils"
)

type LeagueServiceInterface interface {
	// ConnectLeague verifies the league against Sleeper and stores (or
	// refreshes) the connection for this account.
	ConnectLeague(ctx context.Context, accountID uuid.UUID, leagueID string) (*response_models.LeagueResponse, error)
	SelectTeam(ctx context.Context, accountID uuid.UUID, leagueID, teamID string) (*response_models.TeamSelectionResponse, error)
	ListConnections(ctx context.Context, accountID uuid.UUID) ([]response_models.LeagueConnectionResponse, error)
}

type LeagueService struct {
	leagues repositories.LeagueConnectionRepository
	sleeper sleeper.ClientInterface
}

func NewLeagueService(leagues repositories.LeagueConnectionRepository, client sleeper.ClientInterface) LeagueServiceInterface {
	return &LeagueService{
		leagues: leagues,
		sleeper: client,
	}
}

func (l *LeagueService) ConnectLeague(ctx context.Context, accountID uuid.UUID, leagueID string) (*response_models.LeagueResponse, error) {
	if leagueID == "" {
		return nil, utils.ErrInvalidInput
	}

	league, err := l.sleeper.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	users, err := l.sleeper.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	conn := &db_models.LeagueConnection{
		AccountID:    accountID,
		LeagueID:     leagueID,
		LeagueName:   league.Name,
		TotalRosters: league.TotalRosters,
	}
	// A reconnect keeps the previous team selection.
	if existing, err := l.leagues.FindByAccountAndLeague(ctx, accountID, leagueID); err == nil && existing != nil {
		conn.SelectedTeamID = existing.SelectedTeamID
		conn.SelectedTeamName = existing.SelectedTeamName
	}

	if err := l.leagues.Upsert(ctx, conn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Connected league %q (%s, %d teams) for account %s", league.Name, leagueID, league.TotalRosters, accountID)

	teams := make([]response_models.LeagueTeam, 0, len(users))
	for _, u := range users {
		teams = append(teams, response_models.LeagueTeam{
			UserID:      u.UserID,
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
		})
	}

	return &response_models.LeagueResponse{
		LeagueID:     leagueID,
		Name:         league.Name,
		Season:       league.Season,
		TotalRosters: league.TotalRosters,
		Teams:        teams,
	}, nil
}

func (l *LeagueService) SelectTeam(ctx context.Context, accountID uuid.UUID, leagueID, teamID string) (*response_models.TeamSelectionResponse, error) {
	conn, err := l.leagues.FindByAccountAndLeague(ctx, accountID, leagueID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conn == nil {
		return nil, utils.ErrLeagueNotConnected
	}

	users, err := l.sleeper.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	var selected *sleeper.LeagueUser
	for i := range users {
		if users[i].UserID == teamID {
			selected = &users[i]
			break
		}
	}
	if selected == nil {
		return nil, utils.ErrTeamNotFound
	}

	conn.SelectedTeamID = selected.UserID
	conn.SelectedTeamName = selected.DisplayName
	if err := l.leagues.Upsert(ctx, conn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TeamSelectionResponse{
		LeagueID:         leagueID,
		SelectedTeamID:   selected.UserID,
		SelectedTeamName: selected.DisplayName,
	}, nil
}

func (l *LeagueService) ListConnections(ctx context.Context, accountID uuid.UUID) ([]response_models.LeagueConnectionResponse, error) {
	conns, err := l.leagues.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.LeagueConnectionResponse, 0, len(conns))
	for _, c := range conns {
		out = append(out, response_models.LeagueConnectionResponse{
			LeagueID:         c.LeagueID,
			LeagueName:       c.LeagueName,
			TotalRosters:     c.TotalRosters,
			SelectedTeamID:   c.SelectedTeamID,
			SelectedTeamName: c.SelectedTeamName,
		})
	}
	return out, nil
}
