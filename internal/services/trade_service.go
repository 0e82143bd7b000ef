package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/models/request_models"
	"dynastytrade/internal/models/response_models"
	"dynastytrade/internal/repositories"
	"dynastytrade/pkg/advisor"
	"dynastytrade/pkg/sleeper"
	"dynastytrade/pkg/utils"
)

// Context-size limits for the advisor prompt, matching what keeps the model
// focused: a slice of the user's roster and a handful of rival teams.
const (
	maxRosterPlayers   = 15
	maxOpposingTeams   = 5
	maxOpposingPlayers = 8
)

type TradeServiceInterface interface {
	GenerateTrades(ctx context.Context, account *db_models.Account, request request_models.GenerateTradesRequest) (*response_models.TradeSuggestionsResponse, error)
	EvaluateTrade(ctx context.Context, account *db_models.Account, request request_models.CalculateTradeRequest) (*response_models.TradeEvaluationResponse, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.TradeRecordResponse, error)
}

type TradeService struct {
	accounts repositories.AccountRepository
	leagues  repositories.LeagueConnectionRepository
	trades   repositories.TradeRecordRepository
	sleeper  sleeper.ClientInterface
	advisor  advisor.TradeAdvisorInterface
}

func NewTradeService(
	accounts repositories.AccountRepository,
	leagues repositories.LeagueConnectionRepository,
	trades repositories.TradeRecordRepository,
	client sleeper.ClientInterface,
	adv advisor.TradeAdvisorInterface,
) TradeServiceInterface {
	return &TradeService{
		accounts: accounts,
		leagues:  leagues,
		trades:   trades,
		sleeper:  client,
		advisor:  adv,
	}
}

// GenerateTrades runs the trade pipeline: limit gate, roster fetch, advisor
// call, then the persisted record plus counter increment. The early limit
// check fails fast; the conditional increment at the end is what actually
// guarantees the cap under concurrent requests.
func (t *TradeService) GenerateTrades(ctx context.Context, account *db_models.Account, request request_models.GenerateTradesRequest) (*response_models.TradeSuggestionsResponse, error) {
	if account.AtTradeLimit() {
		return nil, utils.ErrTradeLimitExceeded
	}

	conn, err := t.leagues.FindByAccountAndLeague(ctx, account.ID, request.LeagueID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conn == nil || !conn.TeamSelected() {
		return nil, utils.ErrLeagueNotConnected
	}

	team, err := t.buildTeamContext(ctx, conn)
	if err != nil {
		return nil, err
	}

	prefs := advisor.TradePreferences{
		Strategy:        defaultString(request.Strategy, "balanced"),
		RiskTolerance:   defaultString(request.RiskTolerance, "medium"),
		PositionNeeds:   request.PositionNeeds,
		AdditionalNotes: request.AdditionalNotes,
	}

	suggestions := t.advisor.SuggestTrades(ctx, *team, prefs, account.MaxSuggestions())

	if err := t.accounts.IncrementTradeCount(ctx, account.ID, db_models.FreeTradeLimit); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"preferences": map[string]interface{}{
			"strategy":       prefs.Strategy,
			"risk_tolerance": prefs.RiskTolerance,
			"position_needs": prefs.PositionNeeds,
		},
		"suggestions": suggestions,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	record := &db_models.TradeRecord{
		AccountID: account.ID,
		LeagueID:  request.LeagueID,
		Kind:      db_models.TradeKindSuggestion,
		Payload:   payload,
	}
	if err := t.trades.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Generated %d trade suggestions for account %s in league %s", len(suggestions), account.ID, request.LeagueID)

	return &response_models.TradeSuggestionsResponse{
		LeagueID:    request.LeagueID,
		TeamName:    conn.SelectedTeamName,
		Suggestions: suggestions,
		TradeCount:  account.TradeCount + 1,
	}, nil
}

// EvaluateTrade scores a proposed trade. Evaluations are recorded in trade
// history but never count against the plan cap.
func (t *TradeService) EvaluateTrade(ctx context.Context, account *db_models.Account, request request_models.CalculateTradeRequest) (*response_models.TradeEvaluationResponse, error) {
	teamA := splitPlayers(request.TeamAPlayers)
	teamB := splitPlayers(request.TeamBPlayers)
	if len(teamA) == 0 || len(teamB) == 0 {
		return nil, utils.ErrInvalidInput
	}

	result := t.advisor.EvaluateTrade(ctx, teamA, teamB)

	payload, err := json.Marshal(map[string]interface{}{
		"team_a_players": teamA,
		"team_b_players": teamB,
		"result":         result,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	record := &db_models.TradeRecord{
		AccountID: account.ID,
		LeagueID:  request.LeagueID,
		Kind:      db_models.TradeKindEvaluation,
		Payload:   payload,
	}
	if err := t.trades.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TradeEvaluationResponse{
		TeamAPlayers: teamA,
		TeamBPlayers: teamB,
		Result:       result,
	}, nil
}

func (t *TradeService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.TradeRecordResponse, error) {
	records, err := t.trades.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TradeRecordResponse, 0, len(records))
	for _, r := range records {
		var payload interface{}
		if err := json.Unmarshal(r.Payload, &payload); err != nil {
			payload = string(r.Payload)
		}
		out = append(out, response_models.TradeRecordResponse{
			ID:        r.ID.String(),
			LeagueID:  r.LeagueID,
			Kind:      string(r.Kind),
			Payload:   payload,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// buildTeamContext assembles the roster snapshot the advisor prompt needs:
// league, users, rosters and the player name map, each a single Sleeper call.
func (t *TradeService) buildTeamContext(ctx context.Context, conn *db_models.LeagueConnection) (*advisor.TeamContext, error) {
	league, err := t.sleeper.GetLeague(ctx, conn.LeagueID)
	if err != nil {
		return nil, err
	}

	users, err := t.sleeper.GetUsers(ctx, conn.LeagueID)
	if err != nil {
		return nil, err
	}

	rosters, err := t.sleeper.GetRosters(ctx, conn.LeagueID)
	if err != nil {
		return nil, err
	}

	players, err := t.sleeper.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	var userRoster *sleeper.Roster
	for i := range rosters {
		if rosters[i].OwnerID == conn.SelectedTeamID {
			userRoster = &rosters[i]
			break
		}
	}
	if userRoster == nil {
		return nil, utils.ErrTeamNotFound
	}

	ownerNames := make(map[string]string, len(users))
	for _, u := range users {
		ownerNames[u.UserID] = u.DisplayName
	}

	team := &advisor.TeamContext{
		LeagueName: league.Name,
		TeamName:   conn.SelectedTeamName,
		UserRoster: describePlayers(userRoster.Players, players, maxRosterPlayers),
	}

	for _, roster := range rosters {
		if roster.OwnerID == conn.SelectedTeamID {
			continue
		}
		if len(team.OtherTeams) >= maxOpposingTeams {
			break
		}
		name := ownerNames[roster.OwnerID]
		if name == "" {
			name = "Unknown Team"
		}
		team.OtherTeams = append(team.OtherTeams, advisor.OpposingTeam{
			Name:    name,
			Players: describePlayers(roster.Players, players, maxOpposingPlayers),
		})
	}

	return team, nil
}

func describePlayers(ids []string, players map[string]sleeper.Player, limit int) []string {
	out := make([]string, 0, limit)
	for _, id := range ids {
		if len(out) >= limit {
			break
		}
		p, ok := players[id]
		if !ok {
			continue
		}
		name := p.FullName
		if name == "" {
			name = "Unknown"
		}
		position := p.Position
		if position == "" {
			position = "N/A"
		}
		out = append(out, fmt.Sprintf("%s (%s)", name, position))
	}
	return out
}

func splitPlayers(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
