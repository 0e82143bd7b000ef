package advisor

import "context"

// TradePreferences captures what the user is optimizing for.
type TradePreferences struct {
	Strategy        string   // contend, rebuild, balanced
	RiskTolerance   string   // low, medium, high
	PositionNeeds   []string
	AdditionalNotes string
}

type TradeSuggestion struct {
	ID            int      `json:"id"`
	FairnessScore int      `json:"fairness_score"`
	UserGives     []string `json:"user_gives"`
	UserReceives  []string `json:"user_receives"`
	TradePartner  string   `json:"trade_partner"`
	Reasoning     string   `json:"reasoning"`
}

type TradeEvaluation struct {
	TeamAValue      int    `json:"team_a_value"`
	TeamBValue      int    `json:"team_b_value"`
	FairnessScore   int    `json:"fairness_score"`
	Winner          string `json:"winner"`
	Analysis        string `json:"analysis"`
	Recommendations string `json:"recommendations"`
}

type OpposingTeam struct {
	Name    string
	Players []string
}

// TeamContext is the roster snapshot handed to the advisor.
type TeamContext struct {
	LeagueName string
	TeamName   string
	UserRoster []string
	OtherTeams []OpposingTeam
}

// TradeAdvisorInterface never returns an error: the live implementation
// degrades to the deterministic mock output when the upstream misbehaves,
// so callers always get a usable result.
type TradeAdvisorInterface interface {
	SuggestTrades(ctx context.Context, team TeamContext, prefs TradePreferences, maxSuggestions int) []TradeSuggestion
	EvaluateTrade(ctx context.Context, teamAPlayers, teamBPlayers []string) TradeEvaluation
}
