package response_models

import "dynastytrade/pkg/advisor"

type TradeSuggestionsResponse struct {
	LeagueID    string                    `json:"league_id"`
	TeamName    string                    `json:"team_name"`
	Suggestions []advisor.TradeSuggestion `json:"suggestions"`
	TradeCount  int                       `json:"trade_count"`
}

type TradeEvaluationResponse struct {
	TeamAPlayers []string                `json:"team_a_players"`
	TeamBPlayers []string                `json:"team_b_players"`
	Result       advisor.TradeEvaluation `json:"result"`
}

type TradeRecordResponse struct {
	ID        string      `json:"id"`
	LeagueID  string      `json:"league_id,omitempty"`
	Kind      string      `json:"kind"`
	Payload   interface{} `json:"payload"`
	CreatedAt int64       `json:"created_at"`
}

type CreateCheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}
