package request_models

type GenerateTradesRequest struct {
	LeagueID        string   `form:"league_id" json:"league_id" binding:"required"`
	Strategy        string   `form:"strategy" json:"strategy"`
	RiskTolerance   string   `form:"risk_tolerance" json:"risk_tolerance"`
	PositionNeeds   []string `form:"position_needs" json:"position_needs"`
	AdditionalNotes string   `form:"additional_notes" json:"additional_notes"`
}

// CalculateTradeRequest carries the two sides of a proposed trade, one
// player per line, the way the calculator form submits them.
type CalculateTradeRequest struct {
	LeagueID     string `form:"league_id" json:"league_id"`
	TeamAPlayers string `form:"team_a_players" json:"team_a_players" binding:"required"`
	TeamBPlayers string `form:"team_b_players" json:"team_b_players" binding:"required"`
}
