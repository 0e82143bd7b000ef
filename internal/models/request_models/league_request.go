package request_models

type ConnectLeagueRequest struct {
	LeagueID string `form:"league_id" json:"league_id" binding:"required"`
}

type SelectTeamRequest struct {
	LeagueID string `form:"league_id" json:"league_id" binding:"required"`
	TeamID   string `form:"team_id" json:"team_id" binding:"required"`
}
