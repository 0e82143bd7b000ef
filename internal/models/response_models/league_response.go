package response_models

type LeagueTeam struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
}

type LeagueResponse struct {
	LeagueID     string       `json:"league_id"`
	Name         string       `json:"name"`
	Season       string       `json:"season"`
	TotalRosters int          `json:"total_rosters"`
	Teams        []LeagueTeam `json:"teams"`
}

type TeamSelectionResponse struct {
	LeagueID         string `json:"league_id"`
	SelectedTeamID   string `json:"selected_team_id"`
	SelectedTeamName string `json:"selected_team_name"`
}

type LeagueConnectionResponse struct {
	LeagueID         string `json:"league_id"`
	LeagueName       string `json:"league_name"`
	TotalRosters     int    `json:"total_rosters"`
	SelectedTeamID   string `json:"selected_team_id,omitempty"`
	SelectedTeamName string `json:"selected_team_name,omitempty"`
}
