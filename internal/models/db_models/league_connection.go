package db_models

import "github.com/google/uuid"

// LeagueConnection links an account to a Sleeper league. One row per
// (account, league) pair; re-connecting refreshes the same row.
type LeagueConnection struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"uniqueIndex:idx_account_league"`
	LeagueID         string    `gorm:"uniqueIndex:idx_account_league;size:64"`
	LeagueName       string
	TotalRosters     int
	SelectedTeamID   string
	SelectedTeamName string

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

func (l *LeagueConnection) TeamSelected() bool {
	return l.SelectedTeamID != ""
}
