package db_models

type PlanType string

const (
	PlanFree PlanType = "free"
	PlanPro  PlanType = "pro"
)

// FreeTradeLimit is the number of trade generations a free account gets
// before it has to upgrade.
const FreeTradeLimit = 5

type Account struct {
	BaseModel
	Name             string
	Email            string   `gorm:"unique"`
	PasswordHash     string
	Plan             PlanType `gorm:"size:16;default:free"`
	TradeCount       int      `gorm:"default:0"`
	StripeCustomerID *string  `gorm:"index"`

	LeagueConnections []LeagueConnection `gorm:"constraint:OnDelete:CASCADE"`
	TradeRecords      []TradeRecord      `gorm:"constraint:OnDelete:CASCADE"`
}

func ValidPlan(p PlanType) bool {
	return p == PlanFree || p == PlanPro
}

// MaxSuggestions is how many trade ideas a single generation may return.
func (a *Account) MaxSuggestions() int {
	if a.Plan == PlanPro {
		return 10
	}
	return 5
}

// AtTradeLimit reports whether another generation would exceed the plan cap.
func (a *Account) AtTradeLimit() bool {
	return a.Plan == PlanFree && a.TradeCount >= FreeTradeLimit
}
