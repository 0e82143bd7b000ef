package advisor

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// MockAdvisor produces deterministic output so the product stays usable
// without an OpenAI key. It is also the fallback target for the live advisor.
type MockAdvisor struct{}

func NewMockAdvisor() *MockAdvisor {
	return &MockAdvisor{}
}

var mockSuggestions = []TradeSuggestion{
	{
		ID:            1,
		FairnessScore: 92,
		UserGives:     []string{"Christian McCaffrey", "2025 2nd Round Pick"},
		UserReceives:  []string{"Ja'Marr Chase", "Tony Pollard"},
		TradePartner:  "Dynasty Warriors",
		Reasoning:     "This trade helps you get younger at WR while maintaining RB depth. Chase is an elite long-term asset perfect for dynasty. You're trading peak value CMC for sustained production.",
	},
	{
		ID:            2,
		FairnessScore: 88,
		UserGives:     []string{"Travis Kelce", "Derrick Henry"},
		UserReceives:  []string{"Kyle Pitts", "Breece Hall", "2025 1st Round Pick"},
		TradePartner:  "Championship Chasers",
		Reasoning:     "Perfect rebuild move if that's your strategy. You're trading aging veterans for young talent with massive upside. Pitts could return to elite form, Hall is a stud RB.",
	},
	{
		ID:            3,
		FairnessScore: 85,
		UserGives:     []string{"Cooper Kupp", "2024 3rd Round Pick"},
		UserReceives:  []string{"DK Metcalf", "Rachaad White"},
		TradePartner:  "Fantasy Fanatics",
		Reasoning:     "Age-based swap that gives you a younger WR1 in Metcalf plus RB depth. Kupp is still elite but Metcalf has more dynasty runway ahead.",
	},
}

func (m *MockAdvisor) SuggestTrades(ctx context.Context, team TeamContext, prefs TradePreferences, maxSuggestions int) []TradeSuggestion {
	trades := make([]TradeSuggestion, 0, len(mockSuggestions))

	switch prefs.Strategy {
	case "rebuild":
		for _, t := range mockSuggestions {
			if strings.Contains(t.Reasoning, "young") || strings.Contains(t.Reasoning, "rebuild") {
				trades = append(trades, t)
			}
		}
	case "contend":
		for _, t := range mockSuggestions {
			if strings.Contains(t.Reasoning, "contend") || strings.Contains(t.Reasoning, "win now") {
				trades = append(trades, t)
			}
		}
	default:
		trades = append(trades, mockSuggestions...)
	}

	if len(trades) > 3 {
		trades = trades[:3]
	}
	if maxSuggestions > 0 && len(trades) > maxSuggestions {
		trades = trades[:maxSuggestions]
	}
	return trades
}

func (m *MockAdvisor) EvaluateTrade(ctx context.Context, teamAPlayers, teamBPlayers []string) TradeEvaluation {
	teamAValue := len(teamAPlayers)*50 + len(teamAPlayers)*10
	teamBValue := len(teamBPlayers)*55 + len(teamBPlayers)*8

	highest := teamAValue
	if teamBValue > highest {
		highest = teamBValue
	}

	fairness := 0.0
	if highest > 0 {
		diff := math.Abs(float64(teamAValue - teamBValue))
		fairness = math.Max(0, 100-diff/float64(highest)*100)
	}

	winner := "Even"
	if fairness < 90 {
		if teamAValue > teamBValue {
			winner = "Team A"
		} else {
			winner = "Team B"
		}
	}

	return TradeEvaluation{
		TeamAValue:    teamAValue,
		TeamBValue:    teamBValue,
		FairnessScore: int(math.Round(fairness)),
		Winner:        winner,
		Analysis: fmt.Sprintf(
			"Team A offers %d player(s) with estimated value of %d. Team B offers %d player(s) with estimated value of %d. The trade favors %s.",
			len(teamAPlayers), teamAValue, len(teamBPlayers), teamBValue, winner),
		Recommendations: "Consider adding draft picks or additional players to balance the trade if needed.",
	}
}
