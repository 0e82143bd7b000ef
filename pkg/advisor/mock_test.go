package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSuggestTradesDeterministic(t *testing.T) {
	m := NewMockAdvisor()

	first := m.SuggestTrades(context.Background(), TeamContext{}, TradePreferences{}, 5)
	second := m.SuggestTrades(context.Background(), TeamContext{}, TradePreferences{}, 5)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "Dynasty Warriors", first[0].TradePartner)
	assert.Equal(t, 92, first[0].FairnessScore)
}

func TestMockSuggestTradesRespectsMax(t *testing.T) {
	m := NewMockAdvisor()

	trades := m.SuggestTrades(context.Background(), TeamContext{}, TradePreferences{}, 1)

	require.Len(t, trades, 1)
	assert.Equal(t, 1, trades[0].ID)
}

func TestMockSuggestTradesRebuildStrategy(t *testing.T) {
	m := NewMockAdvisor()

	trades := m.SuggestTrades(context.Background(), TeamContext{}, TradePreferences{Strategy: "rebuild"}, 5)

	require.NotEmpty(t, trades)
	for _, trade := range trades {
		assert.True(t,
			containsAny(trade.Reasoning, "young", "rebuild"),
			"rebuild suggestion should mention youth: %s", trade.Reasoning)
	}
}

func TestMockEvaluateTradeEvenSides(t *testing.T) {
	m := NewMockAdvisor()

	result := m.EvaluateTrade(context.Background(),
		[]string{"Player A"}, []string{"Player B"})

	assert.Equal(t, 60, result.TeamAValue)
	assert.Equal(t, 63, result.TeamBValue)
	assert.Equal(t, 95, result.FairnessScore)
	assert.Equal(t, "Even", result.Winner)
}

func TestMockEvaluateTradeLopsided(t *testing.T) {
	m := NewMockAdvisor()

	result := m.EvaluateTrade(context.Background(),
		[]string{"A", "B", "C"}, []string{"D"})

	assert.Equal(t, 180, result.TeamAValue)
	assert.Equal(t, 63, result.TeamBValue)
	assert.Equal(t, "Team A", result.Winner)
	assert.Less(t, result.FairnessScore, 90)
	assert.Contains(t, result.Analysis, "Team A")
}

func TestMockEvaluateTradeEmptySides(t *testing.T) {
	m := NewMockAdvisor()

	result := m.EvaluateTrade(context.Background(), nil, nil)

	assert.Equal(t, 0, result.TeamAValue)
	assert.Equal(t, 0, result.TeamBValue)
	assert.Equal(t, 0, result.FairnessScore)
	assert.Equal(t, "Team B", result.Winner)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
