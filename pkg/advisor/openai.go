package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an expert dynasty fantasy football analyst."

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdvisor asks a chat-completion model for trade ideas. Any transport
// or parse failure degrades to the mock payload instead of erroring: the
// caller-facing contract is that advice is always available.
type OpenAIAdvisor struct {
	client   chatCompleter
	model    string
	fallback *MockAdvisor
}

func NewOpenAIAdvisor(apiKey, model string) *OpenAIAdvisor {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIAdvisor{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: NewMockAdvisor(),
	}
}

func (a *OpenAIAdvisor) SuggestTrades(ctx context.Context, team TeamContext, prefs TradePreferences, maxSuggestions int) []TradeSuggestion {
	prompt := buildSuggestionPrompt(team, prefs, maxSuggestions)

	content, err := a.complete(ctx, prompt, 2000, 0.7)
	if err != nil {
		log.Printf("openai suggest failed, using mock output: %v", err)
		return a.fallback.SuggestTrades(ctx, team, prefs, maxSuggestions)
	}

	var parsed struct {
		Trades []TradeSuggestion `json:"trades"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil || len(parsed.Trades) == 0 {
		log.Printf("openai suggest returned unparseable output, using mock: %v", err)
		return a.fallback.SuggestTrades(ctx, team, prefs, maxSuggestions)
	}

	if maxSuggestions > 0 && len(parsed.Trades) > maxSuggestions {
		parsed.Trades = parsed.Trades[:maxSuggestions]
	}
	return parsed.Trades
}

func (a *OpenAIAdvisor) EvaluateTrade(ctx context.Context, teamAPlayers, teamBPlayers []string) TradeEvaluation {
	prompt := buildEvaluationPrompt(teamAPlayers, teamBPlayers)

	content, err := a.complete(ctx, prompt, 1000, 0.3)
	if err != nil {
		log.Printf("openai evaluate failed, using mock output: %v", err)
		return a.fallback.EvaluateTrade(ctx, teamAPlayers, teamBPlayers)
	}

	var result TradeEvaluation
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &result); err != nil {
		log.Printf("openai evaluate returned unparseable output, using mock: %v", err)
		return a.fallback.EvaluateTrade(ctx, teamAPlayers, teamBPlayers)
	}
	return result
}

func (a *OpenAIAdvisor) complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildSuggestionPrompt(team TeamContext, prefs TradePreferences, maxSuggestions int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert dynasty fantasy football trade analyzer. Based on the following context, suggest %d realistic and fair trades.\n\n", maxSuggestions)
	fmt.Fprintf(&b, "League: %s\n", team.LeagueName)
	fmt.Fprintf(&b, "User's Current Roster: %s\n\n", strings.Join(team.UserRoster, ", "))

	b.WriteString("Other Teams Available for Trades:\n")
	for _, other := range team.OtherTeams {
		fmt.Fprintf(&b, "%s: %s\n", other.Name, strings.Join(other.Players, ", "))
	}

	needs := "None specified"
	if len(prefs.PositionNeeds) > 0 {
		needs = strings.Join(prefs.PositionNeeds, ", ")
	}
	notes := prefs.AdditionalNotes
	if notes == "" {
		notes = "None"
	}

	fmt.Fprintf(&b, "\nUser Preferences:\n- Strategy: %s\n- Risk Tolerance: %s\n- Position Needs: %s\n- Additional Notes: %s\n",
		prefs.Strategy, prefs.RiskTolerance, needs, notes)

	b.WriteString(`
For each trade suggestion, provide the specific players/picks being traded, which team receives what, a fairness score (0-100), and detailed reasoning.

Format your response as JSON with this structure:
{
  "trades": [
    {
      "id": 1,
      "fairness_score": 85,
      "user_gives": ["Player Name 1", "2025 2nd Round Pick"],
      "user_receives": ["Player Name 2", "Player Name 3"],
      "trade_partner": "Team Name",
      "reasoning": "Detailed explanation of why this trade works"
    }
  ]
}

Make sure trades are realistic, fair, and align with the user's stated preferences.`)

	return b.String()
}

func buildEvaluationPrompt(teamAPlayers, teamBPlayers []string) string {
	return fmt.Sprintf(`Analyze this fantasy football trade and provide a detailed breakdown:

Team A gives: %s
Team B gives: %s

Provide a JSON response with:
{
  "team_a_value": numeric_value,
  "team_b_value": numeric_value,
  "fairness_score": 0-100,
  "winner": "Team A", "Team B", or "Even",
  "analysis": "detailed explanation",
  "recommendations": "suggestions to balance if needed"
}

Consider current player values, age, injury history, and dynasty relevance.`,
		strings.Join(teamAPlayers, ", "), strings.Join(teamBPlayers, ", "))
}

// stripCodeFences unwraps ```json ... ``` blocks some models insist on.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
