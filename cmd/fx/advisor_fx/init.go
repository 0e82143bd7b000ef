package advisor_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"dynastytrade/pkg/advisor"
)

var Module = fx.Provide(
	provideTradeAdvisor)

// provideTradeAdvisor picks the advisor backend from the environment. With
// no API key the deterministic mock serves every request, which keeps the
// app fully usable in development.
func provideTradeAdvisor() advisor.TradeAdvisorInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, using mock trade advisor")
		return advisor.NewMockAdvisor()
	}

	model := os.Getenv("OPENAI_MODEL")
	log.Println("Initializing OpenAI trade advisor")
	return advisor.NewOpenAIAdvisor(apiKey, model)
}
