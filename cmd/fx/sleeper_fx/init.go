package sleeper_fx

import (
	"os"

	"go.uber.org/fx"

	"dynastytrade/pkg/sleeper"
)

var Module = fx.Provide(
	provideSleeperClient)

func provideSleeperClient() sleeper.ClientInterface {
	baseURL := os.Getenv("SLEEPER_BASE_URL")
	if baseURL == "" {
		baseURL = sleeper.DefaultBaseURL
	}
	return sleeper.NewClient(baseURL)
}
