package league_fx

import (
	"go.uber.org/fx"

	"dynastytrade/internal/api/controllers"
	"dynastytrade/internal/repositories"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/sleeper"
)

var Module = fx.Provide(
	provideLeagueService,
	provideLeagueController)

func provideLeagueService(
	leagues repositories.LeagueConnectionRepository,
	client sleeper.ClientInterface,
) services.LeagueServiceInterface {
	return services.NewLeagueService(leagues, client)
}

func provideLeagueController(leagueService services.LeagueServiceInterface) *controllers.LeagueController {
	return controllers.NewLeagueController(leagueService)
}
