package trade_fx

import (
	"go.uber.org/fx"

	"dynastytrade/internal/api/controllers"
	"dynastytrade/internal/repositories"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/advisor"
	"dynastytrade/pkg/sleeper"
)

var Module = fx.Provide(
	provideTradeService,
	provideTradeController)

func provideTradeService(
	accounts repositories.AccountRepository,
	leagues repositories.LeagueConnectionRepository,
	trades repositories.TradeRecordRepository,
	client sleeper.ClientInterface,
	adv advisor.TradeAdvisorInterface,
) services.TradeServiceInterface {
	return services.NewTradeService(accounts, leagues, trades, client, adv)
}

func provideTradeController(tradeService services.TradeServiceInterface) *controllers.TradeController {
	return controllers.NewTradeController(tradeService)
}
