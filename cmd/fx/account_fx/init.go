package account_fx

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"dynastytrade/internal/api/controllers"
	"dynastytrade/internal/repositories"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer,
	provideAccountService,
	provideAccountController)

func provideTokenIssuer() *utils.TokenIssuer {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatal("SECRET_KEY is required in release mode")
		}
		log.Println("SECRET_KEY not set, using development default")
		secret = "dev-secret-change-me"
	}
	return utils.NewTokenIssuer(secret)
}

func provideAccountService(
	accounts repositories.AccountRepository,
	sessions repositories.SessionRepository,
	tokens *utils.TokenIssuer,
) services.AccountServiceInterface {
	return services.NewAccountService(accounts, sessions, tokens)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
