package payment_fx

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"dynastytrade/internal/api/controllers"
	"dynastytrade/internal/repositories"
	"dynastytrade/internal/services"
)

var Module = fx.Provide(
	provideStripeConfig,
	providePaymentService,
	providePaymentController)

func provideStripeConfig() services.StripeConfig {
	cfg := services.StripeConfig{
		SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		EndpointSecret: os.Getenv("STRIPE_ENDPOINT_SECRET"),
		AppBaseURL:     os.Getenv("APP_BASE_URL"),
	}
	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = "http://localhost:" + portOrDefault()
	}
	if cfg.SecretKey == "" {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatal("STRIPE_SECRET_KEY is required in release mode")
		}
		log.Println("STRIPE_SECRET_KEY not set, checkout will be unavailable")
	}
	return cfg
}

func providePaymentService(
	accounts repositories.AccountRepository,
	transactions repositories.TransactionRepository,
	cfg services.StripeConfig,
) services.PaymentServiceInterface {
	return services.NewPaymentService(accounts, transactions, cfg)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}

func portOrDefault() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
