package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dynastytrade/cmd/fx/account_fx"
	"dynastytrade/cmd/fx/advisor_fx"
	"dynastytrade/cmd/fx/controllers_fx"
	"dynastytrade/cmd/fx/league_fx"
	"dynastytrade/cmd/fx/payment_fx"
	"dynastytrade/cmd/fx/sleeper_fx"
	"dynastytrade/cmd/fx/storage_fx"
	"dynastytrade/cmd/fx/trade_fx"
	"dynastytrade/internal/api/controllers"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		storage_fx.Module,
		sleeper_fx.Module,
		advisor_fx.Module,
		account_fx.Module,
		league_fx.Module,
		trade_fx.Module,
		payment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	leagueController *controllers.LeagueController,
	tradeController *controllers.TradeController,
	paymentController *controllers.PaymentController,
	pagesController *controllers.PagesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("templates/*")

	RegisterRoutes(r, accountService, accountController, leagueController,
		tradeController, paymentController, pagesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	leagueController *controllers.LeagueController,
	tradeController *controllers.TradeController,
	paymentController *controllers.PaymentController,
	pagesController *controllers.PagesController) {

	r.GET("/", pagesController.Landing)
	r.GET("/health", controllers.Health)
	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)
	r.POST("/logout", accountController.Logout)
	r.POST("/webhook/stripe", paymentController.HandleWebhook)

	protected := r.Group("/")
	protected.Use(middleware.SessionMiddleware(accountService))

	protected.GET("/me", accountController.Me)
	protected.GET("/dashboard", pagesController.Dashboard)
	protected.GET("/upgrade", pagesController.Upgrade)

	leagues := protected.Group("/leagues")
	leagues.GET("", leagueController.ListConnections)
	leagues.POST("/connect", leagueController.ConnectLeague)
	leagues.POST("/select-team", leagueController.SelectTeam)

	trades := protected.Group("/trades")
	trades.POST("/generate", tradeController.GenerateTrades)
	trades.POST("/calculate", tradeController.EvaluateTrade)
	trades.GET("/history", tradeController.History)

	protected.POST("/payments/create-checkout", paymentController.CreateCheckout)
	protected.GET("/payment-success", paymentController.PaymentSuccess)
	protected.GET("/payment-cancel", paymentController.PaymentCancel)
}
