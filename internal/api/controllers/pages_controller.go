package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/middleware"
	"dynastytrade/pkg/utils"
)

// PagesController serves the server-rendered pages of the app.
type PagesController struct {
	accountService services.AccountServiceInterface
	leagueService  services.LeagueServiceInterface
}

func NewPagesController(
	accountService services.AccountServiceInterface,
	leagueService services.LeagueServiceInterface,
) *PagesController {
	return &PagesController{
		accountService: accountService,
		leagueService:  leagueService,
	}
}

// Landing serves the signup/login page. A visitor with a live session is
// sent straight to the dashboard.
func (p *PagesController) Landing(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if _, err := p.accountService.ResolveSession(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}

	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Title": "Dynasty Trade Analyzer",
	})
}

// Dashboard shows the account's leagues and trade tools.
func (p *PagesController) Dashboard(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	connections, err := p.leagueService.ListConnections(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Account":     account,
		"Connections": connections,
		"IsPro":       account.Plan == db_models.PlanPro,
		"TradeLimit":  db_models.FreeTradeLimit,
	})
}

// Upgrade shows the pro plan pitch and the checkout entry point.
func (p *PagesController) Upgrade(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "upgrade.html", gin.H{
		"Account": account,
		"IsPro":   account.Plan == db_models.PlanPro,
	})
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
