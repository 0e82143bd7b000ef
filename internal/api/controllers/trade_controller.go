package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dynastytrade/internal/models/request_models"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/middleware"
	"dynastytrade/pkg/utils"
)

type TradeController struct {
	tradeService services.TradeServiceInterface
}

func NewTradeController(tradeService services.TradeServiceInterface) *TradeController {
	return &TradeController{
		tradeService: tradeService,
	}
}

// GenerateTrades godoc
// @Summary Generate AI trade suggestions
// @Description Build suggestions for the selected team, subject to the plan's trade limit
// @Tags Trades
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTradesRequest true "Trade preferences payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades/generate [post]
func (t *TradeController) GenerateTrades(c *gin.Context) {
	var req request_models.GenerateTradesRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	result, err := t.tradeService.GenerateTrades(c.Request.Context(), account, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, "trade_results.html", gin.H{
			"TeamName":    result.TeamName,
			"LeagueID":    result.LeagueID,
			"Suggestions": result.Suggestions,
			"TradeCount":  result.TradeCount,
			"Plan":        account.Plan,
		})
		return
	}

	utils.RespondSuccess(c, result, "Trade suggestions generated")
}

// EvaluateTrade godoc
// @Summary Evaluate a proposed trade
// @Description Score both sides of a trade and report fairness
// @Tags Trades
// @Accept json
// @Produce json
// @Param request body request_models.CalculateTradeRequest true "Trade evaluation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades/calculate [post]
func (t *TradeController) EvaluateTrade(c *gin.Context) {
	var req request_models.CalculateTradeRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	result, err := t.tradeService.EvaluateTrade(c.Request.Context(), account, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, "calculator_result.html", gin.H{
			"Result":       result.Result,
			"TeamAPlayers": result.TeamAPlayers,
			"TeamBPlayers": result.TeamBPlayers,
		})
		return
	}

	utils.RespondSuccess(c, result, "Trade evaluated")
}

// History godoc
// @Summary List the account's past suggestions and evaluations
// @Tags Trades
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades/history [get]
func (t *TradeController) History(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := t.tradeService.History(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Trade history fetched successfully")
}

// wantsHTML reports whether the client asked for a rendered page rather
// than a JSON body. Browser form posts send text/html in Accept.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
