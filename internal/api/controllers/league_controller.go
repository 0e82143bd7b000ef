package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dynastytrade/internal/models/request_models"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/middleware"
	"dynastytrade/pkg/utils"
)

type LeagueController struct {
	leagueService services.LeagueServiceInterface
}

func NewLeagueController(leagueService services.LeagueServiceInterface) *LeagueController {
	return &LeagueController{
		leagueService: leagueService,
	}
}

// ConnectLeague godoc
// @Summary Connect a Sleeper league
// @Description Fetch league details from Sleeper and link it to the account
// @Tags Leagues
// @Accept json
// @Produce json
// @Param request body request_models.ConnectLeagueRequest true "League connection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leagues/connect [post]
func (l *LeagueController) ConnectLeague(c *gin.Context) {
	var req request_models.ConnectLeagueRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	league, err := l.leagueService.ConnectLeague(c.Request.Context(), account.ID, req.LeagueID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, league, "League connected successfully")
}

// SelectTeam godoc
// @Summary Select the user's team in a connected league
// @Tags Leagues
// @Accept json
// @Produce json
// @Param request body request_models.SelectTeamRequest true "Team selection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leagues/select-team [post]
func (l *LeagueController) SelectTeam(c *gin.Context) {
	var req request_models.SelectTeamRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	selection, err := l.leagueService.SelectTeam(c.Request.Context(), account.ID, req.LeagueID, req.TeamID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, selection, "Team selected successfully")
}

// ListConnections godoc
// @Summary List the account's connected leagues
// @Tags Leagues
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leagues [get]
func (l *LeagueController) ListConnections(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	connections, err := l.leagueService.ListConnections(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, connections, "Leagues fetched successfully")
}
