package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dynastytrade/internal/models/request_models"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/middleware"
	"dynastytrade/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and start a session
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	setSessionCookie(c, auth.Token)
	utils.RespondSuccess(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and start a session
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	setSessionCookie(c, auth.Token)
	utils.RespondSuccess(c, auth, "Login successful")
}

// Logout godoc
// @Summary End the current session
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if token := extractSessionToken(c); token != "" {
		a.accountService.Logout(c.Request.Context(), token)
	}

	clearSessionCookie(c)
	utils.RespondSuccess(c, nil, "Logged out")
}

// Me godoc
// @Summary Get the authenticated account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /me [get]
func (a *AccountController) Me(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	utils.RespondSuccess(c, gin.H{
		"id":          account.ID,
		"name":        account.Name,
		"email":       account.Email,
		"plan":        account.Plan,
		"trade_count": account.TradeCount,
	}, "Account fetched successfully")
}

func setSessionCookie(c *gin.Context, token string) {
	maxAge := int(services.SessionDuration.Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}

func extractSessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
