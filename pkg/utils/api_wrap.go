package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Please sign in to access this feature")
	case errors.Is(err, ErrTradeLimitExceeded):
		RespondError(c, http.StatusForbidden, "You have reached the trade limit for the free plan. Upgrade to Pro for unlimited trades.")
	case errors.Is(err, ErrLeagueNotFound):
		RespondError(c, http.StatusNotFound, "League not found. Please check your league ID.")
	case errors.Is(err, ErrTeamNotFound):
		RespondError(c, http.StatusNotFound, "Team not found in this league")
	case errors.Is(err, ErrLeagueNotConnected):
		RespondError(c, http.StatusBadRequest, "Please complete league setup first")
	case errors.Is(err, ErrSleeperUnavailable):
		RespondError(c, http.StatusBadGateway, "Sleeper API is currently unavailable. Please try again later.")
	case errors.Is(err, ErrPaymentUnavailable):
		RespondError(c, http.StatusBadGateway, "Payment system temporarily unavailable. Please try again later.")
	case errors.Is(err, ErrInvalidWebhookSignature):
		RespondError(c, http.StatusBadRequest, "Webhook signature verification failed")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
