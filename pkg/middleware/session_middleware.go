package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/services"
	"dynastytrade/pkg/utils"
)

const (
	// SessionCookieName carries the session token for browser clients.
	SessionCookieName = "session_token"
	// AccountContextKey is where the authenticated account is stored on the
	// request context.
	AccountContextKey = "account"
)

// SessionMiddleware resolves the session token from the Authorization header
// or the session cookie and attaches the owning account to the context.
// Requests with no live session are rejected.
func SessionMiddleware(accounts services.AccountServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		account, err := accounts.ResolveSession(c.Request.Context(), token)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(AccountContextKey, account)
		c.Next()
	}
}

// AccountFromContext returns the account attached by SessionMiddleware.
func AccountFromContext(c *gin.Context) (*db_models.Account, bool) {
	v, ok := c.Get(AccountContextKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*db_models.Account)
	return account, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
