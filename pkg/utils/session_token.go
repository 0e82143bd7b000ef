package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of a signed session token. The token is only
// half of the story: SessionID must still resolve to a live user_sessions row,
// so logout and server-side expiry work regardless of the embedded exp.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (t *TokenIssuer) Issue(sessionID, accountID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID.String(),
		AccountID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	return claims, nil
}
