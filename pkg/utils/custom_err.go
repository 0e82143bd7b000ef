package utils

import "errors"

var (
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrUnauthenticated         = errors.New("authentication required")
	ErrTradeLimitExceeded      = errors.New("trade limit reached for current plan")
	ErrLeagueNotFound          = errors.New("league not found")
	ErrTeamNotFound            = errors.New("team not found in league")
	ErrLeagueNotConnected      = errors.New("league not connected")
	ErrSleeperUnavailable      = errors.New("sleeper api unavailable")
	ErrPaymentUnavailable      = errors.New("payment provider unavailable")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidInput            = errors.New("invalid input")
	ErrDatabaseError           = errors.New("database error")
)
