package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/models/request_models"
	"dynastytrade/internal/models/response_models"
	"dynastytrade/internal/repositories"
	"dynastytrade/pkg/utils"
)

// SessionDuration is how long an issued session stays valid.
const SessionDuration = 7 * 24 * time.Hour

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	SignIn(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	// ResolveSession maps a raw token to its account. Missing, malformed,
	// revoked and expired tokens are all ErrUnauthenticated.
	ResolveSession(ctx context.Context, token string) (*db_models.Account, error)
	Logout(ctx context.Context, token string) error
	UpgradePlan(ctx context.Context, accountID uuid.UUID, plan db_models.PlanType) error
}

type AccountService struct {
	accounts repositories.AccountRepository
	sessions repositories.SessionRepository
	tokens   *utils.TokenIssuer
}

func NewAccountService(
	accounts repositories.AccountRepository,
	sessions repositories.SessionRepository,
	tokens *utils.TokenIssuer,
) AccountServiceInterface {
	return &AccountService{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	plan := db_models.PlanType(request.Plan)
	if plan == "" {
		plan = db_models.PlanFree
	}
	if !db_models.ValidPlan(plan) {
		return nil, utils.ErrInvalidInput
	}

	existing, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Plan:         plan,
	}
	account.ID = uuid.New()

	if err := a.accounts.Insert(ctx, account); err != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	log.Printf("Created account %s with plan %s", email, plan)
	return a.issueSession(ctx, account)
}

func (a *AccountService) SignIn(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	account, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueSession(ctx, account)
}

func (a *AccountService) ResolveSession(ctx context.Context, token string) (*db_models.Account, error) {
	if token == "" {
		return nil, utils.ErrUnauthenticated
	}

	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	session, err := a.sessions.FindActive(ctx, sessionID, time.Now().Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrUnauthenticated
	}

	account, err := a.accounts.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUnauthenticated
	}

	return account, nil
}

func (a *AccountService) Logout(ctx context.Context, token string) error {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		// Nothing to revoke for tokens we cannot attribute.
		return nil
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil
	}

	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) UpgradePlan(ctx context.Context, accountID uuid.UUID, plan db_models.PlanType) error {
	if !db_models.ValidPlan(plan) {
		return utils.ErrInvalidInput
	}
	if err := a.accounts.UpdatePlan(ctx, accountID, plan); err != nil {
		return utils.ErrDatabaseError
	}
	log.Printf("Account %s moved to plan %s", accountID, plan)
	return nil
}

// issueSession writes exactly one session row and signs a token around it.
func (a *AccountService) issueSession(ctx context.Context, account *db_models.Account) (*response_models.AuthResponse, error) {
	expiresAt := time.Now().Add(SessionDuration)

	session := &db_models.UserSession{
		AccountID: account.ID,
		ExpiresAt: expiresAt.Unix(),
	}
	session.ID = uuid.New()

	if err := a.sessions.Insert(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := a.tokens.Issue(session.ID, account.ID, expiresAt)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:         account.ID.String(),
		Name:       account.Name,
		Email:      account.Email,
		Plan:       string(account.Plan),
		TradeCount: account.TradeCount,
	}
}
