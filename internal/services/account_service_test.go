package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/models/request_models"
	"dynastytrade/pkg/memstore"
	"dynastytrade/pkg/utils"
)

func newTestAccountService() (AccountServiceInterface, *memstore.AccountStore, *memstore.SessionStore) {
	accounts := memstore.NewAccountStore()
	sessions := memstore.NewSessionStore()
	svc := NewAccountService(accounts, sessions, utils.NewTokenIssuer("test-secret"))
	return svc, accounts, sessions
}

func TestSignUpAndResolveSession(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	auth, err := svc.SignUp(ctx, request_models.SignUpRequest{
		Name:     "Alex",
		Email:    "Alex@Example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, "alex@example.com", auth.Account.Email)
	assert.Equal(t, "free", auth.Account.Plan)

	account, err := svc.ResolveSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", account.Email)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, request_models.SignUpRequest{Email: "A@B.com", Password: "pw"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestSignUpRejectsUnknownPlan(t *testing.T) {
	svc, _, _ := newTestAccountService()

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Email:    "plan@b.com",
		Password: "pw",
		Plan:     "platinum",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "correct"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, request_models.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAccountService()

	_, err := svc.SignIn(context.Background(), request_models.LoginRequest{Email: "ghost@b.com", Password: "pw"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestResolveSessionAfterLogout(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	auth, err := svc.SignUp(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.Token))

	_, err = svc.ResolveSession(ctx, auth.Token)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestResolveSessionGarbageToken(t *testing.T) {
	svc, _, _ := newTestAccountService()

	_, err := svc.ResolveSession(context.Background(), "garbage")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.ResolveSession(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestResolveSessionForeignSignature(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	auth, err := svc.SignUp(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	other := NewAccountService(memstore.NewAccountStore(), memstore.NewSessionStore(), utils.NewTokenIssuer("other-secret"))
	_, err = other.ResolveSession(ctx, auth.Token)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestLogoutGarbageTokenIsSilent(t *testing.T) {
	svc, _, _ := newTestAccountService()

	assert.NoError(t, svc.Logout(context.Background(), "garbage"))
}

func TestUpgradePlan(t *testing.T) {
	svc, accounts, _ := newTestAccountService()
	ctx := context.Background()

	auth, err := svc.SignUp(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	account, err := accounts.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.UpgradePlan(ctx, account.ID, db_models.PlanPro))

	resolved, err := svc.ResolveSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Equal(t, db_models.PlanPro, resolved.Plan)

	assert.ErrorIs(t, svc.UpgradePlan(ctx, account.ID, "platinum"), utils.ErrInvalidInput)
}
