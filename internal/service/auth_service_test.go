package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"minisocial/internal/model"
	"minisocial/internal/security"
	"minisocial/pkg/apierror"
)

func newAuthFixture(t *testing.T, ttl time.Duration) (*AuthService, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := security.NewPasswordHasher(4)
	tokens, err := security.NewTokenService("test-secret-key", "HS256", ttl)
	require.NoError(t, err)

	svc, err := NewAuthService(users, hasher, tokens)
	require.NoError(t, err)

	return svc, users
}

func registerAlice(t *testing.T, svc *AuthService) model.PublicAccount {
	t.Helper()

	account, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	return account
}

func TestRegisterCreatesAccount(t *testing.T) {
	svc, users := newAuthFixture(t, time.Hour)

	account := registerAlice(t, svc)
	require.Equal(t, "alice", account.Username)
	require.Equal(t, "a@x.com", account.Email)

	_, err := uuid.Parse(account.ID)
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, users := newAuthFixture(t, time.Hour)

	account, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "bob",
		Email:    "  B@X.Com ",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "b@x.com", account.Email)

	_, err = users.FindByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "alice2",
		Email:    "a@x.com",
		Password: "secret456",
	})
	require.ErrorIs(t, err, model.ErrUserAlreadyExists)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)

	cases := []model.RegisterRequest{
		{Username: "", Email: "a@x.com", Password: "secret123"},
		{Username: "alice", Email: "", Password: "secret123"},
		{Username: "alice", Email: "a@x.com", Password: ""},
		{Username: "alice", Email: "not-an-email", Password: "secret123"},
	}

	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)
	account := registerAlice(t, svc)

	token, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, account.ID, resolved.ID)
	require.Equal(t, "alice", resolved.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)
	registerAlice(t, svc)

	_, wrongPassword := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, wrongPassword, model.ErrInvalidCredentials)

	_, unknownEmail := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@x.com", Password: "secret123"})
	require.ErrorIs(t, unknownEmail, model.ErrInvalidCredentials)

	require.Equal(t, wrongPassword, unknownEmail)
}

func TestResolveMissingToken(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)

	_, err := svc.Resolve(context.Background(), "")
	require.ErrorIs(t, err, model.ErrAuthMissing)

	_, err = svc.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, model.ErrAuthMissing)
}

func TestResolveGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)

	_, err := svc.Resolve(context.Background(), "not.a.token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestResolveExpiredToken(t *testing.T) {
	svc, _ := newAuthFixture(t, -time.Minute)
	registerAlice(t, svc)

	expired, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), expired)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestResolveNonUUIDSubject(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Hour)

	tokens, err := security.NewTokenService("test-secret-key", "HS256", time.Hour)
	require.NoError(t, err)
	forged, err := tokens.Issue("not-a-uuid")
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), forged)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestResolveDeletedAccount(t *testing.T) {
	svc, users := newAuthFixture(t, time.Hour)
	account := registerAlice(t, svc)

	token, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	users.delete(account.ID)

	_, err = svc.Resolve(context.Background(), token)
	require.ErrorIs(t, err, model.ErrUserNotFound)
}
