package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"minisocial/internal/model"
	"minisocial/internal/security"
	"minisocial/pkg/apierror"
)

type UserRepository interface {
	Create(ctx context.Context, account model.Account) error
	FindByID(ctx context.Context, id string) (model.Account, error)
	FindByEmail(ctx context.Context, email string) (model.Account, error)
}

// AuthService implements registration, login and the request-to-identity
// resolution path. Hashing and token operations are pure; the account
// lookup is the only I/O on the resolve path.
type AuthService struct {
	users     UserRepository
	hasher    *security.PasswordHasher
	tokens    *security.TokenService
	dummyHash string
}

func NewAuthService(users UserRepository, hasher *security.PasswordHasher, tokens *security.TokenService) (*AuthService, error) {
	// Precomputed digest burned on unknown-email logins so that path
	// costs the same as a wrong-password login.
	dummyHash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.PublicAccount, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" || email == "" || req.Password == "" {
		return model.PublicAccount{}, apierror.New("BAD_REQUEST", "username, email and password are required", "", http.StatusBadRequest)
	}
	if !strings.Contains(email, "@") {
		return model.PublicAccount{}, apierror.New("BAD_REQUEST", "invalid email address", "email", http.StatusBadRequest)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.PublicAccount{}, err
	}

	account := model.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, account); err != nil {
		return model.PublicAccount{}, err
	}

	return account.Public(), nil
}

// Login trades valid credentials for an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	account, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, model.ErrUserNotFound) {
		s.hasher.Check(req.Password, s.dummyHash)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Check(req.Password, account.PasswordHash) {
		return "", model.ErrInvalidCredentials
	}

	return s.tokens.Issue(account.ID)
}

// Resolve validates a bearer token and recovers the caller's account.
// Every failure collapses to a 401 at the handler boundary; the variant
// is preserved internally for logging.
func (s *AuthService) Resolve(ctx context.Context, tokenString string) (model.Account, error) {
	if strings.TrimSpace(tokenString) == "" {
		return model.Account{}, model.ErrAuthMissing
	}

	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return model.Account{}, err
	}

	// A forged subject must not produce a different observable error
	// than a bad signature.
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return model.Account{}, model.ErrTokenInvalid
	}

	account, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return model.Account{}, err
	}

	return account, nil
}
