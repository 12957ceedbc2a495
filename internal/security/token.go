package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"minisocial/internal/model"
)

// TokenService issues and verifies stateless HMAC-signed access tokens.
// The secret, algorithm and TTL come from the immutable process
// configuration; changing the secret invalidates every issued token.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(secret string, algorithm string, ttl time.Duration) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based", algorithm)
	}

	return &TokenService{secret: []byte(secret), method: method, ttl: ttl}, nil
}

func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(s.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature before the expiry claim (jwt/v5 parses in
// that order), so a forged token is reported as invalid whether or not
// its exp has passed. Callers see exactly two failure kinds.
func (s *TokenService) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return model.TokenClaims{}, model.ErrTokenInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.TokenClaims{}, model.ErrTokenExpired
	case err != nil || !token.Valid:
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	return model.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
