package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minisocial/internal/model"
)

const testSecret = "test-secret-key"

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc, err := NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testSecret, "HS256", -time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc, err := NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	tampered := tamperSignature(t, token)
	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestTamperedAndExpiredReportsInvalid(t *testing.T) {
	// Signature verification runs before the expiry check, so a forged
	// token never reveals whether its exp has passed.
	svc, err := NewTokenService(testSecret, "HS256", -time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	tampered := tamperSignature(t, token)
	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewTokenService("other-secret", "HS256", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	issuer, err := NewTokenService(testSecret, "HS384", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, err := NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tokenString)
		require.ErrorIs(t, err, model.ErrTokenInvalid)
	}
}

func TestNewTokenServiceRejectsNonHMAC(t *testing.T) {
	_, err := NewTokenService(testSecret, "RS256", time.Hour)
	require.Error(t, err)

	_, err = NewTokenService(testSecret, "nope", time.Hour)
	require.Error(t, err)
}

// tamperSignature flips the first character of the signature segment so
// the decoded signature bytes are guaranteed to change.
func tamperSignature(t *testing.T, token string) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	require.NotEmpty(t, parts[2])

	flipped := byte('A')
	if parts[2][0] == flipped {
		flipped = 'Q'
	}
	parts[2] = string(flipped) + parts[2][1:]

	return strings.Join(parts, ".")
}
