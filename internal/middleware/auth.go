package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"minisocial/internal/model"
)

type identityResolver interface {
	Resolve(ctx context.Context, token string) (model.Account, error)
}

type contextKey string

const accountContextKey contextKey = "auth_account"

type AuthMiddleware struct {
	resolver identityResolver
}

func NewAuthMiddleware(resolver identityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth resolves the bearer token to an account and stores it in
// the request context. Every failure variant produces the same 401
// body; the variant is only logged.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			slog.Debug("request unauthorized", "reason", model.ErrAuthMissing, "path", r.URL.Path)
			writeUnauthorized(w)
			return
		}

		token := strings.TrimSpace(header[len("bearer "):])
		account, err := m.resolver.Resolve(r.Context(), token)
		if err != nil {
			slog.Debug("request unauthorized", "reason", err, "path", r.URL.Path)
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AccountFromContext(ctx context.Context) (model.Account, bool) {
	account, ok := ctx.Value(accountContextKey).(model.Account)
	return account, ok
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: model.APIErrorBody{
			Code:    "UNAUTHORIZED",
			Message: "invalid or expired credentials",
		},
	})
}
