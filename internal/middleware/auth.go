package middleware

import (
	"RestAPIFurb/internal/auth"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenVerifier проверяет токен и возвращает claims.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// WithAuth пропускает запрос только с валидным "Authorization: Bearer <token>"
// и кладёт claims в контекст. Иначе 401.
func WithAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeUnauthorized(w, "Token não fornecido")
				return
			}
			claims, err := v.VerifyToken(token)
			if err != nil {
				logger.Debugw("auth: token rejected", "error", err)
				writeUnauthorized(w, "Token inválido")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext достаёт claims, положенные WithAuth.
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok && c != nil
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
