package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/internal/service/accounts"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "недостаточно прав"
)

// TokenParser интерфейс проверки токена
type TokenParser interface {
	ParseToken(tokenString string) (*accounts.Claims, error)
}

// Auth middleware аутентификации: проверяет Bearer токен и кладет
// идентификатор пользователя и роль в контекст запроса
func Auth(parser TokenParser) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := parser.ParseToken(tokenString)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			ctx = context.WithValue(ctx, roleKey, domain.Role(claims.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole middleware авторизации: пропускает только перечисленные роли
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// UserIDFromContext возвращает идентификатор пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// RoleFromContext возвращает роль пользователя из контекста запроса
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}
