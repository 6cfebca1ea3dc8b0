package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
)

type ctxKey string

const (
	ctxKeyUserID    ctxKey = "user_id"
	ctxKeyUserEmail ctxKey = "user_email"
	ctxKeyIsAdmin   ctxKey = "is_admin"
)

// AuthMiddleware проверяет JWT из заголовка Authorization и кладёт
// данные пользователя в контекст запроса.
type AuthMiddleware struct {
	cfg    *cfg.AuthCfg
	logger logger.Logger
}

func NewAuthMiddleware(cfg *cfg.AuthCfg, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, logger: logger}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			WriteError(w, e.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(m.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			m.logger.Debugf("token rejected: %v", err)
			WriteError(w, e.ErrUnauthorized)
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			WriteError(w, e.ErrUnauthorized)
			return
		}

		email, _ := claims["email"].(string)
		isAdmin, _ := claims["admin"].(bool)

		ctx := context.WithValue(r.Context(), ctxKeyUserID, int64(sub))
		ctx = context.WithValue(ctx, ctxKeyUserEmail, email)
		ctx = context.WithValue(ctx, ctxKeyIsAdmin, isAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только пользователей с правами администратора.
// Должен стоять после Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin, ok := r.Context().Value(ctxKeyIsAdmin).(bool)
		if !ok || !isAdmin {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func userIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(ctxKeyUserID).(int64)
	if !ok {
		return 0, e.ErrUnauthorized
	}

	return id, nil
}
