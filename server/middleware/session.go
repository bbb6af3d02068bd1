package middleware

import (
	"context"
	"net/http"

	"food-picker/auth"
	"food-picker/server/respond"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type adminKey struct{}

// SessionResolver maps a session token to the admin username.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// RequireAdmin rejects requests without a live admin session with 401 and
// stores the admin username in the request context otherwise.
func RequireAdmin(sessions SessionResolver, log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := sessions.Resolve(r.Context(), auth.TokenFromRequest(r))
			if err != nil {
				respond.Error(w, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), username)))
		})
	}
}

func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey{}, username)
}

// AdminFromContext returns the authenticated admin, or "" when there is none.
func AdminFromContext(ctx context.Context) string {
	username, _ := ctx.Value(adminKey{}).(string)
	return username
}
