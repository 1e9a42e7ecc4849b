package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/services/auth"
	"github.com/rs/zerolog"
)

type ctxKey int

const userKey ctxKey = 0

// UserFromContext returns the authenticated user placed by RequireAuth.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// WithUser is exported for handler tests.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// RequireAuth resolves the bearer token and rejects the request before it
// reaches any handler when the identity cannot be established.
func RequireAuth(svc auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			token := bearerToken(req)
			if token == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			user, err := svc.Authenticate(req.Context(), token)
			if err != nil {
				zerolog.Ctx(req.Context()).Debug().Err(err).Msg("token rejected")
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, req.WithContext(WithUser(req.Context(), *user)))
		})
	}
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
