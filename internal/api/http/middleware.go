package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type ctxKey int

const userCtxKey ctxKey = iota

// extractToken pulls the value of a "Bearer <token>" authorization header.
func extractToken(authorizationHeader string) string {
	scheme, value, found := strings.Cut(authorizationHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return value
}

// authenticator resolves the bearer token to a user and stores it in the
// request context. Requests without a valid token get a 401.
func (s *Server) authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r.Header.Get("Authorization"))
		if token == "" {
			respondError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		user, err := s.auth.UserFromToken(r.Context(), token)
		if err != nil {
			respondError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly rejects non-admin users with a 403. Must run after authenticator.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil || user.Role != entity.RoleAdmin {
			respondError(w, r, http.StatusForbidden, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userCtxKey).(*entity.User)
	return user
}
