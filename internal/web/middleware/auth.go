package middleware

import (
	"context"
	"net/http"

	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookieName is the cookie carrying the opaque session token
	SessionCookieName = "session"
)

// GetSession retrieves the resolved session from the request context.
// Returns nil when the request carried no valid session token.
func GetSession(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

// WithSession returns middleware that resolves the session cookie and
// stores the session in the request context. An absent, unknown or
// expired token leaves the request anonymous; it never blocks.
func WithSession(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := resolveSession(r, authService)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser returns middleware that only admits sessions carrying a
// user identity. Everyone else is redirected to the user login page;
// the protected handler never runs. An admin session does not pass:
// there is no role hierarchy.
func RequireUser() func(http.Handler) http.Handler {
	return requireRole((*session.Session).IsUser, "/login")
}

// RequireAdmin returns middleware that only admits sessions carrying an
// admin identity. A user session is redirected to the admin login page
// like any other unauthenticated request.
func RequireAdmin() func(http.Handler) http.Handler {
	return requireRole((*session.Session).IsAdmin, "/admin/login")
}

func requireRole(allowed func(*session.Session) bool, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed(GetSession(r.Context())) {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveSession(r *http.Request, authService *auth.Service) *session.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	sess, err := authService.Resolve(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}
