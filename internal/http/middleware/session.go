package middleware

import (
	"context"
	"net/http"

	"github.com/labelforge/labelpress/internal/httputil"
	"github.com/labelforge/labelpress/pkg/domain"
	"github.com/labelforge/labelpress/pkg/session"
)

type contextKey string

// SessionKey is the context key for the verified session.
const SessionKey contextKey = "session"

// FailurePolicy decides the response when a protected route is hit
// without a verifiable session.
type FailurePolicy func(w http.ResponseWriter, r *http.Request)

// FailRedirect sends the browser to the given location, the recovery
// path for protected pages.
func FailRedirect(location string) FailurePolicy {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}

// FailUnauthorized answers 401 with a defined error, the recovery path
// for protected writes.
func FailUnauthorized(w http.ResponseWriter, r *http.Request) {
	httputil.Text(w, http.StatusUnauthorized, domain.ErrAuthenticationRequired.Error())
}

// RequireSession creates middleware that verifies the signed session
// cookie before the handler runs. Every protected route goes through
// this guard; handlers never read the cookie themselves.
func RequireSession(store *session.Store, onFail FailurePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value, ok := httputil.GetSessionCookie(r)
			if !ok {
				onFail(w, r)
				return
			}

			sess, err := store.Verify(value)
			if err != nil {
				onFail(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the verified session from the request context.
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*domain.Session)
	return sess, ok
}
