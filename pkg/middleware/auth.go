package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/composables"
)

// SessionVerifier resolves a session cookie value to a user, or nil when the
// session cannot be verified. Implementations must never fail: verification
// problems yield an anonymous request, not an error.
type SessionVerifier interface {
	Verify(ctx context.Context, sid string) *user.User
}

// Authorize resolves the session once per request. When the browser sent a
// session cookie it is verified against the backend; on success the user is
// stored in the context. Every outcome proceeds to the next handler exactly
// once; an unverifiable session just leaves the request anonymous.
func Authorize(verifier SessionVerifier, sidCookieKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				cookie, err := r.Cookie(sidCookieKey)
				if err != nil || cookie.Value == "" {
					next.ServeHTTP(w, r)
					return
				}
				ctx := composables.WithSessionID(r.Context(), cookie.Value)
				if u := verifier.Verify(ctx, cookie.Value); u != nil {
					ctx = composables.WithUser(ctx, u)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// RequireRoles guards the wrapped routes. Anonymous requests are redirected
// to the login page; authenticated requests with a role outside the
// allow-list are redirected to the root route, which resolves to the role's
// own dashboard. An empty allow-list admits any authenticated user. The
// decision is made fresh on every request.
func RequireRoles(roles ...user.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				u, err := composables.UseUser(r.Context())
				if err != nil {
					http.Redirect(w, r, "/login", http.StatusFound)
					return
				}
				if !u.In(roles) {
					http.Redirect(w, r, "/", http.StatusFound)
					return
				}
				next.ServeHTTP(w, r)
			},
		)
	}
}
