package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/composables"
)

type stubVerifier struct {
	user *user.User
}

func (s *stubVerifier) Verify(_ context.Context, _ string) *user.User {
	return s.user
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func withUser(r *http.Request, u *user.User) *http.Request {
	return r.WithContext(composables.WithUser(r.Context(), u))
}

func TestRequireRoles_AnonymousRedirectsToLogin(t *testing.T) {
	handler := RequireRoles(user.Student)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/student", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireRoles_WrongRoleRedirectsToRoot(t *testing.T) {
	handler := RequireRoles(user.Student)(okHandler())

	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodGet, "/student", nil), &user.User{ID: "u1", Role: user.Guard})
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireRoles_AllowedRolePasses(t *testing.T) {
	handler := RequireRoles(user.Student, user.Warden)(okHandler())

	for _, role := range []user.Role{user.Student, user.Warden} {
		rec := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodGet, "/x", nil), &user.User{ID: "u1", Role: role})
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestRequireRoles_EmptyListAdmitsAnyAuthenticated(t *testing.T) {
	handler := RequireRoles()(okHandler())

	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodGet, "/x", nil), &user.User{ID: "u1", Role: user.Maintenance})
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorize_NoCookieLeavesRequestAnonymous(t *testing.T) {
	var sawUser bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := composables.UseUser(r.Context())
		sawUser = err == nil
	})
	handler := Authorize(&stubVerifier{}, "sid")(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.False(t, sawUser)
}

func TestAuthorize_VerifiedCookieSetsUserAndSession(t *testing.T) {
	var gotUser *user.User
	var gotSid string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = composables.UseUser(r.Context())
		gotSid, _ = composables.UseSessionID(r.Context())
	})
	handler := Authorize(&stubVerifier{user: &user.User{ID: "u1", Role: user.Student}}, "sid")(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, gotUser)
	require.Equal(t, "u1", gotUser.ID)
	require.Equal(t, "abc", gotSid)
}

func TestAuthorize_UnverifiableCookieStaysAnonymous(t *testing.T) {
	var reachedNext, sawUser bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedNext = true
		_, err := composables.UseUser(r.Context())
		sawUser = err == nil
	})
	handler := Authorize(&stubVerifier{}, "sid")(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "stale"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, reachedNext)
	require.False(t, sawUser)
}
