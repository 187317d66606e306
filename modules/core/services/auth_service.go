package services

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hosteldesk/portal/modules/core/domain/session"
	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/configuration"
	"github.com/hosteldesk/portal/pkg/eventbus"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

const (
	loginMethodPassword = "password"
	loginMethodGoogle   = "google"
)

// AuthService is the single owner of session state transitions. Verification
// and logout absorb their failures so rendering is never blocked; login
// failures are surfaced to the calling handler.
type AuthService struct {
	api      *hostelapi.Client
	eventBus eventbus.EventBus
	logger   *logrus.Logger
}

func NewAuthService(api *hostelapi.Client, eventBus eventbus.EventBus, logger *logrus.Logger) *AuthService {
	return &AuthService{
		api:      api,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Verify resolves a session cookie to a user. Any failure (network, rejected
// session, malformed response) is logged and yields nil. It never returns an
// error: an unverifiable session means an anonymous request.
func (s *AuthService) Verify(ctx context.Context, sid string) *user.User {
	u, err := s.api.VerifySession(ctx, sid)
	if err != nil {
		s.logger.WithError(err).Debug("session verification failed")
		return nil
	}
	if !u.Role.Valid() {
		s.logger.WithField("role", u.Role).Warn("session user has unknown role")
		return nil
	}
	return u
}

// Login authenticates against the backend and re-issues the backend session
// cookie for the portal domain. The error is returned to the caller so the
// login form can react; concurrent calls are not deduplicated.
func (s *AuthService) Login(ctx context.Context, creds hostelapi.Credentials) (*user.User, *http.Cookie, error) {
	result, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.WithError(err).WithField("email", creds.Email).Info("login failed")
		return nil, nil, err
	}
	s.publishCreated(ctx, result.User, loginMethodPassword)
	return result.User, s.sessionCookie(result.SessionCookie.Value, result.SessionCookie.Expires), nil
}

// LoginWithGoogle has the same contract as Login with an alternate
// credential exchange: the Google token is forwarded to the backend.
func (s *AuthService) LoginWithGoogle(ctx context.Context, token string) (*user.User, *http.Cookie, error) {
	result, err := s.api.LoginWithGoogle(ctx, token)
	if err != nil {
		s.logger.WithError(err).Info("google login failed")
		return nil, nil, err
	}
	s.publishCreated(ctx, result.User, loginMethodGoogle)
	return result.User, s.sessionCookie(result.SessionCookie.Value, result.SessionCookie.Expires), nil
}

// Logout invalidates the backend session and always clears the local one.
// Backend failures are logged, never propagated: the user is logged out of
// the portal regardless, and a stale backend session is left to the
// backend's own expiry.
func (s *AuthService) Logout(ctx context.Context, sid string) *http.Cookie {
	if err := s.api.Logout(ctx, sid); err != nil {
		s.logger.WithError(err).Error("backend session invalidation failed")
	}
	if u, err := composables.UseUser(ctx); err == nil {
		ip, _ := composables.UseIP(ctx)
		s.eventBus.Publish(session.DestroyedEvent{
			UserID:    u.ID,
			Role:      u.Role,
			IP:        ip,
			CreatedAt: time.Now(),
		})
	}
	return s.expiredSessionCookie()
}

func (s *AuthService) publishCreated(ctx context.Context, u *user.User, method string) {
	ip, _ := composables.UseIP(ctx)
	userAgent, _ := composables.UseUserAgent(ctx)
	s.eventBus.Publish(session.CreatedEvent{
		User:      *u,
		Method:    method,
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	})
}

func (s *AuthService) sessionCookie(value string, expires time.Time) *http.Cookie {
	conf := configuration.Use()
	domain := ""
	if conf.GoAppEnvironment == configuration.Production {
		domain = conf.Domain
	}
	return &http.Cookie{
		Name:     conf.SidCookieKey,
		Value:    value,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.GoAppEnvironment == configuration.Production,
		Domain:   domain,
		Path:     "/",
	}
}

func (s *AuthService) expiredSessionCookie() *http.Cookie {
	cookie := s.sessionCookie("", time.Unix(1, 0))
	cookie.MaxAge = -1
	return cookie
}
