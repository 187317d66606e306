package hostelapi

import (
	"context"
	"net/http"

	"github.com/hosteldesk/portal/modules/core/domain/user"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the authenticated user and the backend session cookie
// to be re-issued to the browser.
type LoginResult struct {
	User          *user.User
	SessionCookie *http.Cookie
}

type userEnvelope struct {
	User *user.User `json:"user"`
}

// VerifySession asks the backend who the session cookie belongs to.
func (c *Client) VerifySession(ctx context.Context, sid string) (*user.User, error) {
	var env userEnvelope
	if _, err := c.do(ctx, http.MethodGet, "/auth/verify", sid, nil, nil, &env); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, &RequestError{Status: http.StatusUnauthorized, Message: "no active session"}
	}
	return env.User, nil
}

// Login exchanges credentials for a backend session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var env userEnvelope
	cookies, err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, creds, &env)
	if err != nil {
		return nil, err
	}
	return c.loginResult(env.User, cookies)
}

// LoginWithGoogle exchanges a Google ID token for a backend session. The
// credential exchange itself happens at the backend.
func (c *Client) LoginWithGoogle(ctx context.Context, token string) (*LoginResult, error) {
	var env userEnvelope
	body := map[string]string{"token": token}
	cookies, err := c.do(ctx, http.MethodPost, "/auth/google", "", nil, body, &env)
	if err != nil {
		return nil, err
	}
	return c.loginResult(env.User, cookies)
}

// Logout invalidates the backend session.
func (c *Client) Logout(ctx context.Context, sid string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", sid, nil, nil, nil)
	return err
}

func (c *Client) loginResult(u *user.User, cookies []*http.Cookie) (*LoginResult, error) {
	if u == nil {
		return nil, &RequestError{Status: http.StatusBadGateway, Message: "login response carried no user"}
	}
	result := &LoginResult{User: u}
	for _, cookie := range cookies {
		if cookie.Name == c.sidCookieKey {
			result.SessionCookie = cookie
			break
		}
	}
	if result.SessionCookie == nil {
		return nil, &RequestError{Status: http.StatusBadGateway, Message: "login response carried no session cookie"}
	}
	return result, nil
}
