package composables

import (
	"context"
	"errors"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/constants"
)

var (
	ErrNoUser      = errors.New("no user in context")
	ErrNoSessionID = errors.New("no session id in context")
)

// UseUser returns the verified session user from the context.
func UseUser(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(constants.UserKey).(*user.User)
	if !ok || u == nil {
		return nil, ErrNoUser
	}
	return u, nil
}

// WithUser returns a new context carrying the verified session user.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, constants.UserKey, u)
}

// UseSessionID returns the raw session cookie value from the context. It is
// present whenever the browser sent a session cookie, even if verification
// against the backend failed.
func UseSessionID(ctx context.Context) (string, error) {
	sid, ok := ctx.Value(constants.SessionIDKey).(string)
	if !ok || sid == "" {
		return "", ErrNoSessionID
	}
	return sid, nil
}

// WithSessionID returns a new context carrying the raw session cookie value.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, constants.SessionIDKey, sid)
}
