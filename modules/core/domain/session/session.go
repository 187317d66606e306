package session

import (
	"time"

	"github.com/hosteldesk/portal/modules/core/domain/user"
)

// CreatedEvent is published after a successful credential or Google login.
type CreatedEvent struct {
	User      user.User
	Method    string // "password" or "google"
	IP        string
	UserAgent string
	CreatedAt time.Time
}

// DestroyedEvent is published on logout, whether or not the backend
// invalidation succeeded.
type DestroyedEvent struct {
	UserID    string
	Role      user.Role
	IP        string
	CreatedAt time.Time
}
