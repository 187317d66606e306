package complaint

import (
	"time"

	"github.com/hosteldesk/portal/pkg/hostelapi"
)

// SubmittedEvent is published after the backend accepts a new complaint.
type SubmittedEvent struct {
	Complaint hostelapi.Complaint
	StudentID string
	CreatedAt time.Time
}
