package hostelapi

import (
	"context"
	"net/http"
	"time"
)

const (
	VisitorCheckedIn  = "Checked In"
	VisitorCheckedOut = "Checked Out"
)

type Visitor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	RoomNumber string    `json:"roomNumber"`
	VisitingTo string    `json:"visitingTo,omitempty"`
	Status     string    `json:"status"`
	DateTime   time.Time `json:"DateTime"`
}

func (c *Client) Visitors(ctx context.Context, sid string) ([]Visitor, error) {
	var env dataEnvelope[[]Visitor]
	if _, err := c.do(ctx, http.MethodGet, "/visitor/security", sid, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UpdateVisitor records a check-in or check-out and returns the updated
// record so callers can patch their local list.
func (c *Client) UpdateVisitor(ctx context.Context, sid string, v Visitor) (*Visitor, error) {
	var env dataEnvelope[*Visitor]
	if _, err := c.do(ctx, http.MethodPut, "/visitor/security/"+v.ID, sid, nil, v, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
