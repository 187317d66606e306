package hostelapi

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type StudentProfile struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Hostel     string `json:"hostel"`
	RoomNumber string `json:"roomNumber"`
	Year       string `json:"year,omitempty"`
}

type Reporter struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Image string `json:"image,omitempty"`
}

type Complaint struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	Hostel          string    `json:"hostel"`
	RoomNumber      string    `json:"roomNumber"`
	ReportedBy      Reporter  `json:"reportedBy"`
	Images          []string  `json:"images,omitempty"`
	ResolutionNotes string    `json:"resolutionNotes,omitempty"`
	CreatedDate     time.Time `json:"createdDate"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

type CreateComplaint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Hostel      string `json:"hostel,omitempty"`
	RoomNumber  string `json:"roomNumber,omitempty"`
}

// StudentProfile fetches the profile record for the given user. An empty
// userID fails before any request is sent.
func (c *Client) StudentProfile(ctx context.Context, sid, userID string) (*StudentProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}
	var env dataEnvelope[*StudentProfile]
	if _, err := c.do(ctx, http.MethodGet, "/student/profile/"+userID, sid, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) SubmitComplaint(ctx context.Context, sid string, dto CreateComplaint) (*Complaint, error) {
	var env dataEnvelope[*Complaint]
	if _, err := c.do(ctx, http.MethodPost, "/complaint/student/complaints", sid, nil, dto, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Complaints(ctx context.Context, sid string) ([]Complaint, error) {
	var env dataEnvelope[[]Complaint]
	if _, err := c.do(ctx, http.MethodGet, "/complaint/student/complaints", sid, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
