package viewmodels

import (
	"time"

	"github.com/hosteldesk/portal/pkg/hostelapi"
)

// Complaint augments the backend record with the display hints the
// dashboards render: badge colors per status and priority.
type Complaint struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	StatusColor     string    `json:"statusColor"`
	Priority        string    `json:"priority"`
	PriorityColor   string    `json:"priorityColor"`
	Hostel          string    `json:"hostel"`
	RoomNumber      string    `json:"roomNumber"`
	Images          []string  `json:"images,omitempty"`
	ResolutionNotes string    `json:"resolutionNotes,omitempty"`
	CreatedDate     time.Time `json:"createdDate"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

func NewComplaint(c hostelapi.Complaint) *Complaint {
	return &Complaint{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		Status:          c.Status,
		StatusColor:     StatusColor(c.Status),
		Priority:        c.Priority,
		PriorityColor:   PriorityColor(c.Priority),
		Hostel:          c.Hostel,
		RoomNumber:      c.RoomNumber,
		Images:          c.Images,
		ResolutionNotes: c.ResolutionNotes,
		CreatedDate:     c.CreatedDate,
		LastUpdated:     c.LastUpdated,
	}
}

func NewComplaints(complaints []hostelapi.Complaint) []*Complaint {
	out := make([]*Complaint, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, NewComplaint(c))
	}
	return out
}

func StatusColor(status string) string {
	switch status {
	case "pending":
		return "yellow"
	case "in-progress":
		return "blue"
	case "resolved":
		return "green"
	case "rejected":
		return "red"
	default:
		return "gray"
	}
}

func PriorityColor(priority string) string {
	switch priority {
	case "low":
		return "green"
	case "medium":
		return "yellow"
	case "high":
		return "red"
	default:
		return "gray"
	}
}
