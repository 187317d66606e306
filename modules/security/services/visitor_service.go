package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hosteldesk/portal/pkg/hostelapi"
)

var ErrVisitorNotFound = errors.New("visitor not found")

// VisitorFilter narrows the visitor log. Zero values mean "no constraint";
// Status additionally treats "all" as no constraint so the query parameter
// can be passed through untouched.
type VisitorFilter struct {
	Status string
	Date   string // calendar day, YYYY-MM-DD
	Query  string
}

func (f VisitorFilter) Match(v hostelapi.Visitor) bool {
	if f.Status != "" && f.Status != "all" && v.Status != f.Status {
		return false
	}
	if f.Date != "" && v.DateTime.Format("2006-01-02") != f.Date {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(v.Name), q) &&
			!strings.Contains(strings.ToLower(v.Phone), q) &&
			!strings.Contains(strings.ToLower(v.RoomNumber), q) {
			return false
		}
	}
	return true
}

type VisitorStats struct {
	Total      int `json:"total"`
	CheckedIn  int `json:"checkedIn"`
	CheckedOut int `json:"checkedOut"`
	Today      int `json:"today"`
}

// Filter returns the visitors matching the filter, preserving order.
func Filter(visitors []hostelapi.Visitor, f VisitorFilter) []hostelapi.Visitor {
	out := make([]hostelapi.Visitor, 0, len(visitors))
	for _, v := range visitors {
		if f.Match(v) {
			out = append(out, v)
		}
	}
	return out
}

// Stats summarizes the full visitor log regardless of any active filter.
func Stats(visitors []hostelapi.Visitor, now time.Time) VisitorStats {
	today := now.Format("2006-01-02")
	stats := VisitorStats{Total: len(visitors)}
	for _, v := range visitors {
		switch v.Status {
		case hostelapi.VisitorCheckedIn:
			stats.CheckedIn++
		case hostelapi.VisitorCheckedOut:
			stats.CheckedOut++
		}
		if v.DateTime.Format("2006-01-02") == today {
			stats.Today++
		}
	}
	return stats
}

// VisitorService fronts the security backend endpoints and applies the
// in-memory filtering the guard dashboard needs.
type VisitorService struct {
	api *hostelapi.Client
}

func NewVisitorService(api *hostelapi.Client) *VisitorService {
	return &VisitorService{api: api}
}

// Visitors returns the filtered log along with stats over the unfiltered
// log, so the summary cards stay stable while the list is narrowed.
func (s *VisitorService) Visitors(ctx context.Context, sid string, f VisitorFilter) ([]hostelapi.Visitor, VisitorStats, error) {
	all, err := s.api.Visitors(ctx, sid)
	if err != nil {
		return nil, VisitorStats{}, err
	}
	return Filter(all, f), Stats(all, time.Now()), nil
}

// UpdateStatus flips a visitor between checked in and checked out. The
// visitor is located in the current log first; the backend returns the
// updated record.
func (s *VisitorService) UpdateStatus(ctx context.Context, sid, id, status string) (*hostelapi.Visitor, error) {
	all, err := s.api.Visitors(ctx, sid)
	if err != nil {
		return nil, err
	}
	for _, v := range all {
		if v.ID != id {
			continue
		}
		v.Status = status
		v.DateTime = time.Now()
		return s.api.UpdateVisitor(ctx, sid, v)
	}
	return nil, ErrVisitorNotFound
}
