package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hosteldesk/portal/modules/student/domain/complaint"
	"github.com/hosteldesk/portal/pkg/eventbus"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

var ErrComplaintNotFound = errors.New("complaint not found")

// StudentService fronts the student-facing backend endpoints. It owns no
// state: every call is forwarded with the caller's session.
type StudentService struct {
	api      *hostelapi.Client
	eventBus eventbus.EventBus
}

func NewStudentService(api *hostelapi.Client, eventBus eventbus.EventBus) *StudentService {
	return &StudentService{
		api:      api,
		eventBus: eventBus,
	}
}

func (s *StudentService) Profile(ctx context.Context, sid, userID string) (*hostelapi.StudentProfile, error) {
	return s.api.StudentProfile(ctx, sid, userID)
}

func (s *StudentService) Complaints(ctx context.Context, sid string) ([]hostelapi.Complaint, error) {
	return s.api.Complaints(ctx, sid)
}

// FindComplaint scans the student's own complaints. The backend exposes no
// single-complaint endpoint for students, so lookup goes through the list.
func (s *StudentService) FindComplaint(ctx context.Context, sid, id string) (*hostelapi.Complaint, error) {
	complaints, err := s.api.Complaints(ctx, sid)
	if err != nil {
		return nil, err
	}
	for i := range complaints {
		if complaints[i].ID == id {
			return &complaints[i], nil
		}
	}
	return nil, ErrComplaintNotFound
}

func (s *StudentService) SubmitComplaint(ctx context.Context, sid, studentID string, dto hostelapi.CreateComplaint) (*hostelapi.Complaint, error) {
	created, err := s.api.SubmitComplaint(ctx, sid, dto)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(complaint.SubmittedEvent{
		Complaint: *created,
		StudentID: studentID,
		CreatedAt: time.Now(),
	})
	return created, nil
}
