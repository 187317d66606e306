package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/portal/modules/student/domain/complaint"
	"github.com/hosteldesk/portal/pkg/eventbus"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

func newTestStudentService(t *testing.T, handler http.Handler) (*StudentService, eventbus.EventBus) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api, err := hostelapi.New(hostelapi.Options{BaseURL: srv.URL})
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	bus := eventbus.NewEventPublisher(logger)
	return NewStudentService(api, bus), bus
}

func TestFindComplaint_LocatesByID(t *testing.T) {
	service, _ := newTestStudentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"id": "c1", "title": "First"}, {"id": "c2", "title": "Second"}]}`))
	}))

	found, err := service.FindComplaint(context.Background(), "sid", "c2")
	require.NoError(t, err)
	require.Equal(t, "Second", found.Title)
}

func TestFindComplaint_MissingIDFails(t *testing.T) {
	service, _ := newTestStudentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))

	_, err := service.FindComplaint(context.Background(), "sid", "c9")
	require.ErrorIs(t, err, ErrComplaintNotFound)
}

func TestSubmitComplaint_PublishesEvent(t *testing.T) {
	service, bus := newTestStudentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": "c1", "title": "Leaky tap", "category": "plumbing"}}`))
	}))

	var got []complaint.SubmittedEvent
	bus.Subscribe(func(e complaint.SubmittedEvent) { got = append(got, e) })

	created, err := service.SubmitComplaint(context.Background(), "sid", "u1", hostelapi.CreateComplaint{
		Title:       "Leaky tap",
		Description: "Drips all night",
		Category:    "plumbing",
	})
	require.NoError(t, err)
	require.Equal(t, "c1", created.ID)

	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].StudentID)
	require.Equal(t, "c1", got[0].Complaint.ID)
}

func TestSubmitComplaint_NoEventOnBackendFailure(t *testing.T) {
	service, bus := newTestStudentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "category is required"}`))
	}))

	var published int
	bus.Subscribe(func(e complaint.SubmittedEvent) { published++ })

	_, err := service.SubmitComplaint(context.Background(), "sid", "u1", hostelapi.CreateComplaint{Title: "x"})
	require.Error(t, err)
	require.Zero(t, published)
}
