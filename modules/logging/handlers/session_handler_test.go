package handlers

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/portal/modules/core/domain/session"
	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/modules/student/domain/complaint"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/eventbus"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

func newTestApp(t *testing.T) (application.Application, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	return app, hook
}

func TestSessionEvents_AreLogged(t *testing.T) {
	app, hook := newTestApp(t)
	RegisterSessionEventHandlers(app)

	app.EventPublisher().Publish(session.CreatedEvent{
		User:      user.User{ID: "u1", Role: user.Student},
		Method:    "password",
		IP:        "10.0.0.1",
		CreatedAt: time.Now(),
	})
	app.EventPublisher().Publish(session.DestroyedEvent{
		UserID:    "u1",
		Role:      user.Student,
		CreatedAt: time.Now(),
	})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "session created", entries[0].Message)
	require.Equal(t, "u1", entries[0].Data["userId"])
	require.Equal(t, "session destroyed", entries[1].Message)
}

func TestComplaintEvents_AreLogged(t *testing.T) {
	app, hook := newTestApp(t)
	RegisterSessionEventHandlers(app)

	app.EventPublisher().Publish(complaint.SubmittedEvent{
		Complaint: hostelapi.Complaint{ID: "c1", Category: "plumbing"},
		StudentID: "u1",
		CreatedAt: time.Now(),
	})

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	require.Equal(t, "complaint submitted", entries[0].Message)
	require.Equal(t, "plumbing", entries[0].Data["category"])
}
