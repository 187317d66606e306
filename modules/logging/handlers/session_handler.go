package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/hosteldesk/portal/modules/core/domain/session"
	"github.com/hosteldesk/portal/modules/student/domain/complaint"
	"github.com/hosteldesk/portal/pkg/application"
)

// SessionEventsHandler writes an audit trail of session and complaint
// activity to the application log.
type SessionEventsHandler struct {
	logger *logrus.Logger
}

func RegisterSessionEventHandlers(app application.Application) *SessionEventsHandler {
	handler := &SessionEventsHandler{
		logger: app.Logger(),
	}
	bus := app.EventPublisher()
	bus.Subscribe(handler.onSessionCreated)
	bus.Subscribe(handler.onSessionDestroyed)
	bus.Subscribe(handler.onComplaintSubmitted)
	return handler
}

func (h *SessionEventsHandler) onSessionCreated(event session.CreatedEvent) {
	h.logger.WithFields(logrus.Fields{
		"userId": event.User.ID,
		"role":   event.User.Role,
		"method": event.Method,
		"ip":     event.IP,
	}).Info("session created")
}

func (h *SessionEventsHandler) onSessionDestroyed(event session.DestroyedEvent) {
	h.logger.WithFields(logrus.Fields{
		"userId": event.UserID,
		"role":   event.Role,
		"ip":     event.IP,
	}).Info("session destroyed")
}

func (h *SessionEventsHandler) onComplaintSubmitted(event complaint.SubmittedEvent) {
	h.logger.WithFields(logrus.Fields{
		"complaintId": event.Complaint.ID,
		"category":    event.Complaint.Category,
		"studentId":   event.StudentID,
	}).Info("complaint submitted")
}
