package logging

import (
	"github.com/hosteldesk/portal/modules/logging/handlers"
	"github.com/hosteldesk/portal/pkg/application"
)

type Module struct {
}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "logging"
}

func (m *Module) Register(app application.Application) error {
	handlers.RegisterSessionEventHandlers(app)
	return nil
}
