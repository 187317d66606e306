package security

import (
	"github.com/hosteldesk/portal/modules/security/presentation/controllers"
	"github.com/hosteldesk/portal/modules/security/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

type Module struct {
}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "security"
}

func (m *Module) Register(app application.Application) error {
	api := app.Service(hostelapi.Client{}).(*hostelapi.Client)
	app.RegisterServices(
		services.NewVisitorService(api),
	)
	app.RegisterControllers(
		controllers.NewVisitorController(app),
	)
	return nil
}
