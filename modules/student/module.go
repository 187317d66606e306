package student

import (
	"github.com/hosteldesk/portal/modules/student/presentation/controllers"
	"github.com/hosteldesk/portal/modules/student/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

type Module struct {
}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "student"
}

func (m *Module) Register(app application.Application) error {
	api := app.Service(hostelapi.Client{}).(*hostelapi.Client)
	app.RegisterServices(
		services.NewStudentService(api, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewStudentController(app),
	)
	return nil
}
