package admin

import (
	"github.com/hosteldesk/portal/modules/admin/presentation/controllers"
	"github.com/hosteldesk/portal/pkg/application"
)

type Module struct {
}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "admin"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(
		controllers.NewSecurityController(app),
	)
	return nil
}
