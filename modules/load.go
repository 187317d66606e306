package modules

import (
	"github.com/hosteldesk/portal/modules/admin"
	"github.com/hosteldesk/portal/modules/core"
	"github.com/hosteldesk/portal/modules/logging"
	"github.com/hosteldesk/portal/modules/security"
	"github.com/hosteldesk/portal/modules/student"
	"github.com/hosteldesk/portal/pkg/application"
)

// BuiltInModules is ordered: core registers the backend client and auth
// service the feature modules resolve during their own registration.
var BuiltInModules = []application.Module{
	core.NewModule(),
	student.NewModule(),
	security.NewModule(),
	admin.NewModule(),
	logging.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
		app.Logger().WithField("module", module.Name()).Info("module loaded")
	}
	return nil
}
