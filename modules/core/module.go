// Package core wires authentication, navigation and the shared backend
// client. Every other module depends on the services registered here.
package core

import (
	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/modules/core/presentation/controllers"
	"github.com/hosteldesk/portal/modules/core/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/configuration"
	"github.com/hosteldesk/portal/pkg/hostelapi"
)

type Module struct {
}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	api, err := hostelapi.New(hostelapi.Options{
		BaseURL:         conf.Backend.BaseURL,
		Timeout:         conf.Backend.Timeout,
		SidCookieKey:    conf.SidCookieKey,
		RequestIDHeader: conf.RequestIDHeader,
	})
	if err != nil {
		return err
	}

	app.RegisterServices(
		api,
		services.NewAuthService(api, app.EventPublisher(), app.Logger()),
	)

	for _, role := range user.AllRoles() {
		app.RegisterNavigation(role, NavigationForRole(role))
	}

	app.RegisterControllers(
		controllers.NewAuthController(app),
		controllers.NewNavigationController(app),
		controllers.NewDashboardController(app),
	)
	return nil
}
