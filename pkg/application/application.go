// Package application holds the runtime registry the server is assembled
// from: controllers, middleware, per-role navigation and the event bus.
package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/eventbus"
	"github.com/hosteldesk/portal/pkg/types"
)

// Controller registers a set of routes under the application router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a self-contained feature area that wires its services,
// navigation and controllers into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Logger() *logrus.Logger
	EventPublisher() eventbus.EventBus

	Controllers() []Controller
	RegisterControllers(controllers ...Controller)

	Middleware() []mux.MiddlewareFunc
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)

	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}

	RegisterNavigation(role user.Role, list types.NavigationList)
	Navigation(role user.Role) (types.NavigationList, bool)
}

type ApplicationOptions struct {
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	return &application{
		eventPublisher: opts.EventBus,
		logger:         opts.Logger,
		controllers:    make(map[string]Controller),
		services:       make(map[reflect.Type]interface{}),
		navigation:     make(map[user.Role]types.NavigationList),
	}
}

// application with a dynamically extendable service registry
type application struct {
	eventPublisher eventbus.EventBus
	logger         *logrus.Logger
	services       map[reflect.Type]interface{}
	controllers    map[string]Controller
	controllerKeys []string
	middleware     []mux.MiddlewareFunc
	navigation     map[user.Role]types.NavigationList
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Controllers() []Controller {
	out := make([]Controller, 0, len(app.controllerKeys))
	for _, key := range app.controllerKeys {
		out = append(out, app.controllers[key])
	}
	return out
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		if _, exists := app.controllers[c.Key()]; !exists {
			app.controllerKeys = append(app.controllerKeys, c.Key())
		}
		app.controllers[c.Key()] = c
	}
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) RegisterServices(services ...interface{}) {
	for _, svc := range services {
		app.services[reflect.TypeOf(svc).Elem()] = svc
	}
}

// Service resolves a registered service by the type of the given prototype
// value. Panics when the service was never registered: that is a wiring
// error, not a runtime condition.
func (app *application) Service(service interface{}) interface{} {
	svc, ok := app.services[reflect.TypeOf(service)]
	if !ok {
		panic(fmt.Sprintf("service %s not found", reflect.TypeOf(service).Name()))
	}
	return svc
}

func (app *application) RegisterNavigation(role user.Role, list types.NavigationList) {
	if err := list.Validate(); err != nil {
		panic(fmt.Sprintf("navigation for role %q: %v", role, err))
	}
	app.navigation[role] = list
}

func (app *application) Navigation(role user.Role) (types.NavigationList, bool) {
	list, ok := app.navigation[role]
	return list, ok
}
