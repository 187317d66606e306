package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/hosteldesk/portal/modules/core/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/configuration"
	"github.com/hosteldesk/portal/pkg/constants"
	"github.com/hosteldesk/portal/pkg/httpapi"
	"github.com/hosteldesk/portal/pkg/middleware"
	"github.com/hosteldesk/portal/pkg/server"
)

// Default assembles the gateway's middleware stack around the registered
// controllers. Order matters: the logger and params run first so every later
// stage, including session verification, can reach them.
func Default(app application.Application) (*server.HTTPServer, error) {
	conf := configuration.Use()
	authService := app.Service(services.AuthService{}).(*services.AuthService)

	app.RegisterMiddleware(
		middleware.WithLogger(app.Logger()),
		middleware.Provide(constants.AppKey, app),
		middleware.Cors(splitOrigins(conf.AllowedOrigins)...),
	)
	if conf.RateLimit.Enabled && conf.RateLimit.GlobalRPS > 0 {
		app.RegisterMiddleware(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.GlobalRPS,
			Period:            time.Second,
		}))
	}
	app.RegisterMiddleware(
		middleware.RequestParams(),
		middleware.Authorize(authService, conf.SidCookieKey),
	)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "no such route", nil)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed for this route", nil)
	})
	return server.NewHTTPServer(app, notFound, notAllowed), nil
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
