package main

import (
	"context"
	"os"

	"github.com/hosteldesk/portal/internal/server"
	"github.com/hosteldesk/portal/modules"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/configuration"
	"github.com/hosteldesk/portal/pkg/eventbus"
	"github.com/hosteldesk/portal/pkg/logging"
	"github.com/hosteldesk/portal/pkg/metrics"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			panic(r)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		shutdown := logging.SetupTracing(context.Background(), conf.OpenTelemetry.ServiceName, conf.OpenTelemetry.TempoURL)
		defer shutdown()
	}

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		logger.WithError(err).Error("failed to load modules")
		os.Exit(1)
	}
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv, err := server.Default(app)
	if err != nil {
		logger.WithError(err).Error("failed to assemble server")
		os.Exit(1)
	}
	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
