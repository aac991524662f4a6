//go:build wireinject
// +build wireinject

package main

import (
	"talentops/config"
	"talentops/internal/command"
	"talentops/internal/cron"
	"talentops/internal/database/storage"
	"talentops/internal/handler"
	"talentops/internal/middleware"
	"talentops/internal/router"
	"talentops/internal/service"
	"talentops/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			storage.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			storage.ProviderSet,
			telemetry.ProviderSet,
			wire.NewSet(
				service.NewTargetPolicy,
				service.NewDeliveryService,
				service.NewSnapshotService,
			),
			command.ProviderSet,
		),
	)
}
