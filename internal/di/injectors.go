//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"ptd/internal"
	"ptd/internal/controllers"
	"ptd/internal/notify"
	"ptd/internal/providers"
	"ptd/internal/services"
	"ptd/internal/structures"
	"ptd/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewLicenseProvider,
		wire.Bind(new(services.LicenseInterface), new(*providers.LicenseProvider)),
		wire.Bind(new(providers.LicenseProviderInterface), new(*providers.LicenseProvider)),
		providers.NewLogNotifier,
		notify.NewDispatcher,
		services.NewTrackerService,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		tracker.NewZstdCompressor,
		tracker.NewFileManager,
		tracker.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		controllers.NewLicenseController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
