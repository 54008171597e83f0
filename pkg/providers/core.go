package providers

import (
	"github.com/goava/di"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/auth"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/cmd/migrate"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/cmd/serve"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/server"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/services/sentry"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/services/signalbus"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/workers"
)

func CoreConfigProviders() di.Option {
	return di.Options(
		di.Provide(func(env *environments.Env) environments.EnvName {
			return environments.EnvName(env.Name)
		}),

		// Add config types
		di.Provide(server.NewHealthCheckConfig, di.As(new(environments.ConfigModule))),
		di.Provide(db.NewDatabaseConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewServerConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewMetricsConfig, di.As(new(environments.ConfigModule))),
		di.Provide(aws.NewAWSConfig, di.As(new(environments.ConfigModule))),
		di.Provide(workers.NewReconcilerConfig, di.As(new(environments.ConfigModule))),

		// Add common CLI sub commands
		di.Provide(serve.NewServeCommand),
		di.Provide(migrate.NewMigrateCommand),

		// Add other core config providers..
		sentry.ConfigProviders(),
		signalbus.ConfigProviders(),

		di.Provide(environments.Func(ServiceProviders)),
	)
}

func ServiceProviders() di.Option {
	return di.Options(

		// provide the service constructors
		di.Provide(db.NewConnectionFactory),
		di.Provide(aws.NewDefaultClientFactory, di.As(new(aws.ClientFactory))),

		di.Provide(func(serverConfig *server.ServerConfig) (*auth.AuthMiddleware, error) {
			return auth.NewAuthMiddleware(serverConfig.JwksURL, serverConfig.JwksFile, "")
		}, di.As(new(auth.JWTMiddleware))),

		di.Provide(handlers.NewErrorsHandler),

		// Types registered as a BootService are started when the env is started
		di.Provide(server.NewAPIServer, di.As(new(environments.BootService))),
		di.Provide(server.NewMetricsServer, di.As(new(environments.BootService))),
		di.Provide(server.NewHealthCheckServer, di.As(new(environments.BootService))),
		di.Provide(workers.NewLeaderElectionManager, di.As(new(environments.BootService))),
	)
}
