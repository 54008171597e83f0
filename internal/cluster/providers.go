package cluster

import (
	"github.com/goava/di"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/environments"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/migrations"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/routes"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/workers/cluster_mgrs"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/workers/image_mgrs"
	environments2 "github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/providers"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/workers"
)

func EnvConfigProviders() di.Option {
	return di.Options(
		di.Provide(environments.NewDevelopmentEnvLoader, di.Tags{"env": environments2.DevelopmentEnv}),
		di.Provide(environments.NewProductionEnvLoader, di.Tags{"env": environments2.ProductionEnv}),
		di.Provide(environments.NewStageEnvLoader, di.Tags{"env": environments2.StageEnv}),
		di.Provide(environments.NewIntegrationEnvLoader, di.Tags{"env": environments2.IntegrationEnv}),
		di.Provide(environments.NewTestingEnvLoader, di.Tags{"env": environments2.TestingEnv}),
	)
}

func ConfigProviders() di.Option {
	return di.Options(

		EnvConfigProviders(),
		providers.CoreConfigProviders(),

		// Configuration for the cluster management service...
		di.Provide(config.NewFleetConfig, di.As(new(environments2.ConfigModule))),

		di.Provide(environments2.Func(ServiceProviders)),
		di.Provide(migrations.New),
	)
}

func ServiceProviders() di.Option {
	return di.Options(
		di.Provide(services.NewClusterService, di.As(new(services.ClusterService))),
		di.Provide(services.NewComputeFleetService, di.As(new(services.ComputeFleetService))),
		di.Provide(services.NewInstanceService, di.As(new(services.InstanceService))),
		di.Provide(services.NewLogsService, di.As(new(services.LogsService))),
		di.Provide(services.NewImageService, di.As(new(services.ImageService))),
		di.Provide(services.NewConfigValidationService, di.As(new(services.ConfigValidationService))),
		di.Provide(routes.NewRouteLoader),
		di.Provide(cluster_mgrs.NewCreatingClustersManager, di.As(new(workers.Worker))),
		di.Provide(cluster_mgrs.NewProvisioningClustersManager, di.As(new(workers.Worker))),
		di.Provide(cluster_mgrs.NewDeprovisioningClustersManager, di.As(new(workers.Worker))),
		di.Provide(image_mgrs.NewImageBuildsManager, di.As(new(workers.Worker))),
	)
}
