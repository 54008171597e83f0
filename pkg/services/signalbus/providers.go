package signalbus

import (
	"github.com/goava/di"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"
)

func ConfigProviders() di.Option {
	return di.Provide(environments.Func(ServiceProviders))
}

func ServiceProviders() di.Option {
	return di.Provide(func(dbFactory *db.ConnectionFactory) *PgSignalBus {
		return NewPgSignalBus(NewSignalBus(), dbFactory)
	}, di.As(new(SignalBus)), di.As(new(environments.BootService)))
}
