package environments

import "github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"

func NewProductionEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                    "1",
		"enable-https":         "true",
		"enable-metrics-https": "true",
		"enable-sentry":        "true",
		"db-sslmode":           "verify-full",
	}
}
