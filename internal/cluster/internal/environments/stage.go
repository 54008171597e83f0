package environments

import "github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"

func NewStageEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"enable-https":         "true",
		"enable-metrics-https": "true",
		"enable-sentry":        "true",
		"db-sslmode":           "verify-full",
		"supported-regions":    "us-east-1,us-east-2,eu-west-1",
	}
}
