package environments

import "github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"

// The integration environment is used by integration tests, everything AWS
// facing runs against the mock client factory.
func NewIntegrationEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                          "0",
		"enable-https":               "false",
		"enable-metrics-https":       "false",
		"enable-sentry":              "false",
		"db-sslmode":                 "disable",
		"reconciler-repeat-interval": "1s",
	}
}
