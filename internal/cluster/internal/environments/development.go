package environments

import "github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"

// The development environment is intended for use while developing features, requiring manual verification
func NewDevelopmentEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                          "10",
		"enable-https":               "false",
		"enable-metrics-https":       "false",
		"api-server-bindaddress":     "localhost:8000",
		"enable-sentry":              "false",
		"db-sslmode":                 "disable",
		"aws-default-region":         "us-east-1",
		"official-image-cache-ttl":   "1m",
		"reconciler-repeat-interval": "30s",
	}
}
