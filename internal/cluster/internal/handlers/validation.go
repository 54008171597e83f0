package handlers

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
)

// ValidClusterNameRegexp is the accepted shape of cluster and image names:
// a letter followed by up to 59 letters, digits or hyphens.
var ValidClusterNameRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]{0,59}$`)

// ValidClusterName returns a validator rejecting malformed cluster names.
func ValidClusterName(value *string, field string) handlers.Validate {
	return func() *errors.ServiceError {
		if !ValidClusterNameRegexp.MatchString(*value) {
			return errors.MalformedClusterName("%s is not valid. Must match regex: %s", field, ValidClusterNameRegexp.String())
		}
		return nil
	}
}

// ValidateClusterNameIsUnique returns a validator rejecting names that are
// already taken by a live cluster.
func ValidateClusterNameIsUnique(name *string, clusterService services.ClusterService) handlers.Validate {
	return func() *errors.ServiceError {
		exists, err := clusterService.HasClusterWithName(*name)
		if err != nil {
			return err
		}
		if exists {
			return errors.Conflict("cluster %s already exists", *name)
		}
		return nil
	}
}

// ValidateImageIdIsUnique returns a validator rejecting image ids that are
// already taken by a live image build.
func ValidateImageIdIsUnique(imageId *string, imageService services.ImageService) handlers.Validate {
	return func() *errors.ServiceError {
		_, err := imageService.Get(*imageId)
		if err != nil {
			if err.Is404() {
				return nil
			}
			return err
		}
		return errors.Conflict("image %s already exists", *imageId)
	}
}

// ValidateRegion defaults an empty region and rejects unsupported ones.
func ValidateRegion(fleetConfig *config.FleetConfig, awsConfig *aws.AWSConfig, region *string) handlers.Validate {
	return func() *errors.ServiceError {
		if *region == "" {
			*region = awsConfig.DefaultRegion
		}
		if !fleetConfig.IsRegionSupported(*region) {
			return errors.RegionNotSupported("region %s is not supported, must be one of: %v", *region, fleetConfig.SupportedRegions)
		}
		return nil
	}
}

// ValidateVersion defaults an empty version and rejects ones outside the
// supported range.
func ValidateVersion(fleetConfig *config.FleetConfig, version *string) handlers.Validate {
	return func() *errors.ServiceError {
		if *version == "" {
			*version = fleetConfig.DefaultVersion
		}
		if !fleetConfig.IsVersionSupported(*version) {
			return errors.VersionNotSupported("version %s is not supported, must be at least %s and below %s",
				*version, fleetConfig.MinSupportedVersion, fleetConfig.MaxSupportedVersion)
		}
		return nil
	}
}

// checkVersionManaged rejects operations against clusters whose version
// falls outside the range this service manages.
func checkVersionManaged(fleetConfig *config.FleetConfig, cluster *dbapi.Cluster) *errors.ServiceError {
	if !fleetConfig.IsVersionSupported(cluster.Version) {
		return errors.BadRequest("cluster %s belongs to an incompatible major version", cluster.Name)
	}
	return nil
}

// checkVersionMinorMatch rejects compute fleet updates when the cluster does
// not share the major and minor version the service operates at.
func checkVersionMinorMatch(fleetConfig *config.FleetConfig, cluster *dbapi.Cluster) *errors.ServiceError {
	compatible, err := api.IsMinorVersionCompatible(fleetConfig.DefaultVersion, cluster.Version)
	if err != nil || !compatible {
		return errors.BadRequest("cluster %s belongs to an incompatible minor version", cluster.Name)
	}
	return nil
}

// parseValidationOptions reads the suppressValidators and
// validationFailureLevel query parameters.
func parseValidationOptions(query url.Values) (services.ValidationOptions, *errors.ServiceError) {
	opts := services.NewValidationOptions()
	opts.SuppressValidators = query["suppressValidators"]
	if level := query.Get("validationFailureLevel"); level != "" {
		if !constants.IsValidValidationLevel(level) {
			return opts, errors.FailedToParseQueryParams("validationFailureLevel %s is not valid. Must be one of: %s, %s, %s",
				level, constants.ValidationLevelInfo, constants.ValidationLevelWarning, constants.ValidationLevelError)
		}
		opts.FailureLevel = constants.ValidationLevel(level)
	}
	return opts, nil
}

// parseBoolParam reads an optional boolean query parameter.
func parseBoolParam(query url.Values, name string, defaultValue bool) (bool, *errors.ServiceError) {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue, errors.FailedToParseQueryParams("%s must be a boolean, got %q", name, raw)
	}
	return value, nil
}

// withDryrun wraps an action so that a dryrun request never reaches it. The
// 412 response signals that validation succeeded.
func withDryrun(dryrun bool, action func() (interface{}, *errors.ServiceError)) (interface{}, *errors.ServiceError) {
	if dryrun {
		return nil, errors.DryrunOperation()
	}
	return action()
}
