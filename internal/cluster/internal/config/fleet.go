package config

import (
	"time"

	"github.com/blang/semver/v4"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/shared"
	"github.com/spf13/pflag"
)

// FleetConfig carries the cluster management settings: the regions the
// service is allowed to operate in, the cluster version range it can manage
// and the tuning knobs of the official image cache.
type FleetConfig struct {
	SupportedRegions      []string
	MinSupportedVersion   string
	MaxSupportedVersion   string
	DefaultVersion        string
	MaxClusterNameLength  int
	LogGroupNamePrefix    string
	OfficialImageCacheTTL time.Duration
	OfficialImageOwner    string
}

func NewFleetConfig() *FleetConfig {
	return &FleetConfig{
		SupportedRegions: []string{
			"us-east-1",
			"us-east-2",
			"us-west-1",
			"us-west-2",
			"eu-central-1",
			"eu-west-1",
		},
		MinSupportedVersion:   "3.0.0",
		MaxSupportedVersion:   "4.0.0",
		DefaultVersion:        "3.7.0",
		MaxClusterNameLength:  60,
		LogGroupNamePrefix:    "/hpc-fleet/",
		OfficialImageCacheTTL: 10 * time.Minute,
		OfficialImageOwner:    "amazon",
	}
}

func (c *FleetConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&c.SupportedRegions, "supported-regions", c.SupportedRegions, "AWS regions clusters may be created in")
	fs.StringVar(&c.MinSupportedVersion, "min-supported-version", c.MinSupportedVersion, "Lowest cluster version this service manages (inclusive)")
	fs.StringVar(&c.MaxSupportedVersion, "max-supported-version", c.MaxSupportedVersion, "Lowest cluster version this service rejects (exclusive)")
	fs.StringVar(&c.DefaultVersion, "default-version", c.DefaultVersion, "Cluster version used when a create request does not specify one")
	fs.DurationVar(&c.OfficialImageCacheTTL, "official-image-cache-ttl", c.OfficialImageCacheTTL, "How long official image listings are cached in process")
	fs.StringVar(&c.OfficialImageOwner, "official-image-owner", c.OfficialImageOwner, "AMI owner used when listing official images")
}

func (c *FleetConfig) ReadFiles() error {
	return nil
}

// IsRegionSupported returns true when clusters may be managed in the region.
func (c *FleetConfig) IsRegionSupported(region string) bool {
	return shared.Contains(c.SupportedRegions, region)
}

// IsVersionSupported returns true when the given cluster version falls inside
// the supported range.
func (c *FleetConfig) IsVersionSupported(version string) bool {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return false
	}
	min, err := semver.ParseTolerant(c.MinSupportedVersion)
	if err != nil {
		return false
	}
	max, err := semver.ParseTolerant(c.MaxSupportedVersion)
	if err != nil {
		return false
	}
	return v.GTE(min) && v.LT(max)
}

// LogGroupName returns the CloudWatch log group of a cluster or image build.
func (c *FleetConfig) LogGroupName(name string) string {
	return c.LogGroupNamePrefix + name
}
