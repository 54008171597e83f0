package config

import (
	"testing"

	"github.com/onsi/gomega"
)

func Test_FleetConfig_IsVersionSupported(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{
			name:    "should accept the lowest supported version",
			version: "3.0.0",
			want:    true,
		},
		{
			name:    "should accept a version inside the range",
			version: "3.7.2",
			want:    true,
		},
		{
			name:    "should reject the first unsupported major",
			version: "4.0.0",
			want:    false,
		},
		{
			name:    "should reject versions below the range",
			version: "2.11.9",
			want:    false,
		},
		{
			name:    "should reject garbage",
			version: "not-a-version",
			want:    false,
		},
	}

	conf := NewFleetConfig()
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(conf.IsVersionSupported(tt.version)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_FleetConfig_IsRegionSupported(t *testing.T) {
	g := gomega.NewWithT(t)
	conf := NewFleetConfig()
	g.Expect(conf.IsRegionSupported("us-east-1")).To(gomega.BeTrue())
	g.Expect(conf.IsRegionSupported("mars-north-1")).To(gomega.BeFalse())
}

func Test_FleetConfig_LogGroupName(t *testing.T) {
	g := gomega.NewWithT(t)
	conf := NewFleetConfig()
	g.Expect(conf.LogGroupName("hpc-cluster")).To(gomega.Equal("/hpc-fleet/hpc-cluster"))
}
