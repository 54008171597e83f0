package dbapi

import (
	"testing"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/onsi/gomega"
)

func Test_ClusterList_Index(t *testing.T) {
	cluster1 := &Cluster{Meta: api.Meta{ID: "cluster-1"}}
	cluster2 := &Cluster{Meta: api.Meta{ID: "cluster-2"}}

	tests := []struct {
		name string
		list ClusterList
		want ClusterIndex
	}{
		{
			name: "should return an empty index for an empty list",
			list: ClusterList{},
			want: ClusterIndex{},
		},
		{
			name: "should index clusters by id",
			list: ClusterList{cluster1, cluster2},
			want: ClusterIndex{"cluster-1": cluster1, "cluster-2": cluster2},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(tt.list.Index()).To(gomega.Equal(tt.want))
		})
	}
}

func Test_Cluster_IsAccepted(t *testing.T) {
	tests := []struct {
		name    string
		cluster *Cluster
		want    bool
	}{
		{
			name: "should be accepted while create is pending and no stack exists",
			cluster: &Cluster{
				Status: constants.ClusterStatusCreateInProgress.String(),
			},
			want: true,
		},
		{
			name: "should not be accepted once a stack arn is recorded",
			cluster: &Cluster{
				Status:                 constants.ClusterStatusCreateInProgress.String(),
				CloudformationStackArn: "arn:aws:cloudformation:us-east-1:123456789012:stack/test/abc",
			},
			want: false,
		},
		{
			name: "should not be accepted in any other status",
			cluster: &Cluster{
				Status: constants.ClusterStatusCreateComplete.String(),
			},
			want: false,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(tt.cluster.IsAccepted()).To(gomega.Equal(tt.want))
		})
	}
}
