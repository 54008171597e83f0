package cluster_mgrs

import (
	"testing"

	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
)

const testStackArn = "arn:aws:cloudformation:us-east-1:123456789012:stack/hpc-test/abc"

func TestCreatingClustersManager_reconcileAcceptedCluster(t *testing.T) {
	type fields struct {
		clusterService services.ClusterService
	}
	type args struct {
		cluster *dbapi.Cluster
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
		verify  func(g *gomega.WithT, cluster *dbapi.Cluster)
	}{
		{
			name: "successful stack creation stores the ARN",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					CreateStackFunc: func(cluster *dbapi.Cluster) (string, *errors.ServiceError) {
						return testStackArn, nil
					},
					UpdatesFunc: func(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
						return nil
					},
				},
			},
			args: args{
				cluster: &dbapi.Cluster{
					Name:   "hpc-test",
					Status: constants.ClusterStatusCreateInProgress.String(),
				},
			},
			wantErr: false,
			verify: func(g *gomega.WithT, cluster *dbapi.Cluster) {
				g.Expect(cluster.CloudformationStackArn).To(gomega.Equal(testStackArn))
			},
		},
		{
			name: "failed stack creation marks the cluster CREATE_FAILED",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					CreateStackFunc: func(cluster *dbapi.Cluster) (string, *errors.ServiceError) {
						return "", errors.GeneralError("template rejected")
					},
					UpdatesFunc: func(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
						return nil
					},
				},
			},
			args: args{
				cluster: &dbapi.Cluster{
					Name:   "hpc-test",
					Status: constants.ClusterStatusCreateInProgress.String(),
				},
			},
			wantErr: true,
			verify: func(g *gomega.WithT, cluster *dbapi.Cluster) {
				g.Expect(cluster.Status).To(gomega.Equal(constants.ClusterStatusCreateFailed.String()))
				g.Expect(cluster.FailureReason).NotTo(gomega.BeEmpty())
			},
		},
		{
			name: "failure to persist the ARN is returned",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					CreateStackFunc: func(cluster *dbapi.Cluster) (string, *errors.ServiceError) {
						return testStackArn, nil
					},
					UpdatesFunc: func(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
						return errors.GeneralError("database gone")
					},
				},
			},
			args: args{
				cluster: &dbapi.Cluster{
					Name:   "hpc-test",
					Status: constants.ClusterStatusCreateInProgress.String(),
				},
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			m := &CreatingClustersManager{
				clusterService: tt.fields.clusterService,
			}
			err := m.reconcileAcceptedCluster(tt.args.cluster)
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if tt.verify != nil {
				tt.verify(g, tt.args.cluster)
			}
		})
	}
}

func TestCreatingClustersManager_Reconcile(t *testing.T) {
	g := gomega.NewWithT(t)

	clusterService := &services.ClusterServiceMock{
		ListByStatusFunc: func(status ...constants.ClusterStatus) (dbapi.ClusterList, *errors.ServiceError) {
			return dbapi.ClusterList{
				// accepted, needs a stack
				{Name: "accepted", Status: constants.ClusterStatusCreateInProgress.String()},
				// already has a stack, belongs to the provisioning worker
				{Name: "provisioning", Status: constants.ClusterStatusCreateInProgress.String(), CloudformationStackArn: testStackArn},
			}, nil
		},
		CreateStackFunc: func(cluster *dbapi.Cluster) (string, *errors.ServiceError) {
			return testStackArn, nil
		},
		UpdatesFunc: func(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
			return nil
		},
	}

	m := NewCreatingClustersManager(clusterService)
	g.Expect(m.Reconcile()).To(gomega.BeEmpty())
	g.Expect(clusterService.CreateStackCalls()).To(gomega.HaveLen(1))
	g.Expect(clusterService.CreateStackCalls()[0].Cluster.Name).To(gomega.Equal("accepted"))
}
