package cluster_mgrs

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
)

func stackInStatus(status constants.StackStatus, reason string) *cloudformation.Stack {
	stack := &cloudformation.Stack{
		StackName:   awssdk.String("hpc-test"),
		StackStatus: awssdk.String(status.String()),
	}
	if reason != "" {
		stack.StackStatusReason = awssdk.String(reason)
	}
	return stack
}

func provisioningCluster(status constants.ClusterStatus) *dbapi.Cluster {
	return &dbapi.Cluster{
		Name:                   "hpc-test",
		Region:                 "us-east-1",
		Scheduler:              constants.SchedulerSlurm.String(),
		Status:                 status.String(),
		CloudformationStackArn: testStackArn,
	}
}

func TestProvisioningClustersManager_reconcileProvisioningCluster(t *testing.T) {
	type fields struct {
		clusterService      services.ClusterService
		computeFleetService services.ComputeFleetService
	}
	type args struct {
		cluster *dbapi.Cluster
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		wantErr    bool
		wantStatus constants.ClusterStatus
	}{
		{
			name: "stack still in progress leaves the cluster untouched",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					DescribeStackFunc: func(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
						return stackInStatus(constants.StackStatusCreateInProgress, ""), nil
					},
				},
			},
			args:       args{cluster: provisioningCluster(constants.ClusterStatusCreateInProgress)},
			wantErr:    false,
			wantStatus: constants.ClusterStatusCreateInProgress,
		},
		{
			name: "completed create bootstraps the fleet and marks the cluster ready",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					DescribeStackFunc: func(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
						return stackInStatus(constants.StackStatusCreateComplete, ""), nil
					},
					UpdateStatusFunc: func(cluster *dbapi.Cluster, status constants.ClusterStatus) *errors.ServiceError {
						cluster.Status = status.String()
						return nil
					},
				},
				computeFleetService: &services.ComputeFleetServiceMock{
					BootstrapComputeFleetFunc: func(cluster *dbapi.Cluster) *errors.ServiceError {
						return nil
					},
				},
			},
			args:       args{cluster: provisioningCluster(constants.ClusterStatusCreateInProgress)},
			wantErr:    false,
			wantStatus: constants.ClusterStatusCreateComplete,
		},
		{
			name: "rolled back create marks the cluster CREATE_FAILED with the stack reason",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					DescribeStackFunc: func(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
						return stackInStatus(constants.StackStatusRollbackComplete, "head node failed to come up"), nil
					},
					UpdatesFunc: func(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
						return nil
					},
				},
			},
			args:       args{cluster: provisioningCluster(constants.ClusterStatusCreateInProgress)},
			wantErr:    false,
			wantStatus: constants.ClusterStatusCreateFailed,
		},
		{
			name: "completed update marks the cluster UPDATE_COMPLETE",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					DescribeStackFunc: func(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
						return stackInStatus(constants.StackStatusUpdateComplete, ""), nil
					},
					UpdateStatusFunc: func(cluster *dbapi.Cluster, status constants.ClusterStatus) *errors.ServiceError {
						cluster.Status = status.String()
						return nil
					},
				},
			},
			args:       args{cluster: provisioningCluster(constants.ClusterStatusUpdateInProgress)},
			wantErr:    false,
			wantStatus: constants.ClusterStatusUpdateComplete,
		},
		{
			name: "rolled back update marks the cluster UPDATE_FAILED",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					DescribeStackFunc: func(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
						return stackInStatus(constants.StackStatusUpdateRollbackComplete, "queue update rejected"), nil
					},
					UpdatesFunc: func(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
						return nil
					},
				},
			},
			args:       args{cluster: provisioningCluster(constants.ClusterStatusUpdateInProgress)},
			wantErr:    false,
			wantStatus: constants.ClusterStatusUpdateFailed,
		},
		{
			name: "describe failure is returned",
			fields: fields{
				clusterService: &services.ClusterServiceMock{
					DescribeStackFunc: func(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
						return nil, errors.GeneralError("throttled")
					},
				},
			},
			args:       args{cluster: provisioningCluster(constants.ClusterStatusCreateInProgress)},
			wantErr:    true,
			wantStatus: constants.ClusterStatusCreateInProgress,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			m := &ProvisioningClustersManager{
				clusterService:      tt.fields.clusterService,
				computeFleetService: tt.fields.computeFleetService,
			}
			err := m.reconcileProvisioningCluster(tt.args.cluster)
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			g.Expect(tt.args.cluster.Status).To(gomega.Equal(tt.wantStatus.String()))
		})
	}
}
