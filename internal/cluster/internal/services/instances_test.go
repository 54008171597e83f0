package services

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
)

func ec2Instance(id string, privateDnsName string) *ec2.Instance {
	return &ec2.Instance{
		InstanceId:     awssdk.String(id),
		PrivateDnsName: awssdk.String(privateDnsName),
	}
}

func Test_instanceService_ListClusterInstances(t *testing.T) {
	awsClient := &aws.AWSClientMock{
		DescribeInstancesFunc: func(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
			return &ec2.DescribeInstancesOutput{
				Reservations: []*ec2.Reservation{
					{Instances: []*ec2.Instance{ec2Instance("i-0001", "ip-10-0-0-1.ec2.internal")}},
					{Instances: []*ec2.Instance{ec2Instance("i-0002", "ip-10-0-0-2.ec2.internal")}},
				},
			}, nil
		},
	}
	k := &instanceService{
		awsClientFactory: aws.NewMockClientFactory(awsClient),
		awsConfig:        aws.NewAWSConfig(),
	}

	instances, _, err := k.ListClusterInstances(buildCluster(nil), constants.NodeTypeComputeNode.String(), "queue-1", "")
	if err != nil {
		t.Fatalf("ListClusterInstances() error = %v", err)
	}
	if len(instances) != 2 {
		t.Errorf("ListClusterInstances() got %d instances, want 2", len(instances))
	}

	calls := awsClient.DescribeInstancesCalls()
	if len(calls) != 1 {
		t.Fatalf("ListClusterInstances() describe calls = %d, want 1", len(calls))
	}
	filters := calls[0].Input.Filters
	wantFilters := map[string]string{
		"tag:" + constants.ClusterNameTagKey: testClusterName,
		"tag:" + constants.NodeTypeTagKey:    constants.NodeTypeComputeNode.String(),
		"tag:" + constants.QueueNameTagKey:   "queue-1",
	}
	for name, value := range wantFilters {
		found := false
		for _, filter := range filters {
			if awssdk.StringValue(filter.Name) == name && awssdk.StringValue(filter.Values[0]) == value {
				found = true
			}
		}
		if !found {
			t.Errorf("ListClusterInstances() missing filter %s=%s", name, value)
		}
	}
}

func Test_instanceService_GetHeadNode(t *testing.T) {
	tests := []struct {
		name      string
		instances []*ec2.Instance
		wantNil   bool
	}{
		{
			name:      "head node is returned",
			instances: []*ec2.Instance{ec2Instance("i-0001", "ip-10-0-0-1.ec2.internal")},
		},
		{
			name:    "nil when no head node is running",
			wantNil: true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			awsClient := &aws.AWSClientMock{
				DescribeInstancesFunc: func(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
					return &ec2.DescribeInstancesOutput{
						Reservations: []*ec2.Reservation{{Instances: tt.instances}},
					}, nil
				},
			}
			k := &instanceService{
				awsClientFactory: aws.NewMockClientFactory(awsClient),
				awsConfig:        aws.NewAWSConfig(),
			}
			got, err := k.GetHeadNode(buildCluster(nil))
			if err != nil {
				t.Fatalf("GetHeadNode() error = %v", err)
			}
			if (got == nil) != tt.wantNil {
				t.Errorf("GetHeadNode() got = %v, wantNil %v", got, tt.wantNil)
			}
		})
	}
}

func Test_instanceService_DeleteClusterInstances(t *testing.T) {
	type args struct {
		scheduler string
		force     bool
	}
	tests := []struct {
		name          string
		args          args
		fleetStatus   constants.ComputeFleetStatus
		wantErr       bool
		wantCode      int
		wantTerminate bool
	}{
		{
			name: "awsbatch clusters are rejected",
			args: args{
				scheduler: constants.SchedulerAwsBatch.String(),
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "protected fleet without force is a conflict",
			args: args{
				scheduler: constants.SchedulerSlurm.String(),
			},
			fleetStatus: constants.ComputeFleetStatusProtected,
			wantErr:     true,
			wantCode:    409,
		},
		{
			name: "protected fleet with force terminates the compute nodes",
			args: args{
				scheduler: constants.SchedulerSlurm.String(),
				force:     true,
			},
			fleetStatus:   constants.ComputeFleetStatusProtected,
			wantTerminate: true,
		},
		{
			name: "running fleet terminates the compute nodes",
			args: args{
				scheduler: constants.SchedulerSlurm.String(),
			},
			fleetStatus:   constants.ComputeFleetStatusRunning,
			wantTerminate: true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			awsClient := &aws.AWSClientMock{
				DescribeInstancesFunc: func(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
					return &ec2.DescribeInstancesOutput{
						Reservations: []*ec2.Reservation{
							{Instances: []*ec2.Instance{ec2Instance("i-0001", "ip-10-0-0-1.ec2.internal")}},
						},
					}, nil
				},
				TerminateInstancesFunc: func(instanceIds []*string) (*ec2.TerminateInstancesOutput, error) {
					return &ec2.TerminateInstancesOutput{}, nil
				},
			}
			computeFleetService := &ComputeFleetServiceMock{
				DescribeComputeFleetFunc: func(ctx context.Context, cluster *dbapi.Cluster) (constants.ComputeFleetStatus, string, *errors.ServiceError) {
					return tt.fleetStatus, "", nil
				},
			}
			k := &instanceService{
				awsClientFactory:    aws.NewMockClientFactory(awsClient),
				awsConfig:           aws.NewAWSConfig(),
				computeFleetService: computeFleetService,
			}
			cluster := buildCluster(func(cluster *dbapi.Cluster) {
				cluster.Scheduler = tt.args.scheduler
			})
			err := k.DeleteClusterInstances(context.TODO(), cluster, tt.args.force)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeleteClusterInstances() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.wantCode != 0 && err.HttpCode != tt.wantCode {
				t.Errorf("DeleteClusterInstances() http code = %v, want %v", err.HttpCode, tt.wantCode)
			}
			gotTerminate := len(awsClient.TerminateInstancesCalls()) > 0
			if gotTerminate != tt.wantTerminate {
				t.Errorf("DeleteClusterInstances() terminated = %v, want %v", gotTerminate, tt.wantTerminate)
			}
		})
	}
}
