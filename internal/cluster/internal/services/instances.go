package services

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
)

//go:generate moq -out instanceservice_moq.go . InstanceService
type InstanceService interface {
	// ListClusterInstances returns the EC2 instances tagged with the cluster
	// name, optionally narrowed by node type and queue name.
	ListClusterInstances(cluster *dbapi.Cluster, nodeType string, queueName string, nextToken string) ([]*ec2.Instance, string, *errors.ServiceError)
	// GetHeadNode returns the head node instance of the cluster, or nil when
	// none is running.
	GetHeadNode(cluster *dbapi.Cluster) (*ec2.Instance, *errors.ServiceError)
	// DeleteClusterInstances terminates the compute nodes of a slurm
	// cluster. Without force the call is rejected while the compute fleet
	// is protected.
	DeleteClusterInstances(ctx context.Context, cluster *dbapi.Cluster, force bool) *errors.ServiceError
}

var _ InstanceService = &instanceService{}

type instanceService struct {
	awsClientFactory    aws.ClientFactory
	awsConfig           *aws.AWSConfig
	computeFleetService ComputeFleetService
}

func NewInstanceService(awsClientFactory aws.ClientFactory, awsConfig *aws.AWSConfig, computeFleetService ComputeFleetService) *instanceService {
	return &instanceService{
		awsClientFactory:    awsClientFactory,
		awsConfig:           awsConfig,
		computeFleetService: computeFleetService,
	}
}

func (s *instanceService) client(region string) (aws.AWSClient, *errors.ServiceError) {
	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), region)
	if err != nil {
		return nil, errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}
	return client, nil
}

func instanceFilters(clusterName string, nodeType string, queueName string) []*ec2.Filter {
	filters := []*ec2.Filter{
		{
			Name:   awssdk.String("tag:" + constants.ClusterNameTagKey),
			Values: []*string{awssdk.String(clusterName)},
		},
		{
			Name:   awssdk.String("instance-state-name"),
			Values: []*string{awssdk.String(ec2.InstanceStateNamePending), awssdk.String(ec2.InstanceStateNameRunning)},
		},
	}
	if nodeType != "" {
		filters = append(filters, &ec2.Filter{
			Name:   awssdk.String("tag:" + constants.NodeTypeTagKey),
			Values: []*string{awssdk.String(nodeType)},
		})
	}
	if queueName != "" {
		filters = append(filters, &ec2.Filter{
			Name:   awssdk.String("tag:" + constants.QueueNameTagKey),
			Values: []*string{awssdk.String(queueName)},
		})
	}
	return filters
}

func (s *instanceService) ListClusterInstances(cluster *dbapi.Cluster, nodeType string, queueName string, nextToken string) ([]*ec2.Instance, string, *errors.ServiceError) {
	client, svcErr := s.client(cluster.Region)
	if svcErr != nil {
		return nil, "", svcErr
	}

	input := &ec2.DescribeInstancesInput{
		Filters: instanceFilters(cluster.Name, nodeType, queueName),
	}
	if nextToken != "" {
		input.NextToken = awssdk.String(nextToken)
	}

	output, err := client.DescribeInstances(input)
	if err != nil {
		return nil, "", aws.ToServiceError(err)
	}

	var instances []*ec2.Instance
	for _, reservation := range output.Reservations {
		instances = append(instances, reservation.Instances...)
	}
	return instances, awssdk.StringValue(output.NextToken), nil
}

func (s *instanceService) GetHeadNode(cluster *dbapi.Cluster) (*ec2.Instance, *errors.ServiceError) {
	instances, _, svcErr := s.ListClusterInstances(cluster, constants.NodeTypeHeadNode.String(), "", "")
	if svcErr != nil {
		return nil, svcErr
	}
	if len(instances) == 0 {
		return nil, nil
	}
	return instances[0], nil
}

func (s *instanceService) DeleteClusterInstances(ctx context.Context, cluster *dbapi.Cluster, force bool) *errors.ServiceError {
	if cluster.GetScheduler() == constants.SchedulerAwsBatch {
		return errors.BadRequest("the instances of an AWS Batch cluster are managed by the compute environment and cannot be terminated directly")
	}

	if !force {
		status, _, svcErr := s.computeFleetService.DescribeComputeFleet(ctx, cluster)
		if svcErr != nil {
			return svcErr
		}
		if status == constants.ComputeFleetStatusProtected {
			return errors.Conflict("the compute fleet of cluster %s is protected, use force to terminate its instances", cluster.Name)
		}
	}

	instances, _, svcErr := s.ListClusterInstances(cluster, constants.NodeTypeComputeNode.String(), "", "")
	if svcErr != nil {
		return svcErr
	}
	if len(instances) == 0 {
		return nil
	}

	instanceIds := make([]*string, 0, len(instances))
	for _, instance := range instances {
		instanceIds = append(instanceIds, instance.InstanceId)
	}

	client, svcErr := s.client(cluster.Region)
	if svcErr != nil {
		return svcErr
	}
	if _, err := client.TerminateInstances(instanceIds); err != nil {
		return aws.ToServiceError(err)
	}
	return nil
}
