package services

import (
	"context"
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/looplab/fsm"
)

const (
	// computeFleetItemId is the partition key of the single compute fleet
	// status item in each per-cluster DynamoDB table.
	computeFleetItemId = "COMPUTE_FLEET"

	idAttribute          = "Id"
	statusAttribute      = "Status"
	lastUpdatedAttribute = "LastStatusUpdatedTime"
)

// fleetTransitions guards the caller-requested compute fleet status changes.
// Statuses not listed as a source for an event reject that event.
var fleetTransitions = fsm.Events{
	{
		Name: constants.ComputeFleetStatusStartRequested.String(),
		Src: []string{
			constants.ComputeFleetStatusStopped.String(),
			constants.ComputeFleetStatusProtected.String(),
		},
		Dst: constants.ComputeFleetStatusStartRequested.String(),
	},
	{
		Name: constants.ComputeFleetStatusStopRequested.String(),
		Src: []string{
			constants.ComputeFleetStatusRunning.String(),
			constants.ComputeFleetStatusStarting.String(),
			constants.ComputeFleetStatusStartRequested.String(),
			constants.ComputeFleetStatusProtected.String(),
		},
		Dst: constants.ComputeFleetStatusStopRequested.String(),
	},
	{
		Name: constants.ComputeFleetStatusEnabled.String(),
		Src: []string{
			constants.ComputeFleetStatusDisabled.String(),
		},
		Dst: constants.ComputeFleetStatusEnabled.String(),
	},
	{
		Name: constants.ComputeFleetStatusDisabled.String(),
		Src: []string{
			constants.ComputeFleetStatusEnabled.String(),
		},
		Dst: constants.ComputeFleetStatusDisabled.String(),
	},
}

//go:generate moq -out computefleetservice_moq.go . ComputeFleetService
type ComputeFleetService interface {
	// DescribeComputeFleet reads the fleet status item of the cluster.
	// A cluster whose table has no item yet reports UNKNOWN.
	DescribeComputeFleet(ctx context.Context, cluster *dbapi.Cluster) (constants.ComputeFleetStatus, string, *errors.ServiceError)
	// UpdateComputeFleet requests a fleet status transition. The write is a
	// conditional DynamoDB put keyed on the status the transition was
	// computed from; losing that race is a conflict, never a silent
	// overwrite.
	UpdateComputeFleet(ctx context.Context, cluster *dbapi.Cluster, requested constants.ComputeFleetStatus) (constants.ComputeFleetStatus, string, *errors.ServiceError)
	// BootstrapComputeFleet writes the initial fleet status item once the
	// cluster stack reaches CREATE_COMPLETE.
	BootstrapComputeFleet(cluster *dbapi.Cluster) *errors.ServiceError
}

var _ ComputeFleetService = &computeFleetService{}

type computeFleetService struct {
	awsClientFactory aws.ClientFactory
	awsConfig        *aws.AWSConfig
}

func NewComputeFleetService(awsClientFactory aws.ClientFactory, awsConfig *aws.AWSConfig) *computeFleetService {
	return &computeFleetService{
		awsClientFactory: awsClientFactory,
		awsConfig:        awsConfig,
	}
}

func (s *computeFleetService) tableName(cluster *dbapi.Cluster) string {
	return s.awsConfig.DynamoDBTablePrefix + cluster.Name
}

func (s *computeFleetService) DescribeComputeFleet(ctx context.Context, cluster *dbapi.Cluster) (constants.ComputeFleetStatus, string, *errors.ServiceError) {
	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), cluster.Region)
	if err != nil {
		return "", "", errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}

	output, getErr := client.GetItem(&dynamodb.GetItemInput{
		TableName:      awssdk.String(s.tableName(cluster)),
		ConsistentRead: awssdk.Bool(true),
		Key: map[string]*dynamodb.AttributeValue{
			idAttribute: {S: awssdk.String(computeFleetItemId)},
		},
	})
	if getErr != nil {
		if aws.IsResourceNotFound(getErr) {
			return constants.ComputeFleetStatusUnknown, "", nil
		}
		return "", "", aws.ToServiceError(getErr)
	}
	if output.Item == nil {
		return constants.ComputeFleetStatusUnknown, "", nil
	}

	status := constants.ComputeFleetStatusUnknown
	if attr := output.Item[statusAttribute]; attr != nil && attr.S != nil {
		status = constants.ComputeFleetStatus(*attr.S)
	}
	lastUpdated := ""
	if attr := output.Item[lastUpdatedAttribute]; attr != nil && attr.S != nil {
		lastUpdated = *attr.S
	}
	return status, lastUpdated, nil
}

func (s *computeFleetService) UpdateComputeFleet(ctx context.Context, cluster *dbapi.Cluster, requested constants.ComputeFleetStatus) (constants.ComputeFleetStatus, string, *errors.ServiceError) {
	if !isRequestable(cluster.GetScheduler(), requested) {
		return "", "", errors.BadRequest("status %q cannot be requested for a %s cluster", requested, cluster.Scheduler)
	}

	current, _, svcErr := s.DescribeComputeFleet(ctx, cluster)
	if svcErr != nil {
		return "", "", svcErr
	}

	guard := fsm.NewFSM(current.String(), fleetTransitions, nil)
	if err := guard.Event(ctx, requested.String()); err != nil {
		return "", "", errors.BadRequest("compute fleet status cannot change from %s to %s", current, requested)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), cluster.Region)
	if err != nil {
		return "", "", errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}

	_, putErr := client.PutItem(&dynamodb.PutItemInput{
		TableName: awssdk.String(s.tableName(cluster)),
		Item: map[string]*dynamodb.AttributeValue{
			idAttribute:          {S: awssdk.String(computeFleetItemId)},
			statusAttribute:      {S: awssdk.String(requested.String())},
			lastUpdatedAttribute: {S: awssdk.String(now)},
		},
		ConditionExpression: awssdk.String("attribute_not_exists(#id) OR #status = :expected"),
		ExpressionAttributeNames: map[string]*string{
			"#id":     awssdk.String(idAttribute),
			"#status": awssdk.String(statusAttribute),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":expected": {S: awssdk.String(current.String())},
		},
	})
	if putErr != nil {
		if aws.IsConditionalCheckFailed(putErr) {
			return "", "", errors.Conflict("compute fleet status of cluster %s changed concurrently, retry the request", cluster.Name)
		}
		return "", "", aws.ToServiceError(putErr)
	}

	return requested, now, nil
}

func (s *computeFleetService) BootstrapComputeFleet(cluster *dbapi.Cluster) *errors.ServiceError {
	initial := constants.ComputeFleetStatusRunning
	if cluster.GetScheduler() == constants.SchedulerAwsBatch {
		initial = constants.ComputeFleetStatusEnabled
	}

	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), cluster.Region)
	if err != nil {
		return errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}

	_, putErr := client.PutItem(&dynamodb.PutItemInput{
		TableName: awssdk.String(s.tableName(cluster)),
		Item: map[string]*dynamodb.AttributeValue{
			idAttribute:          {S: awssdk.String(computeFleetItemId)},
			statusAttribute:      {S: awssdk.String(initial.String())},
			lastUpdatedAttribute: {S: awssdk.String(time.Now().UTC().Format(time.RFC3339))},
		},
		ConditionExpression: awssdk.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]*string{
			"#id": awssdk.String(idAttribute),
		},
	})
	if putErr != nil {
		if aws.IsConditionalCheckFailed(putErr) {
			// Another replica already bootstrapped the item.
			return nil
		}
		return aws.ToServiceError(putErr)
	}
	return nil
}

func isRequestable(scheduler constants.Scheduler, status constants.ComputeFleetStatus) bool {
	for _, requestable := range constants.RequestableComputeFleetStatuses(scheduler) {
		if requestable == status {
			return true
		}
	}
	return false
}
