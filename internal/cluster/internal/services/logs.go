package services

import (
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
)

const (
	logStreamFilterPrivateDnsName = "private-dns-name"
	logStreamFilterNodeType       = "node-type"
)

// GetLogEventsCriteria narrows a log event query.
type GetLogEventsCriteria struct {
	StartTime     *time.Time
	EndTime       *time.Time
	Limit         *int64
	StartFromHead bool
	NextToken     string
}

//go:generate moq -out logsservice_moq.go . LogsService
type LogsService interface {
	// StreamPrefixFromFilters converts the logstreams filter expressions
	// into the log stream name prefix used against CloudWatch.
	StreamPrefixFromFilters(cluster *dbapi.Cluster, filters []string) (string, *errors.ServiceError)
	// ListLogStreams lists the log streams of the named log group. The name
	// argument is the owning cluster or image id, used in error messages.
	ListLogStreams(region string, name string, logGroupName string, prefix string, nextToken string) (*cloudwatchlogs.DescribeLogStreamsOutput, *errors.ServiceError)
	GetLogEvents(region string, name string, logGroupName string, logStreamName string, criteria GetLogEventsCriteria) (*cloudwatchlogs.GetLogEventsOutput, *errors.ServiceError)
	GetStackEvents(region string, stackName string, nextToken string) (*cloudformation.DescribeStackEventsOutput, *errors.ServiceError)
}

var _ LogsService = &logsService{}

type logsService struct {
	awsClientFactory aws.ClientFactory
	awsConfig        *aws.AWSConfig
	instanceService  InstanceService
}

func NewLogsService(awsClientFactory aws.ClientFactory, awsConfig *aws.AWSConfig, instanceService InstanceService) *logsService {
	return &logsService{
		awsClientFactory: awsClientFactory,
		awsConfig:        awsConfig,
		instanceService:  instanceService,
	}
}

func (s *logsService) client(region string) (aws.AWSClient, *errors.ServiceError) {
	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), region)
	if err != nil {
		return nil, errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}
	return client, nil
}

func (s *logsService) StreamPrefixFromFilters(cluster *dbapi.Cluster, filters []string) (string, *errors.ServiceError) {
	for _, filter := range filters {
		name, values, svcErr := parseLogStreamFilter(filter)
		if svcErr != nil {
			return "", svcErr
		}
		switch name {
		case logStreamFilterPrivateDnsName:
			// Stream names start with the short hostname of the node.
			return shortHostname(values[0]), nil
		case logStreamFilterNodeType:
			if !constants.IsValidNodeType(values[0]) {
				return "", errors.BadRequest("invalid node type %q in filter %q", values[0], filter)
			}
			if constants.NodeType(values[0]) == constants.NodeTypeHeadNode {
				headNode, svcErr := s.instanceService.GetHeadNode(cluster)
				if svcErr != nil {
					return "", svcErr
				}
				if headNode == nil {
					return "", errors.NotFound("cluster %s has no running head node", cluster.Name)
				}
				return shortHostname(awssdk.StringValue(headNode.PrivateDnsName)), nil
			}
			// Compute node streams carry no common prefix.
			return "", nil
		}
	}
	return "", nil
}

// parseLogStreamFilter splits a "Name=<name>,Values=v1,v2" expression.
func parseLogStreamFilter(filter string) (string, []string, *errors.ServiceError) {
	if !strings.HasPrefix(filter, "Name=") {
		return "", nil, errors.BadRequest("invalid filter %q, expected Name=<name>,Values=<v1,v2,...>", filter)
	}
	name, valuesPart, found := strings.Cut(strings.TrimPrefix(filter, "Name="), ",Values=")
	if !found || valuesPart == "" {
		return "", nil, errors.BadRequest("invalid filter %q, expected Name=<name>,Values=<v1,v2,...>", filter)
	}
	if name != logStreamFilterPrivateDnsName && name != logStreamFilterNodeType {
		return "", nil, errors.BadRequest("invalid filter name %q, must be %q or %q", name, logStreamFilterPrivateDnsName, logStreamFilterNodeType)
	}
	return name, strings.Split(valuesPart, ","), nil
}

func shortHostname(privateDnsName string) string {
	host, _, _ := strings.Cut(privateDnsName, ".")
	return host
}

func (s *logsService) ListLogStreams(region string, name string, logGroupName string, prefix string, nextToken string) (*cloudwatchlogs.DescribeLogStreamsOutput, *errors.ServiceError) {
	client, svcErr := s.client(region)
	if svcErr != nil {
		return nil, svcErr
	}

	input := &cloudwatchlogs.DescribeLogStreamsInput{
		LogGroupName: awssdk.String(logGroupName),
	}
	if prefix != "" {
		input.LogStreamNamePrefix = awssdk.String(prefix)
	}
	if nextToken != "" {
		input.NextToken = awssdk.String(nextToken)
	}

	output, err := client.DescribeLogStreams(input)
	if err != nil {
		if aws.IsResourceNotFound(err) {
			return nil, errors.BadRequest("CloudWatch logging is not enabled for cluster %s", name)
		}
		return nil, aws.ToServiceError(err)
	}
	return output, nil
}

func (s *logsService) GetLogEvents(region string, name string, logGroupName string, logStreamName string, criteria GetLogEventsCriteria) (*cloudwatchlogs.GetLogEventsOutput, *errors.ServiceError) {
	if criteria.StartTime != nil && criteria.EndTime != nil && !criteria.StartTime.Before(*criteria.EndTime) {
		return nil, errors.BadRequest("startTime must be earlier than endTime")
	}
	if criteria.Limit != nil && *criteria.Limit <= 0 {
		return nil, errors.BadRequest("limit must be a positive integer")
	}

	client, svcErr := s.client(region)
	if svcErr != nil {
		return nil, svcErr
	}

	input := &cloudwatchlogs.GetLogEventsInput{
		LogGroupName:  awssdk.String(logGroupName),
		LogStreamName: awssdk.String(logStreamName),
		StartFromHead: awssdk.Bool(criteria.StartFromHead),
	}
	if criteria.StartTime != nil {
		input.StartTime = awssdk.Int64(criteria.StartTime.UnixMilli())
	}
	if criteria.EndTime != nil {
		input.EndTime = awssdk.Int64(criteria.EndTime.UnixMilli())
	}
	if criteria.Limit != nil {
		input.Limit = criteria.Limit
	}
	if criteria.NextToken != "" {
		input.NextToken = awssdk.String(criteria.NextToken)
	}

	output, err := client.GetLogEvents(input)
	if err != nil {
		if aws.IsResourceNotFound(err) {
			return nil, errors.BadRequest("CloudWatch logging is not enabled for cluster %s", name)
		}
		return nil, aws.ToServiceError(err)
	}
	return output, nil
}

func (s *logsService) GetStackEvents(region string, stackName string, nextToken string) (*cloudformation.DescribeStackEventsOutput, *errors.ServiceError) {
	client, svcErr := s.client(region)
	if svcErr != nil {
		return nil, svcErr
	}

	var token *string
	if nextToken != "" {
		token = awssdk.String(nextToken)
	}
	output, err := client.DescribeStackEvents(stackName, token)
	if err != nil {
		if aws.IsStackNotFound(err) {
			return nil, errors.NotFound("stack %s does not exist", stackName)
		}
		return nil, aws.ToServiceError(err)
	}
	return output, nil
}
