package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awsclient "github.com/aws/aws-sdk-go/aws/client"
	awscredentials "github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs/cloudwatchlogsiface"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

//go:generate moq -out client_moq.go . AWSClient
type AWSClient interface {
	// cloudformation
	CreateStack(input *cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error)
	UpdateStack(input *cloudformation.UpdateStackInput) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(stackName string) (*cloudformation.DeleteStackOutput, error)
	DescribeStack(stackName string) (*cloudformation.Stack, error)
	DescribeStackEvents(stackName string, nextToken *string) (*cloudformation.DescribeStackEventsOutput, error)

	// cloudwatch logs
	DescribeLogStreams(input *cloudwatchlogs.DescribeLogStreamsInput) (*cloudwatchlogs.DescribeLogStreamsOutput, error)
	GetLogEvents(input *cloudwatchlogs.GetLogEventsInput) (*cloudwatchlogs.GetLogEventsOutput, error)
	FilterLogEvents(input *cloudwatchlogs.FilterLogEventsInput) (*cloudwatchlogs.FilterLogEventsOutput, error)
	DeleteLogGroup(logGroupName string) (*cloudwatchlogs.DeleteLogGroupOutput, error)

	// ec2
	DescribeInstances(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error)
	DescribeImages(input *ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error)
	TerminateInstances(instanceIds []*string) (*ec2.TerminateInstancesOutput, error)

	// dynamodb
	GetItem(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	PutItem(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)

	// s3
	PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	GetObject(bucket string, key string) (*s3.GetObjectOutput, error)
	DeleteObject(bucket string, key string) (*s3.DeleteObjectOutput, error)
}

type ClientFactory interface {
	NewClient(credentials Config, region string) (AWSClient, error)
}

type DefaultClientFactory struct{}

func (f *DefaultClientFactory) NewClient(credentials Config, region string) (AWSClient, error) {
	return newClient(credentials, region)
}

func NewDefaultClientFactory() *DefaultClientFactory {
	return &DefaultClientFactory{}
}

type MockClientFactory struct {
	mock AWSClient
}

func (m *MockClientFactory) NewClient(credentials Config, region string) (AWSClient, error) {
	return m.mock, nil
}

func NewMockClientFactory(client AWSClient) *MockClientFactory {
	return &MockClientFactory{
		mock: client,
	}
}

var _ AWSClient = &awsCl{}

type awsCl struct {
	cloudFormationClient cloudformationiface.CloudFormationAPI
	cloudWatchLogsClient cloudwatchlogsiface.CloudWatchLogsAPI
	ec2Client            ec2iface.EC2API
	dynamoDBClient       dynamodbiface.DynamoDBAPI
	s3Client             s3iface.S3API
}

// Config contains the AWS settings
type Config struct {
	// AccessKeyID is the AWS access key identifier.
	AccessKeyID string
	// SecretAccessKey is the AWS secret access key.
	SecretAccessKey string
}

func newClient(credentials Config, region string) (AWSClient, error) {
	cfg := &aws.Config{
		Region:  aws.String(region),
		Retryer: awsclient.DefaultRetryer{NumMaxRetries: 2},
	}
	if credentials.AccessKeyID != "" {
		cfg.Credentials = awscredentials.NewStaticCredentials(
			credentials.AccessKeyID,
			credentials.SecretAccessKey,
			"")
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &awsCl{
		cloudFormationClient: cloudformation.New(sess),
		cloudWatchLogsClient: cloudwatchlogs.New(sess),
		ec2Client:            ec2.New(sess),
		dynamoDBClient:       dynamodb.New(sess),
		s3Client:             s3.New(sess),
	}, nil
}

func (client *awsCl) CreateStack(input *cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error) {
	output, err := client.cloudFormationClient.CreateStack(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to create stack.")
	}
	return output, nil
}

func (client *awsCl) UpdateStack(input *cloudformation.UpdateStackInput) (*cloudformation.UpdateStackOutput, error) {
	output, err := client.cloudFormationClient.UpdateStack(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to update stack.")
	}
	return output, nil
}

func (client *awsCl) DeleteStack(stackName string) (*cloudformation.DeleteStackOutput, error) {
	output, err := client.cloudFormationClient.DeleteStack(&cloudformation.DeleteStackInput{
		StackName: &stackName,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to delete stack.")
	}
	return output, nil
}

// DescribeStack returns the named stack. A stack CloudFormation does not
// know surfaces as the SDK ValidationError, see IsStackNotFound.
func (client *awsCl) DescribeStack(stackName string) (*cloudformation.Stack, error) {
	output, err := client.cloudFormationClient.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: &stackName,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to describe stack.")
	}
	if len(output.Stacks) == 0 {
		return nil, awserr.New("ValidationError", fmt.Sprintf("Stack with id %s does not exist", stackName), nil)
	}
	return output.Stacks[0], nil
}

func (client *awsCl) DescribeStackEvents(stackName string, nextToken *string) (*cloudformation.DescribeStackEventsOutput, error) {
	output, err := client.cloudFormationClient.DescribeStackEvents(&cloudformation.DescribeStackEventsInput{
		StackName: &stackName,
		NextToken: nextToken,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to describe stack events.")
	}
	return output, nil
}

func (client *awsCl) DescribeLogStreams(input *cloudwatchlogs.DescribeLogStreamsInput) (*cloudwatchlogs.DescribeLogStreamsOutput, error) {
	output, err := client.cloudWatchLogsClient.DescribeLogStreams(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to describe log streams.")
	}
	return output, nil
}

func (client *awsCl) GetLogEvents(input *cloudwatchlogs.GetLogEventsInput) (*cloudwatchlogs.GetLogEventsOutput, error) {
	output, err := client.cloudWatchLogsClient.GetLogEvents(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to get log events.")
	}
	return output, nil
}

func (client *awsCl) FilterLogEvents(input *cloudwatchlogs.FilterLogEventsInput) (*cloudwatchlogs.FilterLogEventsOutput, error) {
	output, err := client.cloudWatchLogsClient.FilterLogEvents(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to filter log events.")
	}
	return output, nil
}

func (client *awsCl) DeleteLogGroup(logGroupName string) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
	output, err := client.cloudWatchLogsClient.DeleteLogGroup(&cloudwatchlogs.DeleteLogGroupInput{
		LogGroupName: &logGroupName,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to delete log group.")
	}
	return output, nil
}

func (client *awsCl) DescribeImages(input *ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error) {
	output, err := client.ec2Client.DescribeImages(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to describe images.")
	}
	return output, nil
}

func (client *awsCl) DescribeInstances(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
	output, err := client.ec2Client.DescribeInstances(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to describe instances.")
	}
	return output, nil
}

func (client *awsCl) TerminateInstances(instanceIds []*string) (*ec2.TerminateInstancesOutput, error) {
	output, err := client.ec2Client.TerminateInstances(&ec2.TerminateInstancesInput{
		InstanceIds: instanceIds,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to terminate instances.")
	}
	return output, nil
}

func (client *awsCl) GetItem(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	output, err := client.dynamoDBClient.GetItem(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to get item.")
	}
	return output, nil
}

func (client *awsCl) PutItem(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	output, err := client.dynamoDBClient.PutItem(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to put item.")
	}
	return output, nil
}

func (client *awsCl) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	output, err := client.s3Client.PutObject(input)
	if err != nil {
		return nil, wrapAWSError(err, "Failed to put object.")
	}
	return output, nil
}

func (client *awsCl) GetObject(bucket string, key string) (*s3.GetObjectOutput, error) {
	output, err := client.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to get object.")
	}
	return output, nil
}

func (client *awsCl) DeleteObject(bucket string, key string) (*s3.DeleteObjectOutput, error) {
	output, err := client.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, wrapAWSError(err, "Failed to delete object.")
	}
	return output, nil
}
