package services

import (
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
)

func Test_logsService_StreamPrefixFromFilters(t *testing.T) {
	type args struct {
		filters []string
	}
	tests := []struct {
		name     string
		args     args
		headNode *ec2.Instance
		want     string
		wantErr  bool
	}{
		{
			name: "no filters means no prefix",
		},
		{
			name: "private dns name yields the short hostname",
			args: args{
				filters: []string{"Name=private-dns-name,Values=ip-10-0-0-1.ec2.internal"},
			},
			want: "ip-10-0-0-1",
		},
		{
			name: "head node filter resolves the head node hostname",
			args: args{
				filters: []string{"Name=node-type,Values=HeadNode"},
			},
			headNode: ec2Instance("i-0001", "ip-10-0-0-1.ec2.internal"),
			want:     "ip-10-0-0-1",
		},
		{
			name: "head node filter without a running head node",
			args: args{
				filters: []string{"Name=node-type,Values=HeadNode"},
			},
			wantErr: true,
		},
		{
			name: "compute node filter yields no prefix",
			args: args{
				filters: []string{"Name=node-type,Values=ComputeNode"},
			},
			want: "",
		},
		{
			name: "invalid node type",
			args: args{
				filters: []string{"Name=node-type,Values=LoginNode"},
			},
			wantErr: true,
		},
		{
			name: "malformed filter expression",
			args: args{
				filters: []string{"private-dns-name=ip-10-0-0-1"},
			},
			wantErr: true,
		},
		{
			name: "unknown filter name",
			args: args{
				filters: []string{"Name=instance-id,Values=i-0001"},
			},
			wantErr: true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			instanceService := &InstanceServiceMock{
				GetHeadNodeFunc: func(cluster *dbapi.Cluster) (*ec2.Instance, *errors.ServiceError) {
					return tt.headNode, nil
				},
			}
			k := &logsService{
				instanceService: instanceService,
			}
			got, err := k.StreamPrefixFromFilters(buildCluster(nil), tt.args.filters)
			if (err != nil) != tt.wantErr {
				t.Errorf("StreamPrefixFromFilters() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("StreamPrefixFromFilters() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_logsService_ListLogStreams(t *testing.T) {
	tests := []struct {
		name        string
		describeErr error
		wantErr     bool
		wantCode    int
	}{
		{
			name: "successful listing",
		},
		{
			name:        "missing log group means logging is disabled",
			describeErr: awserr.New("ResourceNotFoundException", "log group does not exist", nil),
			wantErr:     true,
			wantCode:    400,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			awsClient := &aws.AWSClientMock{
				DescribeLogStreamsFunc: func(input *cloudwatchlogs.DescribeLogStreamsInput) (*cloudwatchlogs.DescribeLogStreamsOutput, error) {
					if tt.describeErr != nil {
						return nil, tt.describeErr
					}
					return &cloudwatchlogs.DescribeLogStreamsOutput{
						LogStreams: []*cloudwatchlogs.LogStream{
							{LogStreamName: awssdk.String("ip-10-0-0-1.cfn-init")},
						},
					}, nil
				},
			}
			k := &logsService{
				awsClientFactory: aws.NewMockClientFactory(awsClient),
				awsConfig:        aws.NewAWSConfig(),
			}
			output, err := k.ListLogStreams(testClusterRegion, testClusterName, "/hpc-fleet/test-cluster", "ip-10-0-0-1", "")
			if (err != nil) != tt.wantErr {
				t.Errorf("ListLogStreams() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if tt.wantCode != 0 && err.HttpCode != tt.wantCode {
					t.Errorf("ListLogStreams() http code = %v, want %v", err.HttpCode, tt.wantCode)
				}
				return
			}
			if len(output.LogStreams) != 1 {
				t.Errorf("ListLogStreams() got %d streams, want 1", len(output.LogStreams))
			}
		})
	}
}

func Test_logsService_GetLogEvents(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name     string
		criteria GetLogEventsCriteria
		wantErr  bool
	}{
		{
			name: "successful query",
			criteria: GetLogEventsCriteria{
				StartTime: &start,
				EndTime:   &end,
			},
		},
		{
			name: "start time must be before end time",
			criteria: GetLogEventsCriteria{
				StartTime: &end,
				EndTime:   &start,
			},
			wantErr: true,
		},
		{
			name: "limit must be positive",
			criteria: GetLogEventsCriteria{
				Limit: awssdk.Int64(0),
			},
			wantErr: true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			awsClient := &aws.AWSClientMock{
				GetLogEventsFunc: func(input *cloudwatchlogs.GetLogEventsInput) (*cloudwatchlogs.GetLogEventsOutput, error) {
					return &cloudwatchlogs.GetLogEventsOutput{}, nil
				},
			}
			k := &logsService{
				awsClientFactory: aws.NewMockClientFactory(awsClient),
				awsConfig:        aws.NewAWSConfig(),
			}
			_, err := k.GetLogEvents(testClusterRegion, testClusterName, "/hpc-fleet/test-cluster", "ip-10-0-0-1.cfn-init", tt.criteria)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetLogEvents() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_logsService_GetStackEvents(t *testing.T) {
	tests := []struct {
		name        string
		describeErr error
		wantErr     bool
		wantCode    int
	}{
		{
			name: "successful query",
		},
		{
			name:        "missing stack is a 404",
			describeErr: awserr.New("ValidationError", "Stack with id test-cluster does not exist", nil),
			wantErr:     true,
			wantCode:    404,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			awsClient := &aws.AWSClientMock{
				DescribeStackEventsFunc: func(stackName string, nextToken *string) (*cloudformation.DescribeStackEventsOutput, error) {
					if tt.describeErr != nil {
						return nil, tt.describeErr
					}
					return &cloudformation.DescribeStackEventsOutput{}, nil
				},
			}
			k := &logsService{
				awsClientFactory: aws.NewMockClientFactory(awsClient),
				awsConfig:        aws.NewAWSConfig(),
			}
			_, err := k.GetStackEvents(testClusterRegion, testClusterName, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("GetStackEvents() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.wantCode != 0 && err.HttpCode != tt.wantCode {
				t.Errorf("GetStackEvents() http code = %v, want %v", err.HttpCode, tt.wantCode)
			}
		})
	}
}
