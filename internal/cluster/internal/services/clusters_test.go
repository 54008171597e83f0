package services

import (
	"context"
	"reflect"
	"testing"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/converters"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	mocket "github.com/selvatico/go-mocket"
	"gorm.io/gorm"
)

var (
	testClusterName   = "test-cluster"
	testClusterRegion = "us-east-1"
	testClusterID     = "test"
	testOwner         = "test-user"
)

// build a test cluster
func buildCluster(modifyFn func(cluster *dbapi.Cluster)) *dbapi.Cluster {
	cluster := &dbapi.Cluster{
		Meta: api.Meta{
			ID:        testClusterID,
			DeletedAt: gorm.DeletedAt{Valid: true},
		},
		Name:      testClusterName,
		Region:    testClusterRegion,
		Scheduler: constants.SchedulerSlurm.String(),
		Version:   "3.7.0",
		Status:    constants.ClusterStatusCreateComplete.String(),
		Owner:     testOwner,
	}
	if modifyFn != nil {
		modifyFn(cluster)
	}
	return cluster
}

func Test_clusterService_Get(t *testing.T) {
	type fields struct {
		connectionFactory *db.ConnectionFactory
	}
	type args struct {
		ctx  context.Context
		name string
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		want    *dbapi.Cluster
		wantErr bool
		setupFn func()
	}{
		{
			name: "error when sql where query fails",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				ctx:  context.TODO(),
				name: testClusterName,
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithQueryException()
			},
		},
		{
			name: "error when no cluster with the name exists",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				ctx:  context.TODO(),
				name: "no-such-cluster",
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithReply(nil)
			},
		},
		{
			name: "successful output",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				ctx:  context.TODO(),
				name: testClusterName,
			},
			want: buildCluster(nil),
			setupFn: func() {
				mocket.Catcher.Reset().
					NewMock().
					WithQuery(`SELECT * FROM "clusters" WHERE name = $1`).
					WithArgs(testClusterName).
					WithReply(converters.ConvertCluster(buildCluster(nil)))
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupFn != nil {
				tt.setupFn()
			}
			k := &clusterService{
				connectionFactory: tt.fields.connectionFactory,
			}
			got, err := k.Get(tt.args.ctx, tt.args.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Get() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_clusterService_HasClusterWithName(t *testing.T) {
	tests := []struct {
		name    string
		want    bool
		wantErr bool
		setupFn func()
	}{
		{
			name:    "error when count query fails",
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT count").WithQueryException()
			},
		},
		{
			name: "false when no cluster exists",
			want: false,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT count").WithReply([]map[string]interface{}{{"count": 0}})
			},
		},
		{
			name: "true when a cluster exists",
			want: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT count").WithReply([]map[string]interface{}{{"count": 1}})
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			tt.setupFn()
			k := &clusterService{
				connectionFactory: db.NewMockConnectionFactory(nil),
			}
			got, err := k.HasClusterWithName(testClusterName)
			if (err != nil) != tt.wantErr {
				t.Errorf("HasClusterWithName() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("HasClusterWithName() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_clusterService_RegisterClusterJob(t *testing.T) {
	type fields struct {
		connectionFactory *db.ConnectionFactory
		awsClient         *aws.AWSClientMock
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr bool
		setupFn func()
	}{
		{
			name: "error when the configuration upload fails",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
				awsClient: &aws.AWSClientMock{
					PutObjectFunc: func(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
						return nil, awserr.New("InternalError", "upload failed", nil)
					},
				},
			},
			wantErr: true,
		},
		{
			name: "error when the insert fails",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
				awsClient: &aws.AWSClientMock{
					PutObjectFunc: func(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
						return &s3.PutObjectOutput{}, nil
					},
				},
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("INSERT").WithExecException().WithQueryException()
			},
		},
		{
			name: "successful registration stores the configuration location",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
				awsClient: &aws.AWSClientMock{
					PutObjectFunc: func(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
						return &s3.PutObjectOutput{}, nil
					},
				},
			},
			setupFn: func() {
				mocket.Catcher.Reset()
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupFn != nil {
				tt.setupFn()
			}
			awsConfig := aws.NewAWSConfig()
			k := &clusterService{
				connectionFactory: tt.fields.connectionFactory,
				awsClientFactory:  aws.NewMockClientFactory(tt.fields.awsClient),
				awsConfig:         awsConfig,
			}
			cluster := buildCluster(func(cluster *dbapi.Cluster) {
				cluster.Status = ""
			})
			err := k.RegisterClusterJob(cluster, []byte("Image:\n  Os: alinux2\n"))
			if (err != nil) != tt.wantErr {
				t.Errorf("RegisterClusterJob() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if cluster.Status != constants.ClusterStatusCreateInProgress.String() {
				t.Errorf("RegisterClusterJob() status = %v, want %v", cluster.Status, constants.ClusterStatusCreateInProgress)
			}
			wantURL := "s3://" + awsConfig.ConfigBucket + "/clusters/" + testClusterName + "/cluster-config.yaml"
			if cluster.ConfigurationS3URL != wantURL {
				t.Errorf("RegisterClusterJob() configuration url = %v, want %v", cluster.ConfigurationS3URL, wantURL)
			}
		})
	}
}

func Test_clusterService_RegisterClusterDeprovisionJob(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
		setupFn func()
	}{
		{
			name: "no-op when the cluster is already being deleted",
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithReply(converters.ConvertCluster(buildCluster(func(cluster *dbapi.Cluster) {
					cluster.Status = constants.ClusterStatusDeleteInProgress.String()
				})))
			},
		},
		{
			name: "accepted cluster is deleted immediately",
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithReply(converters.ConvertCluster(buildCluster(func(cluster *dbapi.Cluster) {
					cluster.Status = constants.ClusterStatusCreateInProgress.String()
					cluster.CloudformationStackArn = ""
				})))
			},
		},
		{
			name: "cluster with a stack is marked for the deprovisioning worker",
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithReply(converters.ConvertCluster(buildCluster(func(cluster *dbapi.Cluster) {
					cluster.CloudformationStackArn = "arn:aws:cloudformation:us-east-1:123456789012:stack/test-cluster/guid"
				})))
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			tt.setupFn()
			k := &clusterService{
				connectionFactory: db.NewMockConnectionFactory(nil),
			}
			err := k.RegisterClusterDeprovisionJob(context.TODO(), testClusterName, true)
			if (err != nil) != tt.wantErr {
				t.Errorf("RegisterClusterDeprovisionJob() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_clusterService_CreateStack(t *testing.T) {
	stackId := "arn:aws:cloudformation:us-east-1:123456789012:stack/test-cluster/guid"
	var gotInput *cloudformation.CreateStackInput
	awsClient := &aws.AWSClientMock{
		CreateStackFunc: func(input *cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error) {
			gotInput = input
			return &cloudformation.CreateStackOutput{StackId: awssdk.String(stackId)}, nil
		},
	}
	k := &clusterService{
		awsClientFactory: aws.NewMockClientFactory(awsClient),
		awsConfig:        aws.NewAWSConfig(),
	}

	cluster := buildCluster(func(cluster *dbapi.Cluster) {
		cluster.ConfigurationS3URL = "s3://hpc-fleet-configs/clusters/test-cluster/cluster-config.yaml"
		cluster.RollbackOnFailure = true
	})
	got, err := k.CreateStack(cluster)
	if err != nil {
		t.Fatalf("CreateStack() error = %v", err)
	}
	if got != stackId {
		t.Errorf("CreateStack() got = %v, want %v", got, stackId)
	}
	wantURL := "https://hpc-fleet-configs.s3.us-east-1.amazonaws.com/clusters/test-cluster/cluster-config.yaml"
	if awssdk.StringValue(gotInput.TemplateURL) != wantURL {
		t.Errorf("CreateStack() template url = %v, want %v", awssdk.StringValue(gotInput.TemplateURL), wantURL)
	}
	if awssdk.BoolValue(gotInput.DisableRollback) {
		t.Errorf("CreateStack() rollback should stay enabled for RollbackOnFailure clusters")
	}
}

func Test_clusterService_DeleteLogGroup(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantErr   bool
	}{
		{
			name: "successful deletion",
		},
		{
			name:      "missing log group is not an error",
			deleteErr: awserr.New("ResourceNotFoundException", "log group does not exist", nil),
		},
		{
			name:      "other AWS errors are returned",
			deleteErr: awserr.New("InternalError", "boom", nil),
			wantErr:   true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			awsClient := &aws.AWSClientMock{
				DeleteLogGroupFunc: func(logGroupName string) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
					if tt.deleteErr != nil {
						return nil, tt.deleteErr
					}
					return &cloudwatchlogs.DeleteLogGroupOutput{}, nil
				},
			}
			k := &clusterService{
				awsClientFactory: aws.NewMockClientFactory(awsClient),
				awsConfig:        aws.NewAWSConfig(),
			}
			err := k.DeleteLogGroup("/hpc-fleet/test-cluster", testClusterRegion)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeleteLogGroup() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
