package services

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/auth"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
	coreServices "github.com/hpc-fleet/hpc-fleet-manager/pkg/services"
)

//go:generate moq -out clusterservice_moq.go . ClusterService
type ClusterService interface {
	// RegisterClusterJob uploads the validated configuration document to S3
	// and persists the accepted cluster row. The creating worker picks the
	// row up and performs the CloudFormation interaction.
	RegisterClusterJob(cluster *dbapi.Cluster, configuration []byte) *errors.ServiceError
	// Get returns the live cluster row with the given name.
	Get(ctx context.Context, name string) (*dbapi.Cluster, *errors.ServiceError)
	List(ctx context.Context, listArgs *coreServices.ListArguments, region string, statusFilter []string) (dbapi.ClusterList, *api.PagingMeta, *errors.ServiceError)
	ListByStatus(status ...constants.ClusterStatus) (dbapi.ClusterList, *errors.ServiceError)
	// Update uploads the new configuration document and marks the cluster
	// UPDATE_IN_PROGRESS for the provisioning worker.
	Update(cluster *dbapi.Cluster, configuration []byte) *errors.ServiceError
	// Updates updates the given columns of a cluster. This takes a map so
	// that zero values can be written too.
	Updates(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError
	UpdateStatus(cluster *dbapi.Cluster, status constants.ClusterStatus) *errors.ServiceError
	// RegisterClusterDeprovisionJob marks the cluster DELETE_IN_PROGRESS.
	RegisterClusterDeprovisionJob(ctx context.Context, name string, retainLogs bool) *errors.ServiceError
	// Delete soft deletes the cluster row once its stack is gone.
	Delete(cluster *dbapi.Cluster) *errors.ServiceError
	HasClusterWithName(name string) (bool, *errors.ServiceError)

	// CloudFormation interactions used by the reconciler workers.
	CreateStack(cluster *dbapi.Cluster) (string, *errors.ServiceError)
	UpdateStack(cluster *dbapi.Cluster) *errors.ServiceError
	DescribeStack(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError)
	DeleteStack(cluster *dbapi.Cluster) *errors.ServiceError
	DeleteLogGroup(logGroupName string, region string) *errors.ServiceError
}

var _ ClusterService = &clusterService{}

type clusterService struct {
	connectionFactory *db.ConnectionFactory
	awsClientFactory  aws.ClientFactory
	awsConfig         *aws.AWSConfig
}

func NewClusterService(connectionFactory *db.ConnectionFactory, awsClientFactory aws.ClientFactory, awsConfig *aws.AWSConfig) *clusterService {
	return &clusterService{
		connectionFactory: connectionFactory,
		awsClientFactory:  awsClientFactory,
		awsConfig:         awsConfig,
	}
}

func (s *clusterService) awsClient(region string) (aws.AWSClient, *errors.ServiceError) {
	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), region)
	if err != nil {
		return nil, errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}
	return client, nil
}

func configObjectKey(name string) string {
	return fmt.Sprintf("clusters/%s/cluster-config.yaml", name)
}

func (s *clusterService) uploadConfiguration(cluster *dbapi.Cluster, configuration []byte) *errors.ServiceError {
	client, svcErr := s.awsClient(cluster.Region)
	if svcErr != nil {
		return svcErr
	}
	key := configObjectKey(cluster.Name)
	_, err := client.PutObject(&s3.PutObjectInput{
		Bucket: awssdk.String(s.awsConfig.ConfigBucket),
		Key:    awssdk.String(key),
		Body:   strings.NewReader(string(configuration)),
	})
	if err != nil {
		return aws.ToServiceError(err)
	}
	cluster.ConfigurationS3URL = fmt.Sprintf("s3://%s/%s", s.awsConfig.ConfigBucket, key)
	return nil
}

func (s *clusterService) RegisterClusterJob(cluster *dbapi.Cluster, configuration []byte) *errors.ServiceError {
	if err := s.uploadConfiguration(cluster, configuration); err != nil {
		return err
	}

	cluster.Status = constants.ClusterStatusCreateInProgress.String()
	dbConn := s.connectionFactory.New()
	if err := dbConn.Create(cluster).Error; err != nil {
		return coreServices.HandleCreateError("Cluster", err)
	}

	metrics.IncreaseClusterTotalOperationsCountMetric(constants.ClusterOperationCreate)
	return nil
}

func (s *clusterService) Get(ctx context.Context, name string) (*dbapi.Cluster, *errors.ServiceError) {
	dbConn := s.connectionFactory.New()

	var cluster dbapi.Cluster
	query := dbConn.Where("name = ?", name)
	// Callers only see the clusters of their own organisation.
	if orgId := auth.GetOrgIdFromContext(ctx); orgId != "" {
		query = query.Where("organisation_id = ?", orgId)
	}
	if err := query.First(&cluster).Error; err != nil {
		return nil, coreServices.HandleGetError("Cluster", "name", name, err)
	}
	return &cluster, nil
}

func (s *clusterService) List(ctx context.Context, listArgs *coreServices.ListArguments, region string, statusFilter []string) (dbapi.ClusterList, *api.PagingMeta, *errors.ServiceError) {
	dbConn := s.connectionFactory.New()
	pagingMeta := &api.PagingMeta{
		Page: listArgs.Page,
		Size: listArgs.Size,
	}

	if orgId := auth.GetOrgIdFromContext(ctx); orgId != "" {
		dbConn = dbConn.Where("organisation_id = ?", orgId)
	}
	if region != "" {
		dbConn = dbConn.Where("region = ?", region)
	}
	if len(statusFilter) > 0 {
		dbConn = dbConn.Where("status IN (?)", statusFilter)
	}

	var total int64
	if err := dbConn.Model(&dbapi.Cluster{}).Count(&total).Error; err != nil {
		return nil, nil, errors.GeneralError("Unable to count clusters: %s", err.Error())
	}
	pagingMeta.Total = int(total)

	if len(listArgs.OrderBy) == 0 {
		dbConn = dbConn.Order("name asc")
	} else {
		dbConn = dbConn.Order(strings.Join(listArgs.OrderBy, ", "))
	}

	var clusters dbapi.ClusterList
	dbConn = dbConn.Offset((listArgs.Page - 1) * listArgs.Size).Limit(listArgs.Size)
	if err := dbConn.Find(&clusters).Error; err != nil {
		return nil, nil, errors.GeneralError("Unable to list clusters: %s", err.Error())
	}

	return clusters, pagingMeta, nil
}

func (s *clusterService) ListByStatus(status ...constants.ClusterStatus) (dbapi.ClusterList, *errors.ServiceError) {
	values := make([]string, 0, len(status))
	for _, st := range status {
		values = append(values, st.String())
	}

	dbConn := s.connectionFactory.New()
	var clusters dbapi.ClusterList
	if err := dbConn.Where("status IN (?)", values).Find(&clusters).Error; err != nil {
		return nil, errors.GeneralError("Unable to list clusters by status: %s", err.Error())
	}
	return clusters, nil
}

func (s *clusterService) Update(cluster *dbapi.Cluster, configuration []byte) *errors.ServiceError {
	if err := s.uploadConfiguration(cluster, configuration); err != nil {
		return err
	}

	cluster.Status = constants.ClusterStatusUpdateInProgress.String()
	dbConn := s.connectionFactory.New()
	if err := dbConn.Model(cluster).Updates(map[string]interface{}{
		"status":               cluster.Status,
		"configuration_s3_url": cluster.ConfigurationS3URL,
		"failure_reason":       "",
	}).Error; err != nil {
		return coreServices.HandleUpdateError("Cluster", err)
	}

	metrics.IncreaseClusterTotalOperationsCountMetric(constants.ClusterOperationUpdate)
	return nil
}

func (s *clusterService) Updates(cluster *dbapi.Cluster, values map[string]interface{}) *errors.ServiceError {
	dbConn := s.connectionFactory.New()
	if err := dbConn.Model(cluster).Updates(values).Error; err != nil {
		return coreServices.HandleUpdateError("Cluster", err)
	}
	return nil
}

func (s *clusterService) UpdateStatus(cluster *dbapi.Cluster, status constants.ClusterStatus) *errors.ServiceError {
	dbConn := s.connectionFactory.New()
	if err := dbConn.Model(cluster).Update("status", status.String()).Error; err != nil {
		return coreServices.HandleUpdateError("Cluster", err)
	}
	cluster.Status = status.String()
	return nil
}

func (s *clusterService) RegisterClusterDeprovisionJob(ctx context.Context, name string, retainLogs bool) *errors.ServiceError {
	cluster, svcErr := s.Get(ctx, name)
	if svcErr != nil {
		return svcErr
	}
	if cluster.Status == constants.ClusterStatusDeleteInProgress.String() {
		return nil
	}
	if cluster.Status == constants.ClusterStatusCreateInProgress.String() && cluster.CloudformationStackArn == "" {
		// No stack exists yet, the row can go away immediately.
		return s.Delete(cluster)
	}

	if err := s.Updates(cluster, map[string]interface{}{
		"status":      constants.ClusterStatusDeleteInProgress.String(),
		"retain_logs": retainLogs,
	}); err != nil {
		return err
	}
	metrics.IncreaseClusterTotalOperationsCountMetric(constants.ClusterOperationDelete)
	return nil
}

func (s *clusterService) Delete(cluster *dbapi.Cluster) *errors.ServiceError {
	dbConn := s.connectionFactory.New()
	if err := dbConn.Delete(cluster).Error; err != nil {
		return coreServices.HandleDeleteError("Cluster", "name", cluster.Name, err)
	}
	metrics.IncreaseClusterSuccessOperationsCountMetric(constants.ClusterOperationDelete)
	return nil
}

func (s *clusterService) HasClusterWithName(name string) (bool, *errors.ServiceError) {
	dbConn := s.connectionFactory.New()
	var count int64
	if err := dbConn.Model(&dbapi.Cluster{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, errors.GeneralError("Unable to count clusters with name %s: %s", name, err.Error())
	}
	return count > 0, nil
}

// templateURL converts the stored s3://bucket/key configuration location into
// the https form CloudFormation accepts.
func (s *clusterService) templateURL(configurationS3URL string, region string) string {
	trimmed := strings.TrimPrefix(configurationS3URL, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 {
		return configurationS3URL
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", parts[0], region, parts[1])
}

func (s *clusterService) CreateStack(cluster *dbapi.Cluster) (string, *errors.ServiceError) {
	client, svcErr := s.awsClient(cluster.Region)
	if svcErr != nil {
		return "", svcErr
	}

	output, err := client.CreateStack(&cloudformation.CreateStackInput{
		StackName:       awssdk.String(cluster.Name),
		TemplateURL:     awssdk.String(s.templateURL(cluster.ConfigurationS3URL, cluster.Region)),
		DisableRollback: awssdk.Bool(!cluster.RollbackOnFailure),
		Capabilities:    []*string{awssdk.String(cloudformation.CapabilityCapabilityIam)},
		Tags: []*cloudformation.Tag{
			{Key: awssdk.String(constants.ClusterNameTagKey), Value: awssdk.String(cluster.Name)},
			{Key: awssdk.String(constants.VersionTagKey), Value: awssdk.String(cluster.Version)},
		},
	})
	if err != nil {
		return "", aws.ToServiceError(err)
	}
	return awssdk.StringValue(output.StackId), nil
}

func (s *clusterService) UpdateStack(cluster *dbapi.Cluster) *errors.ServiceError {
	client, svcErr := s.awsClient(cluster.Region)
	if svcErr != nil {
		return svcErr
	}
	_, err := client.UpdateStack(&cloudformation.UpdateStackInput{
		StackName:    awssdk.String(cluster.Name),
		TemplateURL:  awssdk.String(s.templateURL(cluster.ConfigurationS3URL, cluster.Region)),
		Capabilities: []*string{awssdk.String(cloudformation.CapabilityCapabilityIam)},
	})
	if err != nil {
		return aws.ToServiceError(err)
	}
	return nil
}

func (s *clusterService) DescribeStack(cluster *dbapi.Cluster) (*cloudformation.Stack, *errors.ServiceError) {
	client, svcErr := s.awsClient(cluster.Region)
	if svcErr != nil {
		return nil, svcErr
	}
	stack, err := client.DescribeStack(cluster.Name)
	if err != nil {
		return nil, aws.ToServiceError(err)
	}
	return stack, nil
}

func (s *clusterService) DeleteStack(cluster *dbapi.Cluster) *errors.ServiceError {
	client, svcErr := s.awsClient(cluster.Region)
	if svcErr != nil {
		return svcErr
	}
	if _, err := client.DeleteStack(cluster.Name); err != nil {
		return aws.ToServiceError(err)
	}
	return nil
}

func (s *clusterService) DeleteLogGroup(logGroupName string, region string) *errors.ServiceError {
	client, svcErr := s.awsClient(region)
	if svcErr != nil {
		return svcErr
	}
	if _, err := client.DeleteLogGroup(logGroupName); err != nil {
		if aws.IsResourceNotFound(err) {
			return nil
		}
		return aws.ToServiceError(err)
	}
	return nil
}
