package services

import (
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
	coreServices "github.com/hpc-fleet/hpc-fleet-manager/pkg/services"
	gocache "github.com/patrickmn/go-cache"
)

//go:generate moq -out imageservice_moq.go . ImageService
type ImageService interface {
	// RegisterImageBuildJob uploads the validated configuration document and
	// persists the accepted image build row for the reconciler.
	RegisterImageBuildJob(imageBuild *dbapi.ImageBuild, configuration []byte) *errors.ServiceError
	Get(imageId string) (*dbapi.ImageBuild, *errors.ServiceError)
	// List returns the image builds matching the coarse status facet.
	List(filter constants.ImageStatusFilter, region string) (dbapi.ImageBuildList, *errors.ServiceError)
	ListByStatus(status ...constants.ImageBuildStatus) (dbapi.ImageBuildList, *errors.ServiceError)
	Updates(imageBuild *dbapi.ImageBuild, values map[string]interface{}) *errors.ServiceError
	// RegisterImageDeprovisionJob marks the image build DELETE_IN_PROGRESS.
	// Without force a shared (BUILD_COMPLETE) image is only deregistered
	// when its AMI still exists.
	RegisterImageDeprovisionJob(imageId string, force bool) *errors.ServiceError
	Delete(imageBuild *dbapi.ImageBuild) *errors.ServiceError

	// CloudFormation interactions used by the reconciler worker.
	CreateStack(imageBuild *dbapi.ImageBuild) (string, *errors.ServiceError)
	DescribeStack(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError)
	DeleteStack(imageBuild *dbapi.ImageBuild) *errors.ServiceError

	// ListOfficialImages lists the official AMIs for a region, optionally
	// narrowed by os and architecture. Results are cached in process.
	ListOfficialImages(region string, os string, architecture string) ([]*ec2.Image, *errors.ServiceError)
}

var _ ImageService = &imageService{}

type imageService struct {
	connectionFactory  *db.ConnectionFactory
	awsClientFactory   aws.ClientFactory
	awsConfig          *aws.AWSConfig
	fleetConfig        *config.FleetConfig
	officialImageCache *gocache.Cache
}

func NewImageService(connectionFactory *db.ConnectionFactory, awsClientFactory aws.ClientFactory, awsConfig *aws.AWSConfig, fleetConfig *config.FleetConfig) *imageService {
	return &imageService{
		connectionFactory:  connectionFactory,
		awsClientFactory:   awsClientFactory,
		awsConfig:          awsConfig,
		fleetConfig:        fleetConfig,
		officialImageCache: gocache.New(fleetConfig.OfficialImageCacheTTL, 2*fleetConfig.OfficialImageCacheTTL),
	}
}

func (s *imageService) client(region string) (aws.AWSClient, *errors.ServiceError) {
	client, err := s.awsClientFactory.NewClient(s.awsConfig.Credentials(), region)
	if err != nil {
		return nil, errors.GeneralError("Failed to create AWS client: %s", err.Error())
	}
	return client, nil
}

func imageConfigObjectKey(imageId string) string {
	return fmt.Sprintf("images/%s/image-config.yaml", imageId)
}

func (s *imageService) RegisterImageBuildJob(imageBuild *dbapi.ImageBuild, configuration []byte) *errors.ServiceError {
	client, svcErr := s.client(imageBuild.Region)
	if svcErr != nil {
		return svcErr
	}

	key := imageConfigObjectKey(imageBuild.ImageID)
	if _, err := client.PutObject(&s3.PutObjectInput{
		Bucket: awssdk.String(s.awsConfig.ConfigBucket),
		Key:    awssdk.String(key),
		Body:   strings.NewReader(string(configuration)),
	}); err != nil {
		return aws.ToServiceError(err)
	}
	imageBuild.ConfigurationS3URL = fmt.Sprintf("s3://%s/%s", s.awsConfig.ConfigBucket, key)

	imageBuild.Status = constants.ImageBuildStatusBuildInProgress.String()
	dbConn := s.connectionFactory.New()
	if err := dbConn.Create(imageBuild).Error; err != nil {
		return coreServices.HandleCreateError("ImageBuild", err)
	}

	metrics.IncreaseImageBuildTotalOperationsCountMetric(constants.ImageBuildOperationCreate)
	return nil
}

func (s *imageService) Get(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
	dbConn := s.connectionFactory.New()
	var imageBuild dbapi.ImageBuild
	if err := dbConn.Where("image_id = ?", imageId).First(&imageBuild).Error; err != nil {
		return nil, coreServices.HandleGetError("ImageBuild", "image_id", imageId, err)
	}
	return &imageBuild, nil
}

func (s *imageService) List(filter constants.ImageStatusFilter, region string) (dbapi.ImageBuildList, *errors.ServiceError) {
	statuses := constants.BuildStatusesForFilter(filter)
	if statuses == nil {
		return nil, errors.BadRequest("invalid imageStatus filter %q", filter)
	}
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	dbConn := s.connectionFactory.New().Where("status IN (?)", values)
	if region != "" {
		dbConn = dbConn.Where("region = ?", region)
	}

	var imageBuilds dbapi.ImageBuildList
	if err := dbConn.Order("image_id asc").Find(&imageBuilds).Error; err != nil {
		return nil, errors.GeneralError("Unable to list image builds: %s", err.Error())
	}
	return imageBuilds, nil
}

func (s *imageService) ListByStatus(status ...constants.ImageBuildStatus) (dbapi.ImageBuildList, *errors.ServiceError) {
	values := make([]string, 0, len(status))
	for _, st := range status {
		values = append(values, st.String())
	}

	dbConn := s.connectionFactory.New()
	var imageBuilds dbapi.ImageBuildList
	if err := dbConn.Where("status IN (?)", values).Find(&imageBuilds).Error; err != nil {
		return nil, errors.GeneralError("Unable to list image builds by status: %s", err.Error())
	}
	return imageBuilds, nil
}

func (s *imageService) Updates(imageBuild *dbapi.ImageBuild, values map[string]interface{}) *errors.ServiceError {
	dbConn := s.connectionFactory.New()
	if err := dbConn.Model(imageBuild).Updates(values).Error; err != nil {
		return coreServices.HandleUpdateError("ImageBuild", err)
	}
	return nil
}

func (s *imageService) RegisterImageDeprovisionJob(imageId string, force bool) *errors.ServiceError {
	imageBuild, svcErr := s.Get(imageId)
	if svcErr != nil {
		return svcErr
	}
	if imageBuild.Status == constants.ImageBuildStatusDeleteInProgress.String() {
		return nil
	}
	if imageBuild.Status == constants.ImageBuildStatusBuildComplete.String() && !force {
		return errors.Conflict("image %s is available, use force to delete it", imageId)
	}
	if imageBuild.IsAccepted() {
		// No stack exists yet, the row can go away immediately.
		return s.Delete(imageBuild)
	}

	if err := s.Updates(imageBuild, map[string]interface{}{
		"status": constants.ImageBuildStatusDeleteInProgress.String(),
	}); err != nil {
		return err
	}
	metrics.IncreaseImageBuildTotalOperationsCountMetric(constants.ImageBuildOperationDelete)
	return nil
}

func (s *imageService) Delete(imageBuild *dbapi.ImageBuild) *errors.ServiceError {
	dbConn := s.connectionFactory.New()
	if err := dbConn.Delete(imageBuild).Error; err != nil {
		return coreServices.HandleDeleteError("ImageBuild", "image_id", imageBuild.ImageID, err)
	}
	metrics.IncreaseImageBuildSuccessOperationsCountMetric(constants.ImageBuildOperationDelete)
	return nil
}

func (s *imageService) templateURL(imageBuild *dbapi.ImageBuild) string {
	trimmed := strings.TrimPrefix(imageBuild.ConfigurationS3URL, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 {
		return imageBuild.ConfigurationS3URL
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", parts[0], imageBuild.Region, parts[1])
}

func (s *imageService) CreateStack(imageBuild *dbapi.ImageBuild) (string, *errors.ServiceError) {
	client, svcErr := s.client(imageBuild.Region)
	if svcErr != nil {
		return "", svcErr
	}

	output, err := client.CreateStack(&cloudformation.CreateStackInput{
		StackName:       awssdk.String(imageBuild.ImageID),
		TemplateURL:     awssdk.String(s.templateURL(imageBuild)),
		DisableRollback: awssdk.Bool(!imageBuild.RollbackOnFailure),
		Capabilities:    []*string{awssdk.String(cloudformation.CapabilityCapabilityIam)},
		Tags: []*cloudformation.Tag{
			{Key: awssdk.String(constants.ImageIdTagKey), Value: awssdk.String(imageBuild.ImageID)},
			{Key: awssdk.String(constants.VersionTagKey), Value: awssdk.String(imageBuild.Version)},
		},
	})
	if err != nil {
		return "", aws.ToServiceError(err)
	}
	return awssdk.StringValue(output.StackId), nil
}

func (s *imageService) DescribeStack(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError) {
	client, svcErr := s.client(imageBuild.Region)
	if svcErr != nil {
		return nil, svcErr
	}
	stack, err := client.DescribeStack(imageBuild.ImageID)
	if err != nil {
		return nil, aws.ToServiceError(err)
	}
	return stack, nil
}

func (s *imageService) DeleteStack(imageBuild *dbapi.ImageBuild) *errors.ServiceError {
	client, svcErr := s.client(imageBuild.Region)
	if svcErr != nil {
		return svcErr
	}
	if _, err := client.DeleteStack(imageBuild.ImageID); err != nil {
		return aws.ToServiceError(err)
	}
	return nil
}

func officialImageCacheKey(region string, os string, architecture string) string {
	return fmt.Sprintf("%s|%s|%s", region, os, architecture)
}

func (s *imageService) ListOfficialImages(region string, os string, architecture string) ([]*ec2.Image, *errors.ServiceError) {
	cacheKey := officialImageCacheKey(region, os, architecture)
	if cached, found := s.officialImageCache.Get(cacheKey); found {
		return cached.([]*ec2.Image), nil
	}

	client, svcErr := s.client(region)
	if svcErr != nil {
		return nil, svcErr
	}

	filters := []*ec2.Filter{
		{
			Name:   awssdk.String("tag-key"),
			Values: []*string{awssdk.String(constants.VersionTagKey)},
		},
	}
	if os != "" {
		filters = append(filters, &ec2.Filter{
			Name:   awssdk.String("tag:" + constants.OsTagKey),
			Values: []*string{awssdk.String(os)},
		})
	}
	if architecture != "" {
		filters = append(filters, &ec2.Filter{
			Name:   awssdk.String("architecture"),
			Values: []*string{awssdk.String(architecture)},
		})
	}

	output, err := client.DescribeImages(&ec2.DescribeImagesInput{
		Owners:  []*string{awssdk.String(s.fleetConfig.OfficialImageOwner)},
		Filters: filters,
	})
	if err != nil {
		return nil, aws.ToServiceError(err)
	}

	s.officialImageCache.Set(cacheKey, output.Images, gocache.DefaultExpiration)
	return output.Images, nil
}
