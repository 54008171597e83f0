package image_mgrs

import (
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/workers"
	"github.com/pkg/errors"
)

// ec2AmiOutputKey is the stack output the image build stack exposes the
// produced AMI id under.
const ec2AmiOutputKey = "Ec2AmiId"

// ImageBuildsManager drives the whole image build lifecycle: it creates the
// build stack for accepted rows, polls running builds until the stack
// settles and tears down the stack of builds marked for deletion.
type ImageBuildsManager struct {
	workers.BaseWorker
	imageService services.ImageService
}

func NewImageBuildsManager(imageService services.ImageService) *ImageBuildsManager {
	return &ImageBuildsManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "image_builds",
			Reconciler: workers.Reconciler{},
		},
		imageService: imageService,
	}
}

func (m *ImageBuildsManager) Start() {
	m.StartWorker(m)
}

func (m *ImageBuildsManager) Stop() {
	m.StopWorker(m)
}

func (m *ImageBuildsManager) Reconcile() []error {
	glog.Infoln("reconciling image builds")
	var encounteredErrors []error

	imageBuilds, serviceErr := m.imageService.ListByStatus(constants.ImageBuildStatusBuildInProgress, constants.ImageBuildStatusDeleteInProgress)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list reconcilable image builds")}
	}

	for _, imageBuild := range imageBuilds {
		glog.V(10).Infof("reconciling image build id = %s", imageBuild.ImageID)
		var err error
		switch {
		case imageBuild.IsAccepted():
			err = m.reconcileAcceptedImageBuild(imageBuild)
		case imageBuild.Status == constants.ImageBuildStatusBuildInProgress.String():
			err = m.reconcileBuildingImage(imageBuild)
		default:
			err = m.reconcileDeprovisioningImageBuild(imageBuild)
		}
		if err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile image build %s", imageBuild.ImageID))
		}
	}

	return encounteredErrors
}

func (m *ImageBuildsManager) reconcileAcceptedImageBuild(imageBuild *dbapi.ImageBuild) error {
	metrics.IncreaseImageBuildTotalOperationsCountMetric(constants.ImageBuildOperationCreate)

	stackArn, serviceErr := m.imageService.CreateStack(imageBuild)
	if serviceErr != nil {
		imageBuild.Status = constants.ImageBuildStatusBuildFailed.String()
		imageBuild.FailureReason = serviceErr.Reason
		if updateErr := m.imageService.Updates(imageBuild, map[string]interface{}{
			"status":         imageBuild.Status,
			"failure_reason": imageBuild.FailureReason,
		}); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark image build as failed")
		}
		return serviceErr
	}

	imageBuild.CloudformationStackArn = stackArn
	if serviceErr := m.imageService.Updates(imageBuild, map[string]interface{}{
		"cloudformation_stack_arn": stackArn,
	}); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to store the stack ARN")
	}

	glog.Infof("stack %s created for image build %s", stackArn, imageBuild.ImageID)
	return nil
}

func (m *ImageBuildsManager) reconcileBuildingImage(imageBuild *dbapi.ImageBuild) error {
	stack, serviceErr := m.imageService.DescribeStack(imageBuild)
	if serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to describe the image build stack")
	}

	stackStatus := constants.StackStatus(awssdk.StringValue(stack.StackStatus))
	switch {
	case stackStatus.IsInProgress():
		glog.V(10).Infof("stack of image build %s is still %s", imageBuild.ImageID, stackStatus)
		return nil
	case stackStatus == constants.StackStatusCreateComplete:
		imageBuild.Status = constants.ImageBuildStatusBuildComplete.String()
		imageBuild.Ec2AmiID = stackOutput(stack, ec2AmiOutputKey)
		if serviceErr := m.imageService.Updates(imageBuild, map[string]interface{}{
			"status":     imageBuild.Status,
			"ec2_ami_id": imageBuild.Ec2AmiID,
		}); serviceErr != nil {
			return errors.Wrap(serviceErr, "failed to mark the image build as complete")
		}
		metrics.UpdateImageBuildDurationMetric(metrics.JobTypeImageBuild, time.Since(imageBuild.CreatedAt))
		metrics.IncreaseImageBuildSuccessOperationsCountMetric(constants.ImageBuildOperationCreate)
		glog.Infof("image build %s produced AMI %s", imageBuild.ImageID, imageBuild.Ec2AmiID)
		return nil
	case stackStatus.IsCreateFailure():
		imageBuild.Status = constants.ImageBuildStatusBuildFailed.String()
		imageBuild.FailureReason = awssdk.StringValue(stack.StackStatusReason)
		if serviceErr := m.imageService.Updates(imageBuild, map[string]interface{}{
			"status":         imageBuild.Status,
			"failure_reason": imageBuild.FailureReason,
		}); serviceErr != nil {
			return errors.Wrap(serviceErr, "failed to mark the image build as failed")
		}
		glog.Infof("image build %s failed: %s", imageBuild.ImageID, imageBuild.FailureReason)
		return nil
	}

	glog.V(10).Infof("stack of image build %s is %s, nothing to do", imageBuild.ImageID, stackStatus)
	return nil
}

func (m *ImageBuildsManager) reconcileDeprovisioningImageBuild(imageBuild *dbapi.ImageBuild) error {
	if imageBuild.CloudformationStackArn == "" {
		return m.handleStackGone(imageBuild)
	}

	stack, serviceErr := m.imageService.DescribeStack(imageBuild)
	if serviceErr != nil {
		if serviceErr.Is404() {
			return m.handleStackGone(imageBuild)
		}
		return errors.Wrap(serviceErr, "failed to describe the image build stack")
	}

	stackStatus := constants.StackStatus(awssdk.StringValue(stack.StackStatus))
	switch {
	case stackStatus == constants.StackStatusDeleteInProgress:
		glog.V(10).Infof("stack of image build %s is still deleting", imageBuild.ImageID)
		return nil
	case stackStatus == constants.StackStatusDeleteComplete:
		return m.handleStackGone(imageBuild)
	case stackStatus == constants.StackStatusDeleteFailed:
		imageBuild.Status = constants.ImageBuildStatusDeleteFailed.String()
		imageBuild.FailureReason = awssdk.StringValue(stack.StackStatusReason)
		if serviceErr := m.imageService.Updates(imageBuild, map[string]interface{}{
			"status":         imageBuild.Status,
			"failure_reason": imageBuild.FailureReason,
		}); serviceErr != nil {
			return errors.Wrap(serviceErr, "failed to mark the image build delete as failed")
		}
		return nil
	}

	metrics.IncreaseImageBuildTotalOperationsCountMetric(constants.ImageBuildOperationDelete)
	if serviceErr := m.imageService.DeleteStack(imageBuild); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to request the stack deletion")
	}

	glog.Infof("stack deletion requested for image build %s", imageBuild.ImageID)
	return nil
}

func (m *ImageBuildsManager) handleStackGone(imageBuild *dbapi.ImageBuild) error {
	if serviceErr := m.imageService.Delete(imageBuild); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to delete the image build row")
	}

	metrics.IncreaseImageBuildSuccessOperationsCountMetric(constants.ImageBuildOperationDelete)
	glog.Infof("image build %s deleted", imageBuild.ImageID)
	return nil
}

func stackOutput(stack *cloudformation.Stack, key string) string {
	for _, output := range stack.Outputs {
		if awssdk.StringValue(output.OutputKey) == key {
			return awssdk.StringValue(output.OutputValue)
		}
	}
	return ""
}
