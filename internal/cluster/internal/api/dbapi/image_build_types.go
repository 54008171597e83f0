package dbapi

import (
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"gorm.io/gorm"
)

type ImageBuild struct {
	api.Meta
	ImageID string `json:"image_id" gorm:"index"`
	Region  string `json:"region"`
	Version string `json:"version"`
	Status  string `json:"status" gorm:"index"`
	// Ec2AmiID is filled in once the image build stack has produced the AMI.
	Ec2AmiID               string `json:"ec2_ami_id"`
	CloudformationStackArn string `json:"cloudformation_stack_arn"`
	ConfigurationS3URL     string `json:"configuration_s3_url"`
	RollbackOnFailure      bool   `json:"rollback_on_failure"`
	FailureReason          string `json:"failure_reason"`
	Owner                  string `json:"owner" gorm:"index"`
}

type ImageBuildList []*ImageBuild

func (imageBuild *ImageBuild) BeforeCreate(tx *gorm.DB) error {
	if imageBuild.ID == "" {
		imageBuild.ID = api.NewID()
	}
	return nil
}

// IsAccepted returns true while the image build row exists but its
// CloudFormation stack has not been created yet.
func (imageBuild *ImageBuild) IsAccepted() bool {
	return imageBuild.Status == constants.ImageBuildStatusBuildInProgress.String() && imageBuild.CloudformationStackArn == ""
}
