package image_mgrs

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
)

const testImageStackArn = "arn:aws:cloudformation:us-east-1:123456789012:stack/hpc-image/abc"

func buildingImage() *dbapi.ImageBuild {
	return &dbapi.ImageBuild{
		ImageID:                "hpc-image",
		Region:                 "us-east-1",
		Status:                 constants.ImageBuildStatusBuildInProgress.String(),
		CloudformationStackArn: testImageStackArn,
	}
}

func TestImageBuildsManager_reconcileAcceptedImageBuild(t *testing.T) {
	g := gomega.NewWithT(t)

	imageService := &services.ImageServiceMock{
		CreateStackFunc: func(imageBuild *dbapi.ImageBuild) (string, *errors.ServiceError) {
			return testImageStackArn, nil
		},
		UpdatesFunc: func(imageBuild *dbapi.ImageBuild, values map[string]interface{}) *errors.ServiceError {
			return nil
		},
	}

	m := &ImageBuildsManager{imageService: imageService}
	imageBuild := &dbapi.ImageBuild{ImageID: "hpc-image", Status: constants.ImageBuildStatusBuildInProgress.String()}

	g.Expect(m.reconcileAcceptedImageBuild(imageBuild)).To(gomega.Succeed())
	g.Expect(imageBuild.CloudformationStackArn).To(gomega.Equal(testImageStackArn))
}

func TestImageBuildsManager_reconcileBuildingImage(t *testing.T) {
	type fields struct {
		imageService services.ImageService
	}
	tests := []struct {
		name       string
		fields     fields
		wantErr    bool
		wantStatus constants.ImageBuildStatus
		wantAmi    string
	}{
		{
			name: "stack still in progress leaves the build untouched",
			fields: fields{
				imageService: &services.ImageServiceMock{
					DescribeStackFunc: func(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError) {
						return &cloudformation.Stack{StackStatus: awssdk.String(constants.StackStatusCreateInProgress.String())}, nil
					},
				},
			},
			wantStatus: constants.ImageBuildStatusBuildInProgress,
		},
		{
			name: "completed stack captures the AMI id",
			fields: fields{
				imageService: &services.ImageServiceMock{
					DescribeStackFunc: func(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError) {
						return &cloudformation.Stack{
							StackStatus: awssdk.String(constants.StackStatusCreateComplete.String()),
							Outputs: []*cloudformation.Output{
								{OutputKey: awssdk.String(ec2AmiOutputKey), OutputValue: awssdk.String("ami-12345678")},
							},
						}, nil
					},
					UpdatesFunc: func(imageBuild *dbapi.ImageBuild, values map[string]interface{}) *errors.ServiceError {
						return nil
					},
				},
			},
			wantStatus: constants.ImageBuildStatusBuildComplete,
			wantAmi:    "ami-12345678",
		},
		{
			name: "rolled back stack marks the build failed with the stack reason",
			fields: fields{
				imageService: &services.ImageServiceMock{
					DescribeStackFunc: func(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError) {
						return &cloudformation.Stack{
							StackStatus:       awssdk.String(constants.StackStatusRollbackComplete.String()),
							StackStatusReason: awssdk.String("packer build failed"),
						}, nil
					},
					UpdatesFunc: func(imageBuild *dbapi.ImageBuild, values map[string]interface{}) *errors.ServiceError {
						return nil
					},
				},
			},
			wantStatus: constants.ImageBuildStatusBuildFailed,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			m := &ImageBuildsManager{imageService: tt.fields.imageService}
			imageBuild := buildingImage()

			err := m.reconcileBuildingImage(imageBuild)
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			g.Expect(imageBuild.Status).To(gomega.Equal(tt.wantStatus.String()))
			if tt.wantAmi != "" {
				g.Expect(imageBuild.Ec2AmiID).To(gomega.Equal(tt.wantAmi))
			}
		})
	}
}

func TestImageBuildsManager_reconcileDeprovisioningImageBuild(t *testing.T) {
	g := gomega.NewWithT(t)

	imageService := &services.ImageServiceMock{
		DescribeStackFunc: func(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError) {
			return nil, errors.NotFound("stack hpc-image does not exist")
		},
		DeleteFunc: func(imageBuild *dbapi.ImageBuild) *errors.ServiceError {
			return nil
		},
	}

	m := &ImageBuildsManager{imageService: imageService}
	imageBuild := buildingImage()
	imageBuild.Status = constants.ImageBuildStatusDeleteInProgress.String()

	g.Expect(m.reconcileDeprovisioningImageBuild(imageBuild)).To(gomega.Succeed())
	g.Expect(imageService.DeleteCalls()).To(gomega.HaveLen(1))
}
