package presenters

import (
	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
)

// ConvertImageBuildRequest from payload to the internal ImageBuild model. The
// version is filled in from the validated configuration by the handler.
func ConvertImageBuildRequest(payload public.ImageBuildRequest, region string) *dbapi.ImageBuild {
	return &dbapi.ImageBuild{
		ImageID: payload.ImageId,
		Region:  region,
	}
}

// PresentImageInfoSummary - create an ImageInfoSummary in an appropriate
// format ready to be returned by the API
func PresentImageInfoSummary(imageBuild *dbapi.ImageBuild) public.ImageInfoSummary {
	summary := public.ImageInfoSummary{
		ImageId:                imageBuild.ImageID,
		Region:                 imageBuild.Region,
		Version:                imageBuild.Version,
		Ec2AmiId:               imageBuild.Ec2AmiID,
		ImageBuildStatus:       imageBuild.Status,
		CloudformationStackArn: imageBuild.CloudformationStackArn,
	}
	if imageBuild.CloudformationStackArn != "" {
		summary.CloudformationStackStatus = imageBuild.Status
	}
	return summary
}

func PresentImageInfoSummaryList(imageBuilds dbapi.ImageBuildList) []public.ImageInfoSummary {
	summaries := []public.ImageInfoSummary{}
	for _, imageBuild := range imageBuilds {
		summaries = append(summaries, PresentImageInfoSummary(imageBuild))
	}
	return summaries
}

// PresentDescribeImage - create the detailed image response. The stack may be
// nil once the build stack has been torn down.
func PresentDescribeImage(imageBuild *dbapi.ImageBuild, stack *cloudformation.Stack) public.DescribeImageResponse {
	response := public.DescribeImageResponse{
		ImageId:                imageBuild.ImageID,
		Region:                 imageBuild.Region,
		Version:                imageBuild.Version,
		ImageBuildStatus:       imageBuild.Status,
		Ec2AmiId:               imageBuild.Ec2AmiID,
		CloudformationStackArn: imageBuild.CloudformationStackArn,
		CreationTime:           presentTime(&imageBuild.CreatedAt),
		ImageConfiguration: public.ImageConfigurationStructure{
			Url: imageBuild.ConfigurationS3URL,
		},
		FailureReason: imageBuild.FailureReason,
	}
	if stack != nil {
		response.CloudformationStackStatus = awssdk.StringValue(stack.StackStatus)
	}
	return response
}

// PresentAmiInfo - create an AmiInfo from an official EC2 image. The os and
// version are read from the image tags.
func PresentAmiInfo(image *ec2.Image) public.AmiInfo {
	info := public.AmiInfo{
		AmiId:        awssdk.StringValue(image.ImageId),
		Name:         awssdk.StringValue(image.Name),
		Architecture: awssdk.StringValue(image.Architecture),
	}
	for _, tag := range image.Tags {
		switch awssdk.StringValue(tag.Key) {
		case constants.OsTagKey:
			info.Os = awssdk.StringValue(tag.Value)
		case constants.VersionTagKey:
			info.Version = awssdk.StringValue(tag.Value)
		}
	}
	return info
}

func PresentAmiInfoList(images []*ec2.Image) []public.AmiInfo {
	infos := []public.AmiInfo{}
	for _, image := range images {
		infos = append(infos, PresentAmiInfo(image))
	}
	return infos
}
