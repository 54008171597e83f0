package converters

import (
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
)

func ConvertImageBuild(imageBuild *dbapi.ImageBuild) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":                       imageBuild.ID,
			"image_id":                 imageBuild.ImageID,
			"region":                   imageBuild.Region,
			"version":                  imageBuild.Version,
			"status":                   imageBuild.Status,
			"ec2_ami_id":               imageBuild.Ec2AmiID,
			"cloudformation_stack_arn": imageBuild.CloudformationStackArn,
			"configuration_s3_url":     imageBuild.ConfigurationS3URL,
			"rollback_on_failure":      imageBuild.RollbackOnFailure,
			"failure_reason":           imageBuild.FailureReason,
			"owner":                    imageBuild.Owner,
			"created_at":               imageBuild.Meta.CreatedAt,
			"updated_at":               imageBuild.Meta.UpdatedAt,
			"deleted_at":               imageBuild.Meta.DeletedAt.Time,
		},
	}
}

// ConvertImageBuildList converts an ImageBuildList to the response type expected by mocket
func ConvertImageBuildList(imageBuildList dbapi.ImageBuildList) []map[string]interface{} {
	var converted []map[string]interface{}

	for _, imageBuild := range imageBuildList {
		converted = append(converted, ConvertImageBuild(imageBuild)...)
	}

	return converted
}
