package converters

import (
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
)

func ConvertCluster(cluster *dbapi.Cluster) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":                       cluster.ID,
			"name":                     cluster.Name,
			"region":                   cluster.Region,
			"scheduler":                cluster.Scheduler,
			"version":                  cluster.Version,
			"status":                   cluster.Status,
			"cloudformation_stack_arn": cluster.CloudformationStackArn,
			"configuration_s3_url":     cluster.ConfigurationS3URL,
			"rollback_on_failure":      cluster.RollbackOnFailure,
			"retain_logs":              cluster.RetainLogs,
			"failure_reason":           cluster.FailureReason,
			"owner":                    cluster.Owner,
			"organisation_id":          cluster.OrganisationId,
			"created_at":               cluster.Meta.CreatedAt,
			"updated_at":               cluster.Meta.UpdatedAt,
			"deleted_at":               cluster.Meta.DeletedAt.Time,
		},
	}
}

// ConvertClusterList converts a ClusterList to the response type expected by mocket
func ConvertClusterList(clusterList dbapi.ClusterList) []map[string]interface{} {
	var converted []map[string]interface{}

	for _, cluster := range clusterList {
		converted = append(converted, ConvertCluster(cluster)...)
	}

	return converted
}
