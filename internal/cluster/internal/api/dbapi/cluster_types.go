package dbapi

import (
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"gorm.io/gorm"
)

type Cluster struct {
	api.Meta
	Name      string `json:"name" gorm:"index"`
	Region    string `json:"region"`
	Scheduler string `json:"scheduler"`
	Version   string `json:"version"`
	Status    string `json:"status" gorm:"index"`
	// CloudformationStackArn is empty until the creating worker has issued
	// the CreateStack call for this cluster.
	CloudformationStackArn string `json:"cloudformation_stack_arn"`
	ConfigurationS3URL     string `json:"configuration_s3_url"`
	RollbackOnFailure      bool   `json:"rollback_on_failure"`
	RetainLogs             bool   `json:"retain_logs"`
	FailureReason          string `json:"failure_reason"`
	Owner                  string `json:"owner" gorm:"index"`
	OrganisationId         string `json:"organisation_id" gorm:"index"`
}

type ClusterList []*Cluster
type ClusterIndex map[string]*Cluster

func (l ClusterList) Index() ClusterIndex {
	index := ClusterIndex{}
	for _, o := range l {
		index[o.ID] = o
	}
	return index
}

func (cluster *Cluster) BeforeCreate(tx *gorm.DB) error {
	// To allow the id set on the Cluster object to be used. This is useful for testing purposes.
	id := cluster.ID
	if id == "" {
		cluster.ID = api.NewID()
	}
	return nil
}

// IsAccepted returns true while the cluster row has been persisted but no
// CloudFormation stack has been created for it yet.
func (cluster *Cluster) IsAccepted() bool {
	return cluster.Status == constants.ClusterStatusCreateInProgress.String() && cluster.CloudformationStackArn == ""
}

// GetScheduler returns the workload manager the cluster configuration declares.
func (cluster *Cluster) GetScheduler() constants.Scheduler {
	return constants.Scheduler(cluster.Scheduler)
}
