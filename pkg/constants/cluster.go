package constants

// ClusterOperation type
type ClusterOperation string

const (
	// ClusterOperationCreate - cluster create operation
	ClusterOperationCreate ClusterOperation = "create"
	// ClusterOperationUpdate - cluster update operation
	ClusterOperationUpdate ClusterOperation = "update"
	// ClusterOperationDelete - cluster delete operation
	ClusterOperationDelete ClusterOperation = "delete"
)

func (c ClusterOperation) String() string {
	return string(c)
}

// ClusterStatus is the externally visible lifecycle status of a cluster.
type ClusterStatus string

const (
	ClusterStatusCreateInProgress ClusterStatus = "CREATE_IN_PROGRESS"
	ClusterStatusCreateFailed     ClusterStatus = "CREATE_FAILED"
	ClusterStatusCreateComplete   ClusterStatus = "CREATE_COMPLETE"
	ClusterStatusDeleteInProgress ClusterStatus = "DELETE_IN_PROGRESS"
	ClusterStatusDeleteFailed     ClusterStatus = "DELETE_FAILED"
	// ClusterStatusDeleteComplete only ever appears on the wire, a fully
	// deleted cluster no longer has a live database row.
	ClusterStatusDeleteComplete   ClusterStatus = "DELETE_COMPLETE"
	ClusterStatusUpdateInProgress ClusterStatus = "UPDATE_IN_PROGRESS"
	ClusterStatusUpdateComplete   ClusterStatus = "UPDATE_COMPLETE"
	ClusterStatusUpdateFailed     ClusterStatus = "UPDATE_FAILED"
)

func (c ClusterStatus) String() string {
	return string(c)
}

// AllClusterStatuses enumerates every status a cluster list request may filter on.
var AllClusterStatuses = []ClusterStatus{
	ClusterStatusCreateInProgress,
	ClusterStatusCreateFailed,
	ClusterStatusCreateComplete,
	ClusterStatusDeleteInProgress,
	ClusterStatusDeleteFailed,
	ClusterStatusDeleteComplete,
	ClusterStatusUpdateInProgress,
	ClusterStatusUpdateComplete,
	ClusterStatusUpdateFailed,
}

// IsValidClusterStatus returns true when the value is a known cluster status.
func IsValidClusterStatus(value string) bool {
	for _, status := range AllClusterStatuses {
		if status.String() == value {
			return true
		}
	}
	return false
}

// Scheduler is the workload manager a cluster runs.
type Scheduler string

const (
	SchedulerSlurm    Scheduler = "slurm"
	SchedulerAwsBatch Scheduler = "awsbatch"
)

func (s Scheduler) String() string {
	return string(s)
}
