package constants

// ComputeFleetStatus represents the status of a cluster compute fleet.
type ComputeFleetStatus string

const (
	// ComputeFleetStatusStopped - fleet is stopped, partitions are inactive.
	ComputeFleetStatusStopped ComputeFleetStatus = "STOPPED"
	// ComputeFleetStatusRunning - fleet is running, partitions are active.
	ComputeFleetStatusRunning ComputeFleetStatus = "RUNNING"
	// ComputeFleetStatusStopping - the cluster management daemon is handling the stop request.
	ComputeFleetStatusStopping ComputeFleetStatus = "STOPPING"
	// ComputeFleetStatusStarting - the cluster management daemon is handling the start request.
	ComputeFleetStatusStarting ComputeFleetStatus = "STARTING"
	// ComputeFleetStatusStopRequested - a request to stop the fleet has been submitted.
	ComputeFleetStatusStopRequested ComputeFleetStatus = "STOP_REQUESTED"
	// ComputeFleetStatusStartRequested - a request to start the fleet has been submitted.
	ComputeFleetStatusStartRequested ComputeFleetStatus = "START_REQUESTED"
	// ComputeFleetStatusEnabled - AWS Batch only, the compute environment is enabled.
	ComputeFleetStatusEnabled ComputeFleetStatus = "ENABLED"
	// ComputeFleetStatusDisabled - AWS Batch only, the compute environment is disabled.
	ComputeFleetStatusDisabled ComputeFleetStatus = "DISABLED"
	// ComputeFleetStatusUnknown - cannot determine the fleet status.
	ComputeFleetStatusUnknown ComputeFleetStatus = "UNKNOWN"
	// ComputeFleetStatusProtected - some partitions have consistent bootstrap
	// failures, affected partitions are inactive.
	ComputeFleetStatusProtected ComputeFleetStatus = "PROTECTED"
)

func (s ComputeFleetStatus) String() string {
	return string(s)
}

// IsStartInProgress returns true if a start has been requested or is in progress.
func (s ComputeFleetStatus) IsStartInProgress() bool {
	return s == ComputeFleetStatusStartRequested || s == ComputeFleetStatusStarting
}

// IsStopInProgress returns true if a stop has been requested or is in progress.
func (s ComputeFleetStatus) IsStopInProgress() bool {
	return s == ComputeFleetStatusStopRequested || s == ComputeFleetStatusStopping
}

// RequestableComputeFleetStatuses lists the statuses a caller may request per scheduler.
func RequestableComputeFleetStatuses(scheduler Scheduler) []ComputeFleetStatus {
	if scheduler == SchedulerAwsBatch {
		return []ComputeFleetStatus{ComputeFleetStatusEnabled, ComputeFleetStatusDisabled}
	}
	return []ComputeFleetStatus{ComputeFleetStatusStartRequested, ComputeFleetStatusStopRequested}
}
