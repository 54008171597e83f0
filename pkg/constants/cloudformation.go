package constants

// StackStatus mirrors the CloudFormation stack status values this service
// reacts to while reconciling clusters and image builds.
type StackStatus string

const (
	StackStatusCreateInProgress                StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateFailed                    StackStatus = "CREATE_FAILED"
	StackStatusCreateComplete                  StackStatus = "CREATE_COMPLETE"
	StackStatusRollbackInProgress              StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackFailed                  StackStatus = "ROLLBACK_FAILED"
	StackStatusRollbackComplete                StackStatus = "ROLLBACK_COMPLETE"
	StackStatusDeleteInProgress                StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteFailed                    StackStatus = "DELETE_FAILED"
	StackStatusDeleteComplete                  StackStatus = "DELETE_COMPLETE"
	StackStatusUpdateInProgress                StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateCompleteCleanupInProgress StackStatus = "UPDATE_COMPLETE_CLEANUP_IN_PROGRESS"
	StackStatusUpdateComplete                  StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateRollbackInProgress        StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackFailed            StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusUpdateRollbackComplete          StackStatus = "UPDATE_ROLLBACK_COMPLETE"
)

func (s StackStatus) String() string {
	return string(s)
}

// IsInProgress returns true while CloudFormation is still working on the stack.
func (s StackStatus) IsInProgress() bool {
	switch s {
	case StackStatusCreateInProgress,
		StackStatusRollbackInProgress,
		StackStatusDeleteInProgress,
		StackStatusUpdateInProgress,
		StackStatusUpdateCompleteCleanupInProgress,
		StackStatusUpdateRollbackInProgress:
		return true
	}
	return false
}

// IsCreateFailure returns true when stack creation ended unsuccessfully,
// including a rollback of the initial create.
func (s StackStatus) IsCreateFailure() bool {
	switch s {
	case StackStatusCreateFailed, StackStatusRollbackFailed, StackStatusRollbackComplete:
		return true
	}
	return false
}

// IsUpdateFailure returns true when a stack update ended unsuccessfully.
func (s StackStatus) IsUpdateFailure() bool {
	switch s {
	case StackStatusUpdateRollbackFailed, StackStatusUpdateRollbackComplete:
		return true
	}
	return false
}
