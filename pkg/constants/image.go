package constants

// ImageBuildOperation type
type ImageBuildOperation string

const (
	ImageBuildOperationCreate ImageBuildOperation = "create"
	ImageBuildOperationDelete ImageBuildOperation = "delete"
)

func (o ImageBuildOperation) String() string {
	return string(o)
}

// ImageBuildStatus is the lifecycle status of a custom image build.
type ImageBuildStatus string

const (
	ImageBuildStatusBuildInProgress  ImageBuildStatus = "BUILD_IN_PROGRESS"
	ImageBuildStatusBuildFailed      ImageBuildStatus = "BUILD_FAILED"
	ImageBuildStatusBuildComplete    ImageBuildStatus = "BUILD_COMPLETE"
	ImageBuildStatusDeleteInProgress ImageBuildStatus = "DELETE_IN_PROGRESS"
	ImageBuildStatusDeleteFailed     ImageBuildStatus = "DELETE_FAILED"
	ImageBuildStatusDeleteComplete   ImageBuildStatus = "DELETE_COMPLETE"
)

func (s ImageBuildStatus) String() string {
	return string(s)
}

// ImageStatusFilter is the coarse status facet used when listing custom images.
type ImageStatusFilter string

const (
	ImageStatusFilterAvailable ImageStatusFilter = "AVAILABLE"
	ImageStatusFilterPending   ImageStatusFilter = "PENDING"
	ImageStatusFilterFailed    ImageStatusFilter = "FAILED"
)

func (f ImageStatusFilter) String() string {
	return string(f)
}

// AllImageStatusFilters enumerates the accepted imageStatus list filters.
var AllImageStatusFilters = []ImageStatusFilter{
	ImageStatusFilterAvailable,
	ImageStatusFilterPending,
	ImageStatusFilterFailed,
}

// IsValidImageStatusFilter returns true when the value is a known image status filter.
func IsValidImageStatusFilter(value string) bool {
	for _, filter := range AllImageStatusFilters {
		if filter.String() == value {
			return true
		}
	}
	return false
}

// BuildStatusesForFilter maps a list facet to the matching build statuses.
func BuildStatusesForFilter(filter ImageStatusFilter) []ImageBuildStatus {
	switch filter {
	case ImageStatusFilterAvailable:
		return []ImageBuildStatus{ImageBuildStatusBuildComplete}
	case ImageStatusFilterPending:
		return []ImageBuildStatus{ImageBuildStatusBuildInProgress, ImageBuildStatusDeleteInProgress}
	case ImageStatusFilterFailed:
		return []ImageBuildStatus{ImageBuildStatusBuildFailed, ImageBuildStatusDeleteFailed}
	default:
		return nil
	}
}
