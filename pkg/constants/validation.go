package constants

// ValidationLevel is the severity of a configuration validator result.
type ValidationLevel string

const (
	ValidationLevelInfo    ValidationLevel = "INFO"
	ValidationLevelWarning ValidationLevel = "WARNING"
	ValidationLevelError   ValidationLevel = "ERROR"
)

func (l ValidationLevel) String() string {
	return string(l)
}

var validationLevelOrder = map[ValidationLevel]int{
	ValidationLevelInfo:    0,
	ValidationLevelWarning: 1,
	ValidationLevelError:   2,
}

// AtLeast returns true when the level is the same as or more severe than other.
func (l ValidationLevel) AtLeast(other ValidationLevel) bool {
	return validationLevelOrder[l] >= validationLevelOrder[other]
}

// IsValidValidationLevel returns true when the value is a known severity.
func IsValidValidationLevel(value string) bool {
	_, ok := validationLevelOrder[ValidationLevel(value)]
	return ok
}
