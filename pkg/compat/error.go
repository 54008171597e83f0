package compat

// Error is the wire representation of a service error.
type Error struct {
	Kind        string `json:"kind"`
	Id          string `json:"id"`
	Href        string `json:"href"`
	Code        string `json:"code"`
	Reason      string `json:"reason"`
	OperationId string `json:"operation_id,omitempty"`
	// ConfigurationValidationErrors carries the individual validator failures
	// on cluster or image configuration create/update rejections.
	ConfigurationValidationErrors []ConfigValidationMessage `json:"configuration_validation_errors,omitempty"`
}

// ErrorList is the wire representation of a list of service errors.
type ErrorList struct {
	Kind  string  `json:"kind"`
	Page  int32   `json:"page"`
	Size  int32   `json:"size"`
	Total int32   `json:"total"`
	Items []Error `json:"items"`
}

// ConfigValidationMessage is a single validator result produced while
// validating a cluster or image configuration document.
type ConfigValidationMessage struct {
	Id      string `json:"id,omitempty"`
	Type    string `json:"type,omitempty"`
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}
