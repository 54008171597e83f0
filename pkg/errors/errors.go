package errors

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/golang/glog"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/compat"
)

const (
	ERROR_CODE_PREFIX = "HPC-MGMT"

	// HREF for API errors
	ERROR_HREF = "/v3/errors/"

	// Forbidden occurs when a user is not allowed to access the service
	ErrorForbidden       ServiceErrorCode = 4
	ErrorForbiddenReason string           = "Forbidden to perform this action"

	// Conflict occurs when a database constraint is violated or a conditional
	// update lost the race against a concurrent writer
	ErrorConflict       ServiceErrorCode = 6
	ErrorConflictReason string           = "An entity with the specified unique values already exists"

	// NotFound occurs when a record is not found in the database
	ErrorNotFound       ServiceErrorCode = 7
	ErrorNotFoundReason string           = "Resource not found"

	// Validation occurs when an object fails validation
	ErrorValidation       ServiceErrorCode = 8
	ErrorValidationReason string           = "General validation failure"

	// General occurs when an error fails to match any other error code
	ErrorGeneral       ServiceErrorCode = 9
	ErrorGeneralReason string           = "Unspecified error"

	// NotImplemented occurs when an API REST method is not implemented in a handler
	ErrorNotImplemented       ServiceErrorCode = 10
	ErrorNotImplementedReason string           = "HTTP Method not implemented for this endpoint"

	// Unauthorized occurs when the requester is not authorized to perform the specified action
	ErrorUnauthorized       ServiceErrorCode = 11
	ErrorUnauthorizedReason string           = "Account is unauthorized to perform this action"

	// Unauthenticated occurs when the provided credentials cannot be validated
	ErrorUnauthenticated       ServiceErrorCode = 15
	ErrorUnauthenticatedReason string           = "Account authentication could not be verified"

	// MalformedRequest occurs when the request body cannot be read
	ErrorMalformedRequest       ServiceErrorCode = 17
	ErrorMalformedRequestReason string           = "Unable to read request body"

	// Bad Request
	ErrorBadRequest       ServiceErrorCode = 21
	ErrorBadRequestReason string           = "Bad request"

	// Invalid query parameters
	ErrorFailedToParseQueryParams       ServiceErrorCode = 23
	ErrorFailedToParseQueryParamsReason string           = "Failed to parse query parameters"

	// Region not supported
	ErrorRegionNotSupported       ServiceErrorCode = 31
	ErrorRegionNotSupportedReason string           = "Region not supported"

	// Invalid cluster name
	ErrorMalformedClusterName       ServiceErrorCode = 32
	ErrorMalformedClusterNameReason string           = "Cluster name is invalid"

	// Minimum field length validation
	ErrorMinimumFieldLength       ServiceErrorCode = 33
	ErrorMinimumFieldLengthReason string           = "Minimum field length not reached"

	// Maximum field length validation
	ErrorMaximumFieldLength       ServiceErrorCode = 34
	ErrorMaximumFieldLengthReason string           = "Maximum field length has been depassed"

	// Gone occurs when a record is accessed that has been deleted
	ErrorGone       ServiceErrorCode = 25
	ErrorGoneReason string           = "Resource gone"

	// DryrunOperation occurs when a dry run request validates successfully;
	// the request is rejected on purpose without any side effect
	ErrorDryrunOperation       ServiceErrorCode = 40
	ErrorDryrunOperationReason string           = "Request would have succeeded, but DryRun flag is set"

	// LimitExceeded occurs when the downstream cloud provider throttles us
	ErrorLimitExceeded       ServiceErrorCode = 41
	ErrorLimitExceededReason string           = "Request rate limit exceeded, retry the operation later"

	// ConfigurationValidationFailure occurs when a cluster or image
	// configuration document fails one or more validators
	ErrorConfigurationValidationFailure       ServiceErrorCode = 42
	ErrorConfigurationValidationFailureReason string           = "Invalid cluster configuration"

	// Cluster version outside of the supported range
	ErrorVersionNotSupported       ServiceErrorCode = 43
	ErrorVersionNotSupportedReason string           = "Cluster version is not supported by this service"

	// Scheduler does not support the requested operation
	ErrorSchedulerNotSupported       ServiceErrorCode = 44
	ErrorSchedulerNotSupportedReason string           = "Scheduler does not support the requested operation"

	// Failure to send an error response (i.e. unable to send error response as the error can't be converted to JSON.)
	ErrorUnableToSendErrorResponse       ServiceErrorCode = 1000
	ErrorUnableToSendErrorResponseReason string           = "An unexpected error happened, please check the log of the service for details"
)

type ServiceErrorCode int

type ServiceErrors []ServiceError

func Find(code ServiceErrorCode) (bool, *ServiceError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

func Errors() ServiceErrors {
	return ServiceErrors{
		ServiceError{Code: ErrorForbidden, Reason: ErrorForbiddenReason, HttpCode: http.StatusForbidden},
		ServiceError{Code: ErrorConflict, Reason: ErrorConflictReason, HttpCode: http.StatusConflict},
		ServiceError{Code: ErrorNotFound, Reason: ErrorNotFoundReason, HttpCode: http.StatusNotFound},
		ServiceError{Code: ErrorValidation, Reason: ErrorValidationReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorGeneral, Reason: ErrorGeneralReason, HttpCode: http.StatusInternalServerError},
		ServiceError{Code: ErrorNotImplemented, Reason: ErrorNotImplementedReason, HttpCode: http.StatusMethodNotAllowed},
		ServiceError{Code: ErrorUnauthorized, Reason: ErrorUnauthorizedReason, HttpCode: http.StatusForbidden},
		ServiceError{Code: ErrorUnauthenticated, Reason: ErrorUnauthenticatedReason, HttpCode: http.StatusUnauthorized},
		ServiceError{Code: ErrorMalformedRequest, Reason: ErrorMalformedRequestReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorBadRequest, Reason: ErrorBadRequestReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorFailedToParseQueryParams, Reason: ErrorFailedToParseQueryParamsReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorRegionNotSupported, Reason: ErrorRegionNotSupportedReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorMalformedClusterName, Reason: ErrorMalformedClusterNameReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorMinimumFieldLength, Reason: ErrorMinimumFieldLengthReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorMaximumFieldLength, Reason: ErrorMaximumFieldLengthReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorGone, Reason: ErrorGoneReason, HttpCode: http.StatusGone},
		ServiceError{Code: ErrorDryrunOperation, Reason: ErrorDryrunOperationReason, HttpCode: http.StatusPreconditionFailed},
		ServiceError{Code: ErrorLimitExceeded, Reason: ErrorLimitExceededReason, HttpCode: http.StatusTooManyRequests},
		ServiceError{Code: ErrorConfigurationValidationFailure, Reason: ErrorConfigurationValidationFailureReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorVersionNotSupported, Reason: ErrorVersionNotSupportedReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorSchedulerNotSupported, Reason: ErrorSchedulerNotSupportedReason, HttpCode: http.StatusBadRequest},
		ServiceError{Code: ErrorUnableToSendErrorResponse, Reason: ErrorUnableToSendErrorResponseReason, HttpCode: http.StatusInternalServerError},
	}
}

func NewErrorFromHTTPStatusCode(httpCode int, reason string, values ...interface{}) *ServiceError {
	if httpCode >= http.StatusBadRequest && httpCode < http.StatusInternalServerError {
		switch httpCode {
		case http.StatusBadRequest:
			return BadRequest(reason, values...)
		case http.StatusUnauthorized:
			return Unauthenticated(reason, values...)
		case http.StatusForbidden:
			return Forbidden(reason, values...)
		case http.StatusNotFound:
			return NotFound(reason, values...)
		case http.StatusMethodNotAllowed:
			return NotImplemented(reason, values...)
		case http.StatusConflict:
			return Conflict(reason, values...)
		case http.StatusPreconditionFailed:
			return DryrunOperation()
		case http.StatusTooManyRequests:
			return LimitExceeded(reason, values...)
		default:
			return BadRequest(reason, values...)
		}
	}

	if httpCode >= http.StatusInternalServerError {
		return GeneralError(reason, values...)
	}

	return GeneralError(reason, values...)
}

func ToServiceError(err error) *ServiceError {
	switch convertedErr := err.(type) {
	case *ServiceError:
		return convertedErr
	default:
		return GeneralError(convertedErr.Error())
	}
}

type ServiceError struct {
	// Code is the numeric and distinct ID for the error
	Code ServiceErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// HttpCode is the HttpCode associated with the error when the error is returned as an API response
	HttpCode int
	// ConfigurationErrors carries per-validator failures when the error is a
	// configuration validation rejection
	ConfigurationErrors []compat.ConfigValidationMessage
}

// Reason can be a string with format verbs, which will be replace by the specified values
func New(code ServiceErrorCode, reason string, values ...interface{}) *ServiceError {
	// If the code isn't defined, use the general error code
	var err *ServiceError
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &ServiceError{Code: ErrorGeneral, Reason: "Unspecified error", HttpCode: http.StatusInternalServerError}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}

	return err
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason)
}

func (e *ServiceError) AsError() error {
	return fmt.Errorf(e.Error())
}

func (e *ServiceError) Is404() bool {
	return e.Code == NotFound("").Code
}

func (e *ServiceError) IsConflict() bool {
	return e.Code == Conflict("").Code
}

func (e *ServiceError) IsForbidden() bool {
	return e.Code == Forbidden("").Code
}

func (e *ServiceError) IsDryrunOperation() bool {
	return e.Code == ErrorDryrunOperation
}

func (e *ServiceError) IsLimitExceeded() bool {
	return e.Code == ErrorLimitExceeded
}

func (e *ServiceError) IsClientErrorClass() bool {
	return e.HttpCode >= http.StatusBadRequest && e.HttpCode < http.StatusInternalServerError
}

func (e *ServiceError) IsServerErrorClass() bool {
	return e.HttpCode >= http.StatusInternalServerError
}

// WithConfigurationErrors attaches the individual validator failures to the
// error so they end up in the API response body.
func (e *ServiceError) WithConfigurationErrors(messages []compat.ConfigValidationMessage) *ServiceError {
	e.ConfigurationErrors = messages
	return e
}

func (e *ServiceError) AsOpenapiError(operationID string) compat.Error {
	return compat.Error{
		Kind:                          "Error",
		Id:                            strconv.Itoa(int(e.Code)),
		Href:                          Href(e.Code),
		Code:                          CodeStr(e.Code),
		Reason:                        e.Reason,
		OperationId:                   operationID,
		ConfigurationValidationErrors: e.ConfigurationErrors,
	}
}

func CodeStr(code ServiceErrorCode) string {
	return fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, code)
}

func Href(code ServiceErrorCode) string {
	return fmt.Sprintf("%s%d", ERROR_HREF, code)
}

func NotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotFound, reason, values...)
}

func GeneralError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGeneral, reason, values...)
}

func Unauthorized(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthorized, reason, values...)
}

func Unauthenticated(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthenticated, reason, values...)
}

func Forbidden(reason string, values ...interface{}) *ServiceError {
	return New(ErrorForbidden, reason, values...)
}

func NotImplemented(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotImplemented, reason, values...)
}

func Conflict(reason string, values ...interface{}) *ServiceError {
	return New(ErrorConflict, reason, values...)
}

func Gone(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGone, reason, values...)
}

func Validation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

func MalformedRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedRequest, reason, values...)
}

func BadRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBadRequest, reason, values...)
}

func FailedToParseQueryParams(reason string, values ...interface{}) *ServiceError {
	message := fmt.Sprintf("%s: %s", ErrorFailedToParseQueryParamsReason, reason)
	return New(ErrorFailedToParseQueryParams, message, values...)
}

func DryrunOperation() *ServiceError {
	return New(ErrorDryrunOperation, ErrorDryrunOperationReason)
}

func LimitExceeded(reason string, values ...interface{}) *ServiceError {
	return New(ErrorLimitExceeded, reason, values...)
}

func ConfigurationValidationFailure(messages []compat.ConfigValidationMessage) *ServiceError {
	return New(ErrorConfigurationValidationFailure, ErrorConfigurationValidationFailureReason).WithConfigurationErrors(messages)
}

func VersionNotSupported(reason string, values ...interface{}) *ServiceError {
	return New(ErrorVersionNotSupported, reason, values...)
}

func SchedulerNotSupported(reason string, values ...interface{}) *ServiceError {
	return New(ErrorSchedulerNotSupported, reason, values...)
}

func RegionNotSupported(reason string, values ...interface{}) *ServiceError {
	return New(ErrorRegionNotSupported, reason, values...)
}

func MalformedClusterName(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedClusterName, reason, values...)
}

func MinimumFieldLengthNotReached(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMinimumFieldLength, reason, values...)
}

func MaximumFieldLengthExceeded(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMaximumFieldLength, reason, values...)
}

func UnableToSendErrorResponse() *ServiceError {
	return New(ErrorUnableToSendErrorResponse, ErrorUnableToSendErrorResponseReason)
}
