package aws

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	pkgerrors "github.com/pkg/errors"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
)

// error codes the AWS SDK reports when a request was throttled
var throttlingErrorCodes = []string{
	"Throttling",
	"ThrottlingException",
	"RequestLimitExceeded",
	"TooManyRequestsException",
	"ProvisionedThroughputExceededException",
}

// error codes the AWS SDK reports when the service role misses a permission
var accessDeniedErrorCodes = []string{
	"AccessDenied",
	"AccessDeniedException",
	"UnauthorizedOperation",
}

func wrapAWSError(err error, msg string) error {
	switch err.(type) {
	case awserr.RequestFailure:
		return pkgerrors.Wrapf(err, msg)
	default:
		return err
	}
}

// IsStackNotFound reports whether err is the CloudFormation ValidationError
// returned for a stack name that does not exist.
func IsStackNotFound(err error) bool {
	awsErr, ok := pkgerrors.Cause(err).(awserr.Error)
	if !ok {
		return false
	}
	return awsErr.Code() == "ValidationError" && strings.Contains(awsErr.Message(), "does not exist")
}

// IsConditionalCheckFailed reports whether err is a DynamoDB conditional
// write rejection, i.e. a concurrent writer won the race.
func IsConditionalCheckFailed(err error) bool {
	awsErr, ok := pkgerrors.Cause(err).(awserr.Error)
	if !ok {
		return false
	}
	return awsErr.Code() == "ConditionalCheckFailedException"
}

// IsResourceNotFound reports whether err is the CloudWatch Logs or DynamoDB
// error for a log group, stream or table that does not exist.
func IsResourceNotFound(err error) bool {
	awsErr, ok := pkgerrors.Cause(err).(awserr.Error)
	if !ok {
		return false
	}
	return awsErr.Code() == "ResourceNotFoundException"
}

func IsThrottle(err error) bool {
	awsErr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	for _, code := range throttlingErrorCodes {
		if awsErr.Code() == code {
			return true
		}
	}
	return false
}

func IsAccessDenied(err error) bool {
	awsErr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	for _, code := range accessDeniedErrorCodes {
		if awsErr.Code() == code {
			return true
		}
	}
	return false
}

// ToServiceError converts an error coming back from the AWS SDK into the
// service error returned to API clients: a missing stack or resource surfaces
// as 404, throttling as 429, a missing permission as 400 with the AWS
// message, anything else as 500.
func ToServiceError(err error) *errors.ServiceError {
	cause := pkgerrors.Cause(err)
	if serviceError, ok := cause.(*errors.ServiceError); ok {
		return serviceError
	}
	if IsThrottle(cause) {
		return errors.LimitExceeded(errors.ErrorLimitExceededReason)
	}
	if awsErr, ok := cause.(awserr.Error); ok {
		if IsStackNotFound(cause) || IsResourceNotFound(cause) {
			return errors.NotFound(awsErr.Message())
		}
		if IsAccessDenied(cause) {
			return errors.BadRequest("%s. Please make sure the role used by the service has the required permissions", awsErr.Message())
		}
		return errors.GeneralError("Failed to complete the AWS request: %s", awsErr.Message())
	}
	return errors.GeneralError("Failed to complete the AWS request: %s", err.Error())
}
