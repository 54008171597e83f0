package services

import (
	"reflect"
	"strings"

	"gorm.io/gorm"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
)

// Field names suspected to contain personally identifiable information
var piiFields []string = []string{
	"username",
	"first_name",
	"last_name",
	"email",
	"address",
}

func HandleGetError(resourceType, field string, value interface{}, err error) *errors.ServiceError {
	value = redactPII(field, value)
	if IsRecordNotFoundError(err) {
		return errors.NotFound("%s with %s='%v' not found", resourceType, field, value)
	}
	return errors.GeneralError("Unable to find %s with %s='%v'", resourceType, field, value)
}

func HandleGoneError(resourceType, field string, value interface{}) *errors.ServiceError {
	value = redactPII(field, value)
	return errors.New(errors.ErrorGone, "%s with %s='%v' has been deleted", resourceType, field, value)
}

func HandleCreateError(resourceType string, err error) *errors.ServiceError {
	if strings.Contains(err.Error(), "violates unique constraint") {
		return errors.Conflict("This %s already exists", resourceType)
	}
	return errors.GeneralError("Unable to create %s: %s", resourceType, err.Error())
}

func HandleUpdateError(resourceType string, err error) *errors.ServiceError {
	if strings.Contains(err.Error(), "violates unique constraint") {
		return errors.Conflict("Changes to %s conflict with existing records", resourceType)
	}
	return errors.GeneralError("Unable to update %s: %s", resourceType, err.Error())
}

func HandleDeleteError(resourceType string, field string, value interface{}, err error) *errors.ServiceError {
	value = redactPII(field, value)
	return errors.GeneralError("Unable to delete %s with %s='%v'", resourceType, field, value)
}

// Sanitize errors of any personally identifiable information
func redactPII(field string, value interface{}) interface{} {
	for _, f := range piiFields {
		if field == f {
			return "<redacted>"
		}
	}
	return value
}

func IsRecordNotFoundError(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Fields returns the non-nil fields of obj keyed by field name. Used to build
// sparse gorm updates from patch requests.
func Fields(obj interface{}) map[string]interface{} {
	m := make(map[string]interface{})

	val := reflect.Indirect(reflect.ValueOf(obj))
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldByName := val.FieldByName(field.Name)
		if !fieldByName.IsNil() {
			m[field.Name] = fieldByName.Interface()
		}
	}

	return m
}

func TruncateString(str string, num int) string {
	truncatedString := str
	if len(str) > num {
		truncatedString = str[0:num]
	}
	return truncatedString
}
