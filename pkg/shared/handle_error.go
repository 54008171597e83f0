package shared

import (
	"net/http"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/logger"
)

// HandleError handles a service error by returning an appropriate HTTP response with error reason
func HandleError(r *http.Request, w http.ResponseWriter, err *errors.ServiceError) {
	ulog := logger.NewUHCLogger(r.Context())
	operationID := logger.GetOperationID(r.Context())
	// If this is a 4xx error, its the user's issue, log as info rather than error
	if err.HttpCode >= 400 && err.HttpCode <= 499 {
		ulog.Infof(err.Error())
	} else {
		ulog.Error(err)
	}

	WriteJSONResponse(w, err.HttpCode, err.AsOpenapiError(operationID))
}
