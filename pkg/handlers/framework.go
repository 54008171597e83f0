package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/shared"
)

type HandlerConfig struct {
	MarshalInto  interface{}
	Validate     []Validate
	Action       HttpAction
	ErrorHandler ErrorHandlerFunc
}

type Validate func() *errors.ServiceError
type ErrorHandlerFunc func(r *http.Request, w http.ResponseWriter, err *errors.ServiceError)
type HttpAction func() (interface{}, *errors.ServiceError)

// RestHandler is the generic handler interface registered by the route loaders
type RestHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func success(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig, result interface{}, httpStatus int) {
	shared.WriteJSONResponse(w, httpStatus, result)
}

func errorHandler(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig, err *errors.ServiceError) {
	if cfg.ErrorHandler != nil {
		cfg.ErrorHandler(r, w, err)
	} else {
		shared.HandleError(r, w, err)
	}
}

// Handle reads the request body into cfg.MarshalInto when set, runs the
// validators and invokes the action, writing the result with httpStatus.
func Handle(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig, httpStatus int) {
	if cfg.MarshalInto != nil {
		err := json.NewDecoder(r.Body).Decode(&cfg.MarshalInto)
		if err != nil {
			handleError := errors.MalformedRequest("Unable to read request body: %s", err)
			errorHandler(r, w, cfg, handleError)
			return
		}
	}

	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	result, serviceErr := cfg.Action()
	switch {
	case serviceErr != nil:
		errorHandler(r, w, cfg, serviceErr)
	default:
		success(r, w, cfg, result, httpStatus)
	}
}

// HandleDelete is Handle without a request body to unmarshal.
func HandleDelete(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig, httpStatus int) {
	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	result, serviceErr := cfg.Action()
	switch {
	case serviceErr != nil:
		errorHandler(r, w, cfg, serviceErr)
	default:
		success(r, w, cfg, result, httpStatus)
	}
}

func HandleGet(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig) {
	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	result, serviceErr := cfg.Action()
	switch {
	case serviceErr != nil:
		errorHandler(r, w, cfg, serviceErr)
	default:
		shared.WriteJSONResponse(w, http.StatusOK, result)
	}
}

func HandleList(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig) {
	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	results, serviceError := cfg.Action()
	if serviceError != nil {
		errorHandler(r, w, cfg, serviceError)
		return
	}

	shared.WriteJSONResponse(w, http.StatusOK, results)
}

// ValidateQueryParam returns a validator that fails when the named query
// parameter is missing or empty.
func ValidateQueryParam(queryParams map[string][]string, field string) Validate {
	return func() *errors.ServiceError {
		fieldValue, ok := queryParams[field]
		if !ok || len(fieldValue) == 0 || fieldValue[0] == "" {
			return errors.FailedToParseQueryParams("bad request, cannot parse query parameter '%s'", field)
		}
		return nil
	}
}
