package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/presenters"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
)

type logsHandler struct {
	service        services.LogsService
	clusterService services.ClusterService
	imageService   services.ImageService
	fleetConfig    *config.FleetConfig
}

func NewLogsHandler(service services.LogsService, clusterService services.ClusterService, imageService services.ImageService, fleetConfig *config.FleetConfig) *logsHandler {
	return &logsHandler{
		service:        service,
		clusterService: clusterService,
		imageService:   imageService,
		fleetConfig:    fleetConfig,
	}
}

// parseLogEventsCriteria reads the time window and paging parameters of a log
// events request.
func parseLogEventsCriteria(query url.Values) (services.GetLogEventsCriteria, *errors.ServiceError) {
	criteria := services.GetLogEventsCriteria{
		NextToken: query.Get("nextToken"),
	}
	if raw := query.Get("startTime"); raw != "" {
		startTime, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return criteria, errors.FailedToParseQueryParams("startTime must be an ISO 8601 timestamp, got %q", raw)
		}
		criteria.StartTime = &startTime
	}
	if raw := query.Get("endTime"); raw != "" {
		endTime, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return criteria, errors.FailedToParseQueryParams("endTime must be an ISO 8601 timestamp, got %q", raw)
		}
		criteria.EndTime = &endTime
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return criteria, errors.FailedToParseQueryParams("limit must be an integer, got %q", raw)
		}
		criteria.Limit = &limit
	}
	startFromHead, svcErr := parseBoolParam(query, "startFromHead", false)
	if svcErr != nil {
		return criteria, svcErr
	}
	criteria.StartFromHead = startFromHead
	return criteria, nil
}

func (h logsHandler) ListClusterLogStreams(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()
			query := r.URL.Query()

			cluster, err := h.clusterService.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			if err := checkVersionManaged(h.fleetConfig, cluster); err != nil {
				return nil, err
			}
			prefix, err := h.service.StreamPrefixFromFilters(cluster, query["filters"])
			if err != nil {
				return nil, err
			}
			output, err := h.service.ListLogStreams(cluster.Region, cluster.Name, h.fleetConfig.LogGroupName(cluster.Name), prefix, query.Get("nextToken"))
			if err != nil {
				return nil, err
			}
			return presenters.PresentLogStreams(output), nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (h logsHandler) GetClusterLogEvents(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			vars := mux.Vars(r)
			ctx := r.Context()

			criteria, err := parseLogEventsCriteria(r.URL.Query())
			if err != nil {
				return nil, err
			}
			cluster, err := h.clusterService.Get(ctx, vars["clusterName"])
			if err != nil {
				return nil, err
			}
			if err := checkVersionManaged(h.fleetConfig, cluster); err != nil {
				return nil, err
			}
			output, err := h.service.GetLogEvents(cluster.Region, cluster.Name, h.fleetConfig.LogGroupName(cluster.Name), vars["logStreamName"], criteria)
			if err != nil {
				return nil, err
			}
			return presenters.PresentLogEvents(output), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h logsHandler) GetClusterStackEvents(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()

			cluster, err := h.clusterService.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			if err := checkVersionManaged(h.fleetConfig, cluster); err != nil {
				return nil, err
			}
			output, err := h.service.GetStackEvents(cluster.Region, cluster.Name, r.URL.Query().Get("nextToken"))
			if err != nil {
				return nil, err
			}
			return presenters.PresentStackEvents(output), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h logsHandler) ListImageLogStreams(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			imageId := mux.Vars(r)["imageId"]

			imageBuild, err := h.imageService.Get(imageId)
			if err != nil {
				return nil, err
			}
			output, err := h.service.ListLogStreams(imageBuild.Region, imageBuild.ImageID, h.fleetConfig.LogGroupName(imageBuild.ImageID), "", r.URL.Query().Get("nextToken"))
			if err != nil {
				return nil, err
			}
			return presenters.PresentLogStreams(output), nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (h logsHandler) GetImageLogEvents(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			vars := mux.Vars(r)

			criteria, err := parseLogEventsCriteria(r.URL.Query())
			if err != nil {
				return nil, err
			}
			imageBuild, err := h.imageService.Get(vars["imageId"])
			if err != nil {
				return nil, err
			}
			output, err := h.service.GetLogEvents(imageBuild.Region, imageBuild.ImageID, h.fleetConfig.LogGroupName(imageBuild.ImageID), vars["logStreamName"], criteria)
			if err != nil {
				return nil, err
			}
			return presenters.PresentLogEvents(output), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h logsHandler) GetImageStackEvents(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			imageId := mux.Vars(r)["imageId"]

			imageBuild, err := h.imageService.Get(imageId)
			if err != nil {
				return nil, err
			}
			output, err := h.service.GetStackEvents(imageBuild.Region, imageBuild.ImageID, r.URL.Query().Get("nextToken"))
			if err != nil {
				return nil, err
			}
			return presenters.PresentStackEvents(output), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}
