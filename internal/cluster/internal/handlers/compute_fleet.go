package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
)

type computeFleetHandler struct {
	service        services.ComputeFleetService
	clusterService services.ClusterService
	fleetConfig    *config.FleetConfig
}

func NewComputeFleetHandler(service services.ComputeFleetService, clusterService services.ClusterService, fleetConfig *config.FleetConfig) *computeFleetHandler {
	return &computeFleetHandler{
		service:        service,
		clusterService: clusterService,
		fleetConfig:    fleetConfig,
	}
}

func (h computeFleetHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()

			cluster, err := h.clusterService.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			status, lastUpdated, err := h.service.DescribeComputeFleet(ctx, cluster)
			if err != nil {
				return nil, err
			}
			return public.DescribeComputeFleetResponse{
				Status:                status.String(),
				LastStatusUpdatedTime: lastUpdated,
			}, nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h computeFleetHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var payload public.UpdateComputeFleetRequestPayload

	cfg := &handlers.HandlerConfig{
		MarshalInto: &payload,
		Validate: []handlers.Validate{
			handlers.ValidateNotEmpty(&payload.Status, "status"),
		},
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()

			cluster, err := h.clusterService.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			if err := checkVersionMinorMatch(h.fleetConfig, cluster); err != nil {
				return nil, err
			}
			status, lastUpdated, err := h.service.UpdateComputeFleet(ctx, cluster, constants.ComputeFleetStatus(payload.Status))
			if err != nil {
				return nil, err
			}
			return public.UpdateComputeFleetResponse{
				Status:                status.String(),
				LastStatusUpdatedTime: lastUpdated,
			}, nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusAccepted)
}
