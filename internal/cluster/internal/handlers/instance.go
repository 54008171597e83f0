package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/presenters"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
)

type instanceHandler struct {
	service        services.InstanceService
	clusterService services.ClusterService
}

func NewInstanceHandler(service services.InstanceService, clusterService services.ClusterService) *instanceHandler {
	return &instanceHandler{
		service:        service,
		clusterService: clusterService,
	}
}

func (h instanceHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()
			query := r.URL.Query()

			nodeType := query.Get("nodeType")
			if nodeType != "" && !constants.IsValidNodeType(nodeType) {
				return nil, errors.FailedToParseQueryParams("nodeType %s is not valid, must be %s or %s",
					nodeType, constants.NodeTypeHeadNode, constants.NodeTypeComputeNode)
			}

			cluster, err := h.clusterService.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			instances, nextToken, err := h.service.ListClusterInstances(cluster, nodeType, query.Get("queueName"), query.Get("nextToken"))
			if err != nil {
				return nil, err
			}
			return public.ListClusterInstancesResponse{
				Instances: presenters.PresentClusterInstanceList(instances),
				NextToken: nextToken,
			}, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (h instanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()

			force, svcErr := parseBoolParam(r.URL.Query(), "force", false)
			if svcErr != nil {
				return nil, svcErr
			}

			cluster, svcErr := h.clusterService.Get(ctx, name)
			if svcErr != nil {
				return nil, svcErr
			}
			return nil, h.service.DeleteClusterInstances(ctx, cluster, force)
		},
	}
	handlers.HandleDelete(w, r, cfg, http.StatusAccepted)
}
