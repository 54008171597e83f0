package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/presenters"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/auth"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
)

type clusterHandler struct {
	service             services.ClusterService
	configValidation    services.ConfigValidationService
	computeFleetService services.ComputeFleetService
	instanceService     services.InstanceService
	fleetConfig         *config.FleetConfig
	awsConfig           *aws.AWSConfig
}

func NewClusterHandler(service services.ClusterService, configValidation services.ConfigValidationService, computeFleetService services.ComputeFleetService, instanceService services.InstanceService, fleetConfig *config.FleetConfig, awsConfig *aws.AWSConfig) *clusterHandler {
	return &clusterHandler{
		service:             service,
		configValidation:    configValidation,
		computeFleetService: computeFleetService,
		instanceService:     instanceService,
		fleetConfig:         fleetConfig,
		awsConfig:           awsConfig,
	}
}

func (h clusterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var clusterRequest public.ClusterCreateRequest
	query := r.URL.Query()
	region := query.Get("region")
	version := query.Get("version")
	ctx := r.Context()

	cfg := &handlers.HandlerConfig{
		MarshalInto: &clusterRequest,
		Validate: []handlers.Validate{
			handlers.ValidateNotEmpty(&clusterRequest.ClusterName, "clusterName"),
			ValidClusterName(&clusterRequest.ClusterName, "clusterName"),
			ValidateClusterNameIsUnique(&clusterRequest.ClusterName, h.service),
			ValidateRegion(h.fleetConfig, h.awsConfig, &region),
			ValidateVersion(h.fleetConfig, &version),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			opts, svcErr := parseValidationOptions(query)
			if svcErr != nil {
				return nil, svcErr
			}
			dryrun, svcErr := parseBoolParam(query, "dryrun", false)
			if svcErr != nil {
				return nil, svcErr
			}
			rollbackOnFailure, svcErr := parseBoolParam(query, "rollbackOnFailure", true)
			if svcErr != nil {
				return nil, svcErr
			}

			configuration, messages, svcErr := h.configValidation.ValidateClusterConfiguration(clusterRequest.ClusterConfiguration, opts)
			if svcErr != nil {
				return nil, svcErr
			}

			return withDryrun(dryrun, func() (interface{}, *errors.ServiceError) {
				cluster := presenters.ConvertClusterCreateRequest(clusterRequest, region)
				cluster.Scheduler = configuration.Scheduler.String()
				cluster.Version = version
				cluster.RollbackOnFailure = rollbackOnFailure
				cluster.RetainLogs = true
				cluster.Owner = auth.GetUsernameFromContext(ctx)
				cluster.OrganisationId = auth.GetOrgIdFromContext(ctx)

				if svcErr := h.service.RegisterClusterJob(cluster, configuration.Raw); svcErr != nil {
					return nil, svcErr
				}
				return public.CreateClusterResponse{
					Cluster:            presenters.PresentClusterSummary(cluster),
					ValidationMessages: presenters.PresentValidationMessages(messages),
				}, nil
			})
		},
	}

	// return 202 status accepted
	handlers.Handle(w, r, cfg, http.StatusAccepted)
}

func (h clusterHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()
			cluster, err := h.service.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			if err := checkVersionManaged(h.fleetConfig, cluster); err != nil {
				return nil, err
			}

			// The stack, fleet status and head node lookups are best effort:
			// a cluster mid-create or mid-delete still describes cleanly.
			stack, _ := h.service.DescribeStack(cluster)
			fleetStatus := constants.ComputeFleetStatusUnknown
			if status, _, fleetErr := h.computeFleetService.DescribeComputeFleet(ctx, cluster); fleetErr == nil {
				fleetStatus = status
			}
			headNode, _ := h.instanceService.GetHeadNode(cluster)

			return presenters.PresentDescribeCluster(cluster, stack, fleetStatus.String(), headNode), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h clusterHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			query := r.URL.Query()

			listArgs, svcErr := parseListArguments(query)
			if svcErr != nil {
				return nil, svcErr
			}

			statusFilter := query["clusterStatus"]
			for _, status := range statusFilter {
				if !constants.IsValidClusterStatus(status) {
					return nil, errors.FailedToParseQueryParams("clusterStatus %s is not valid", status)
				}
			}

			region := query.Get("region")
			if region != "" && !h.fleetConfig.IsRegionSupported(region) {
				return nil, errors.RegionNotSupported("region %s is not supported, must be one of: %v", region, h.fleetConfig.SupportedRegions)
			}

			clusters, paging, err := h.service.List(ctx, listArgs, region, statusFilter)
			if err != nil {
				return nil, err
			}

			return public.ListClustersResponse{
				Clusters:  presenters.PresentClusterSummaryList(clusters),
				NextToken: presentNextToken(paging),
			}, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (h clusterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var clusterRequest public.ClusterUpdateRequest
	query := r.URL.Query()

	cfg := &handlers.HandlerConfig{
		MarshalInto: &clusterRequest,
		Action: func() (interface{}, *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()

			opts, svcErr := parseValidationOptions(query)
			if svcErr != nil {
				return nil, svcErr
			}
			dryrun, svcErr := parseBoolParam(query, "dryrun", false)
			if svcErr != nil {
				return nil, svcErr
			}
			forceUpdate, svcErr := parseBoolParam(query, "forceUpdate", false)
			if svcErr != nil {
				return nil, svcErr
			}

			cluster, svcErr := h.service.Get(ctx, name)
			if svcErr != nil {
				return nil, svcErr
			}
			if svcErr := checkVersionManaged(h.fleetConfig, cluster); svcErr != nil {
				return nil, svcErr
			}
			if !forceUpdate && cluster.Status != constants.ClusterStatusCreateComplete.String() &&
				cluster.Status != constants.ClusterStatusUpdateComplete.String() &&
				cluster.Status != constants.ClusterStatusUpdateFailed.String() {
				return nil, errors.Conflict("cluster %s is in status %s and cannot be updated, use forceUpdate to override", name, cluster.Status)
			}

			configuration, messages, svcErr := h.configValidation.ValidateClusterConfiguration(clusterRequest.ClusterConfiguration, opts)
			if svcErr != nil {
				return nil, svcErr
			}
			if configuration.Scheduler.String() != cluster.Scheduler {
				return nil, errors.BadRequest("the scheduler of a cluster cannot be changed by an update")
			}

			return withDryrun(dryrun, func() (interface{}, *errors.ServiceError) {
				if svcErr := h.service.Update(cluster, configuration.Raw); svcErr != nil {
					return nil, svcErr
				}
				return public.UpdateClusterResponse{
					Cluster:            presenters.PresentClusterSummary(cluster),
					ValidationMessages: presenters.PresentValidationMessages(messages),
				}, nil
			})
		},
	}

	// return 202 status accepted
	handlers.Handle(w, r, cfg, http.StatusAccepted)
}

func (h clusterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			name := mux.Vars(r)["clusterName"]
			ctx := r.Context()

			retainLogs, svcErr := parseBoolParam(r.URL.Query(), "retainLogs", true)
			if svcErr != nil {
				return nil, svcErr
			}

			cluster, svcErr := h.service.Get(ctx, name)
			if svcErr != nil {
				return nil, svcErr
			}
			if svcErr := h.service.RegisterClusterDeprovisionJob(ctx, name, retainLogs); svcErr != nil {
				return nil, svcErr
			}

			cluster.Status = constants.ClusterStatusDeleteInProgress.String()
			return public.DeleteClusterResponse{
				Cluster: presenters.PresentClusterSummary(cluster),
			}, nil
		},
	}
	handlers.HandleDelete(w, r, cfg, http.StatusAccepted)
}
