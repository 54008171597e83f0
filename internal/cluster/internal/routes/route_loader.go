package routes

import (
	"net/http"

	"github.com/goava/di"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/handlers"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/routes"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/auth"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	coreHandlers "github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/logger"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/server"
)

type options struct {
	di.Inject
	ServerConfig *server.ServerConfig
	FleetConfig  *config.FleetConfig
	AWSConfig    *aws.AWSConfig

	Cluster          services.ClusterService
	ComputeFleet     services.ComputeFleetService
	Instance         services.InstanceService
	Logs             services.LogsService
	Image            services.ImageService
	ConfigValidation services.ConfigValidationService
	DB               *db.ConnectionFactory

	Authentication auth.JWTMiddleware
	ErrorsHandler  *coreHandlers.ErrorHandler
}

func NewRouteLoader(s options) environments.RouteLoader {
	return &s
}

func (s *options) AddRoutes(mainRouter *mux.Router) error {
	return s.buildApiBaseRouter(mainRouter, routes.ApiEndpoint)
}

func (s *options) buildApiBaseRouter(mainRouter *mux.Router, basePath string) error {
	clusterHandler := handlers.NewClusterHandler(s.Cluster, s.ConfigValidation, s.ComputeFleet, s.Instance, s.FleetConfig, s.AWSConfig)
	computeFleetHandler := handlers.NewComputeFleetHandler(s.ComputeFleet, s.Cluster, s.FleetConfig)
	instanceHandler := handlers.NewInstanceHandler(s.Instance, s.Cluster)
	logsHandler := handlers.NewLogsHandler(s.Logs, s.Cluster, s.Image, s.FleetConfig)
	imageHandler := handlers.NewImageHandler(s.Image, s.ConfigValidation, s.FleetConfig, s.AWSConfig)

	requireIssuer := auth.NewRequireIssuerMiddleware().RequireIssuer([]string{s.ServerConfig.TokenIssuerURL}, errors.ErrorUnauthenticated)

	// base path, /v3
	apiRouter := mainRouter.PathPrefix(basePath).Subrouter()

	//  /errors
	apiErrorsRouter := apiRouter.PathPrefix("/errors").Subrouter()
	apiErrorsRouter.HandleFunc("", s.ErrorsHandler.List).Methods(http.MethodGet)
	apiErrorsRouter.HandleFunc("/{id}", s.ErrorsHandler.Get).Methods(http.MethodGet)

	collections := []api.CollectionMetadata{}

	//  /clusters
	collections = append(collections, api.CollectionMetadata{
		ID:   "clusters",
		Kind: "ClusterList",
	})
	apiClustersRouter := apiRouter.PathPrefix("/clusters").Subrouter()
	apiClustersRouter.HandleFunc("", clusterHandler.Create).
		Name(logger.NewLogEvent("create-cluster", "create a cluster").ToString()).
		Methods(http.MethodPost)
	apiClustersRouter.HandleFunc("", clusterHandler.List).
		Name(logger.NewLogEvent("list-clusters", "list all clusters").ToString()).
		Methods(http.MethodGet)
	apiClustersRouter.HandleFunc("/{clusterName}", clusterHandler.Get).
		Name(logger.NewLogEvent("describe-cluster", "describe a cluster").ToString()).
		Methods(http.MethodGet)
	apiClustersRouter.HandleFunc("/{clusterName}", clusterHandler.Update).
		Name(logger.NewLogEvent("update-cluster", "update a cluster").ToString()).
		Methods(http.MethodPut)
	apiClustersRouter.HandleFunc("/{clusterName}", clusterHandler.Delete).
		Name(logger.NewLogEvent("delete-cluster", "delete a cluster").ToString()).
		Methods(http.MethodDelete)

	//  /clusters/{clusterName}/computefleet
	apiClustersRouter.HandleFunc("/{clusterName}/computefleet", computeFleetHandler.Get).
		Name(logger.NewLogEvent("describe-compute-fleet", "describe the compute fleet of a cluster").ToString()).
		Methods(http.MethodGet)
	apiClustersRouter.HandleFunc("/{clusterName}/computefleet", computeFleetHandler.Patch).
		Name(logger.NewLogEvent("update-compute-fleet", "request a compute fleet status change").ToString()).
		Methods(http.MethodPatch)

	//  /clusters/{clusterName}/instances
	apiClustersRouter.HandleFunc("/{clusterName}/instances", instanceHandler.List).
		Name(logger.NewLogEvent("list-cluster-instances", "list the instances of a cluster").ToString()).
		Methods(http.MethodGet)
	apiClustersRouter.HandleFunc("/{clusterName}/instances", instanceHandler.Delete).
		Name(logger.NewLogEvent("delete-cluster-instances", "terminate the compute instances of a cluster").ToString()).
		Methods(http.MethodDelete)

	//  /clusters/{clusterName}/logstreams and /stackevents
	apiClustersRouter.HandleFunc("/{clusterName}/logstreams", logsHandler.ListClusterLogStreams).
		Name(logger.NewLogEvent("list-cluster-log-streams", "list the log streams of a cluster").ToString()).
		Methods(http.MethodGet)
	apiClustersRouter.HandleFunc("/{clusterName}/logstreams/{logStreamName}", logsHandler.GetClusterLogEvents).
		Name(logger.NewLogEvent("get-cluster-log-events", "get the events of a cluster log stream").ToString()).
		Methods(http.MethodGet)
	apiClustersRouter.HandleFunc("/{clusterName}/stackevents", logsHandler.GetClusterStackEvents).
		Name(logger.NewLogEvent("get-cluster-stack-events", "get the stack events of a cluster").ToString()).
		Methods(http.MethodGet)

	apiClustersRouter.Use(s.Authentication.AuthenticateAccountJWT)
	apiClustersRouter.Use(requireIssuer)

	//  /images
	collections = append(collections, api.CollectionMetadata{
		ID:   "images",
		Kind: "ImageList",
	})
	apiImagesRouter := apiRouter.PathPrefix("/images").Subrouter()
	apiImagesRouter.HandleFunc("/custom", imageHandler.Create).
		Name(logger.NewLogEvent("build-image", "build a custom image").ToString()).
		Methods(http.MethodPost)
	apiImagesRouter.HandleFunc("/custom", imageHandler.List).
		Name(logger.NewLogEvent("list-images", "list custom images by status").ToString()).
		Methods(http.MethodGet)
	apiImagesRouter.HandleFunc("/custom/{imageId}", imageHandler.Get).
		Name(logger.NewLogEvent("describe-image", "describe a custom image").ToString()).
		Methods(http.MethodGet)
	apiImagesRouter.HandleFunc("/custom/{imageId}", imageHandler.Delete).
		Name(logger.NewLogEvent("delete-image", "delete a custom image").ToString()).
		Methods(http.MethodDelete)
	apiImagesRouter.HandleFunc("/custom/{imageId}/logstreams", logsHandler.ListImageLogStreams).
		Name(logger.NewLogEvent("list-image-log-streams", "list the log streams of an image build").ToString()).
		Methods(http.MethodGet)
	apiImagesRouter.HandleFunc("/custom/{imageId}/logstreams/{logStreamName}", logsHandler.GetImageLogEvents).
		Name(logger.NewLogEvent("get-image-log-events", "get the events of an image build log stream").ToString()).
		Methods(http.MethodGet)
	apiImagesRouter.HandleFunc("/custom/{imageId}/stackevents", logsHandler.GetImageStackEvents).
		Name(logger.NewLogEvent("get-image-stack-events", "get the stack events of an image build").ToString()).
		Methods(http.MethodGet)
	apiImagesRouter.HandleFunc("/official", imageHandler.ListOfficial).
		Name(logger.NewLogEvent("list-official-images", "list official images").ToString()).
		Methods(http.MethodGet)

	apiImagesRouter.Use(s.Authentication.AuthenticateAccountJWT)
	apiImagesRouter.Use(requireIssuer)

	v3Metadata := api.VersionMetadata{
		ID:          "v3",
		Collections: collections,
	}
	apiRouter.HandleFunc("", v3Metadata.ServeHTTP).Methods(http.MethodGet)
	apiRouter.Use(coreHandlers.MetricsMiddleware)
	apiRouter.Use(db.TransactionMiddleware(s.DB))
	apiRouter.Use(gorillaHandlers.CompressHandler)

	return nil
}
