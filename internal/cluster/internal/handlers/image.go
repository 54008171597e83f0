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

type imageHandler struct {
	service          services.ImageService
	configValidation services.ConfigValidationService
	fleetConfig      *config.FleetConfig
	awsConfig        *aws.AWSConfig
}

func NewImageHandler(service services.ImageService, configValidation services.ConfigValidationService, fleetConfig *config.FleetConfig, awsConfig *aws.AWSConfig) *imageHandler {
	return &imageHandler{
		service:          service,
		configValidation: configValidation,
		fleetConfig:      fleetConfig,
		awsConfig:        awsConfig,
	}
}

func (h imageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var imageRequest public.ImageBuildRequest
	query := r.URL.Query()
	region := query.Get("region")
	version := query.Get("version")
	ctx := r.Context()

	cfg := &handlers.HandlerConfig{
		MarshalInto: &imageRequest,
		Validate: []handlers.Validate{
			handlers.ValidateNotEmpty(&imageRequest.ImageId, "imageId"),
			ValidClusterName(&imageRequest.ImageId, "imageId"),
			ValidateImageIdIsUnique(&imageRequest.ImageId, h.service),
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

			configuration, messages, svcErr := h.configValidation.ValidateImageConfiguration(imageRequest.ImageConfiguration, opts)
			if svcErr != nil {
				return nil, svcErr
			}

			return withDryrun(dryrun, func() (interface{}, *errors.ServiceError) {
				imageBuild := presenters.ConvertImageBuildRequest(imageRequest, region)
				imageBuild.Version = version
				imageBuild.RollbackOnFailure = rollbackOnFailure
				imageBuild.Owner = auth.GetUsernameFromContext(ctx)

				if svcErr := h.service.RegisterImageBuildJob(imageBuild, configuration.Raw); svcErr != nil {
					return nil, svcErr
				}
				return public.BuildImageResponse{
					Image:              presenters.PresentImageInfoSummary(imageBuild),
					ValidationMessages: presenters.PresentValidationMessages(messages),
				}, nil
			})
		},
	}

	// return 202 status accepted
	handlers.Handle(w, r, cfg, http.StatusAccepted)
}

func (h imageHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			imageId := mux.Vars(r)["imageId"]
			imageBuild, err := h.service.Get(imageId)
			if err != nil {
				return nil, err
			}

			// Best effort, the stack is gone once the build has finished.
			stack, _ := h.service.DescribeStack(imageBuild)

			return presenters.PresentDescribeImage(imageBuild, stack), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h imageHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	imageStatus := query.Get("imageStatus")

	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateQueryParam(query, "imageStatus"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			if !constants.IsValidImageStatusFilter(imageStatus) {
				return nil, errors.FailedToParseQueryParams("imageStatus %s is not valid. Must be one of: %s, %s, %s",
					imageStatus, constants.ImageStatusFilterAvailable, constants.ImageStatusFilterPending, constants.ImageStatusFilterFailed)
			}

			region := query.Get("region")
			if region != "" && !h.fleetConfig.IsRegionSupported(region) {
				return nil, errors.RegionNotSupported("region %s is not supported, must be one of: %v", region, h.fleetConfig.SupportedRegions)
			}

			imageBuilds, err := h.service.List(constants.ImageStatusFilter(imageStatus), region)
			if err != nil {
				return nil, err
			}
			return public.ListImagesResponse{
				Images: presenters.PresentImageInfoSummaryList(imageBuilds),
			}, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (h imageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			imageId := mux.Vars(r)["imageId"]

			force, svcErr := parseBoolParam(r.URL.Query(), "force", false)
			if svcErr != nil {
				return nil, svcErr
			}

			imageBuild, svcErr := h.service.Get(imageId)
			if svcErr != nil {
				return nil, svcErr
			}
			if svcErr := h.service.RegisterImageDeprovisionJob(imageId, force); svcErr != nil {
				return nil, svcErr
			}

			imageBuild.Status = constants.ImageBuildStatusDeleteInProgress.String()
			return public.DeleteImageResponse{
				Image: presenters.PresentImageInfoSummary(imageBuild),
			}, nil
		},
	}
	handlers.HandleDelete(w, r, cfg, http.StatusAccepted)
}

func (h imageHandler) ListOfficial(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	region := query.Get("region")

	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			ValidateRegion(h.fleetConfig, h.awsConfig, &region),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			images, err := h.service.ListOfficialImages(region, query.Get("os"), query.Get("architecture"))
			if err != nil {
				return nil, err
			}
			return public.ListOfficialImagesResponse{
				Images: presenters.PresentAmiInfoList(images),
			}, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}
