package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	awsclient "github.com/hpc-fleet/hpc-fleet-manager/pkg/client/aws"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/compat"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
)

func buildImageBody(t *testing.T) io.Reader {
	payload := public.ImageBuildRequest{
		ImageId:            "hpc-image",
		ImageConfiguration: base64.StdEncoding.EncodeToString([]byte("Build:\n  ParentImage: ami-12345678\n")),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func okImageConfigValidation() *services.ConfigValidationServiceMock {
	return &services.ConfigValidationServiceMock{
		ValidateImageConfigurationFunc: func(encoded string, opts services.ValidationOptions) (*services.ImageConfiguration, []compat.ConfigValidationMessage, *errors.ServiceError) {
			return &services.ImageConfiguration{
				ParentImage: "ami-12345678",
				Os:          "alinux2",
				Raw:         []byte("Build:\n  ParentImage: ami-12345678\n"),
			}, nil, nil
		},
	}
}

func notFoundImageService() *services.ImageServiceMock {
	return &services.ImageServiceMock{
		GetFunc: func(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
			return nil, errors.NotFound("Image build with id='%s' not found", imageId)
		},
	}
}

func Test_imageHandler_Create(t *testing.T) {
	type fields struct {
		service          services.ImageService
		configValidation services.ConfigValidationService
	}
	type args struct {
		url string
	}

	tests := []struct {
		name           string
		fields         fields
		args           args
		wantStatusCode int
	}{
		{
			name: "accepted image build returns 202",
			fields: fields{
				service: &services.ImageServiceMock{
					GetFunc: func(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
						return nil, errors.NotFound("Image build with id='%s' not found", imageId)
					},
					RegisterImageBuildJobFunc: func(imageBuild *dbapi.ImageBuild, configuration []byte) *errors.ServiceError {
						return nil
					},
				},
				configValidation: okImageConfigValidation(),
			},
			args:           args{url: "/v3/images/custom"},
			wantStatusCode: http.StatusAccepted,
		},
		{
			name: "dryrun returns 412 without registering",
			fields: fields{
				service:          notFoundImageService(),
				configValidation: okImageConfigValidation(),
			},
			args:           args{url: "/v3/images/custom?dryrun=true"},
			wantStatusCode: http.StatusPreconditionFailed,
		},
		{
			name: "taken image id returns 409",
			fields: fields{
				service: &services.ImageServiceMock{
					GetFunc: func(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
						return &dbapi.ImageBuild{ImageID: imageId}, nil
					},
				},
				configValidation: okImageConfigValidation(),
			},
			args:           args{url: "/v3/images/custom"},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "unsupported region returns 400",
			fields: fields{
				service:          notFoundImageService(),
				configValidation: okImageConfigValidation(),
			},
			args:           args{url: "/v3/images/custom?region=mars-north-1"},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewImageHandler(tt.fields.service, tt.fields.configValidation, config.NewFleetConfig(), awsclient.NewAWSConfig())
			req, rw := GetHandlerParams("POST", tt.args.url, buildImageBody(t), t)
			h.Create(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_imageHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		service        services.ImageService
		wantStatusCode int
	}{
		{
			name: "existing image build returns 200",
			service: &services.ImageServiceMock{
				GetFunc: func(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
					return &dbapi.ImageBuild{
						ImageID: "hpc-image",
						Region:  "us-east-1",
						Status:  constants.ImageBuildStatusBuildComplete.String(),
					}, nil
				},
				DescribeStackFunc: func(imageBuild *dbapi.ImageBuild) (*cloudformation.Stack, *errors.ServiceError) {
					return nil, errors.GeneralError("stack is gone")
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing image build returns 404",
			service:        notFoundImageService(),
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewImageHandler(tt.service, nil, config.NewFleetConfig(), awsclient.NewAWSConfig())
			req, rw := GetHandlerParams("GET", "/v3/images/custom/hpc-image", nil, t)
			h.Get(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_imageHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		wantStatusCode int
	}{
		{
			name:           "listing available image builds returns 200",
			url:            "/v3/images/custom?imageStatus=AVAILABLE",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing imageStatus returns 400",
			url:            "/v3/images/custom",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid imageStatus returns 400",
			url:            "/v3/images/custom?imageStatus=BROKEN",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unsupported region returns 400",
			url:            "/v3/images/custom?imageStatus=AVAILABLE&region=mars-north-1",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	service := &services.ImageServiceMock{
		ListFunc: func(filter constants.ImageStatusFilter, region string) (dbapi.ImageBuildList, *errors.ServiceError) {
			return dbapi.ImageBuildList{}, nil
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewImageHandler(service, nil, config.NewFleetConfig(), awsclient.NewAWSConfig())
			req, rw := GetHandlerParams("GET", tt.url, nil, t)
			h.List(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_imageHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		service        services.ImageService
		wantStatusCode int
	}{
		{
			name: "delete returns 202",
			service: &services.ImageServiceMock{
				GetFunc: func(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
					return &dbapi.ImageBuild{ImageID: "hpc-image", Status: constants.ImageBuildStatusBuildComplete.String()}, nil
				},
				RegisterImageDeprovisionJobFunc: func(imageId string, force bool) *errors.ServiceError {
					return nil
				},
			},
			wantStatusCode: http.StatusAccepted,
		},
		{
			name:           "missing image build returns 404",
			service:        notFoundImageService(),
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewImageHandler(tt.service, nil, config.NewFleetConfig(), awsclient.NewAWSConfig())
			req, rw := GetHandlerParams("DELETE", "/v3/images/custom/hpc-image", nil, t)
			h.Delete(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_imageHandler_ListOfficial(t *testing.T) {
	service := &services.ImageServiceMock{
		ListOfficialImagesFunc: func(region string, os string, architecture string) ([]*ec2.Image, *errors.ServiceError) {
			return []*ec2.Image{
				{ImageId: aws.String("ami-12345678"), Architecture: aws.String("x86_64")},
			}, nil
		},
	}

	tests := []struct {
		name           string
		url            string
		wantStatusCode int
	}{
		{
			name:           "listing official images returns 200",
			url:            "/v3/images/official",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unsupported region returns 400",
			url:            "/v3/images/official?region=mars-north-1",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewImageHandler(service, nil, config.NewFleetConfig(), awsclient.NewAWSConfig())
			req, rw := GetHandlerParams("GET", tt.url, nil, t)
			h.ListOfficial(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}
