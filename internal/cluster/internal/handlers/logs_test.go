package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
)

func Test_logsHandler_ListClusterLogStreams(t *testing.T) {
	logsService := &services.LogsServiceMock{
		StreamPrefixFromFiltersFunc: func(cluster *dbapi.Cluster, filters []string) (string, *errors.ServiceError) {
			return "", nil
		},
		ListLogStreamsFunc: func(region string, name string, logGroupName string, prefix string, nextToken string) (*cloudwatchlogs.DescribeLogStreamsOutput, *errors.ServiceError) {
			return &cloudwatchlogs.DescribeLogStreamsOutput{
				LogStreams: []*cloudwatchlogs.LogStream{
					{LogStreamName: aws.String("ip-10-0-0-1.i-1234.cfn-init")},
				},
			}, nil
		},
	}

	tests := []struct {
		name           string
		service        services.LogsService
		wantStatusCode int
	}{
		{
			name:           "streams of an existing cluster return 200",
			service:        logsService,
			wantStatusCode: http.StatusOK,
		},
		{
			name: "malformed filter returns 400",
			service: &services.LogsServiceMock{
				StreamPrefixFromFiltersFunc: func(cluster *dbapi.Cluster, filters []string) (string, *errors.ServiceError) {
					return "", errors.FailedToParseQueryParams("filters must be Name=<name>,Values=<value> pairs")
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewLogsHandler(tt.service, slurmClusterService(), nil, config.NewFleetConfig())
			req, rw := GetHandlerParams("GET", "/v3/clusters/hpc-test/logstreams", nil, t)
			h.ListClusterLogStreams(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_logsHandler_ListClusterLogStreams_unmanagedVersion(t *testing.T) {
	g := gomega.NewWithT(t)
	clusterService := &services.ClusterServiceMock{
		GetFunc: func(ctx context.Context, name string) (*dbapi.Cluster, *errors.ServiceError) {
			return &dbapi.Cluster{
				Name:    "hpc-test",
				Region:  "us-east-1",
				Version: "2.11.0",
			}, nil
		},
	}
	logsService := &services.LogsServiceMock{}

	h := NewLogsHandler(logsService, clusterService, nil, config.NewFleetConfig())
	req, rw := GetHandlerParams("GET", "/v3/clusters/hpc-test/logstreams", nil, t)
	h.ListClusterLogStreams(rw, req)
	resp := rw.Result()
	defer resp.Body.Close()

	g.Expect(resp.StatusCode).To(gomega.Equal(http.StatusBadRequest))
	g.Expect(logsService.ListLogStreamsCalls()).To(gomega.BeEmpty())
}

func Test_logsHandler_GetClusterLogEvents(t *testing.T) {
	logsService := &services.LogsServiceMock{
		GetLogEventsFunc: func(region string, name string, logGroupName string, logStreamName string, criteria services.GetLogEventsCriteria) (*cloudwatchlogs.GetLogEventsOutput, *errors.ServiceError) {
			return &cloudwatchlogs.GetLogEventsOutput{
				Events: []*cloudwatchlogs.OutputLogEvent{
					{Message: aws.String("cfn-init completed"), Timestamp: aws.Int64(1700000000000)},
				},
			}, nil
		},
	}

	tests := []struct {
		name           string
		url            string
		wantStatusCode int
	}{
		{
			name:           "events return 200",
			url:            "/v3/clusters/hpc-test/logstreams/stream?startTime=2026-08-20T00:00:00Z&endTime=2026-08-21T00:00:00Z",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "malformed startTime returns 400",
			url:            "/v3/clusters/hpc-test/logstreams/stream?startTime=yesterday",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed limit returns 400",
			url:            "/v3/clusters/hpc-test/logstreams/stream?limit=many",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewLogsHandler(logsService, slurmClusterService(), nil, config.NewFleetConfig())
			req, rw := GetHandlerParams("GET", tt.url, nil, t)
			h.GetClusterLogEvents(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_logsHandler_GetImageLogEvents(t *testing.T) {
	g := gomega.NewWithT(t)

	imageService := &services.ImageServiceMock{
		GetFunc: func(imageId string) (*dbapi.ImageBuild, *errors.ServiceError) {
			return &dbapi.ImageBuild{ImageID: "hpc-image", Region: "us-east-1"}, nil
		},
	}
	logsService := &services.LogsServiceMock{
		GetLogEventsFunc: func(region string, name string, logGroupName string, logStreamName string, criteria services.GetLogEventsCriteria) (*cloudwatchlogs.GetLogEventsOutput, *errors.ServiceError) {
			return &cloudwatchlogs.GetLogEventsOutput{}, nil
		},
	}

	h := NewLogsHandler(logsService, nil, imageService, config.NewFleetConfig())
	req, rw := GetHandlerParams("GET", "/v3/images/custom/hpc-image/logstreams/stream", nil, t)
	h.GetImageLogEvents(rw, req)
	resp := rw.Result()
	g.Expect(resp.StatusCode).To(gomega.Equal(http.StatusOK))
	resp.Body.Close()
}
