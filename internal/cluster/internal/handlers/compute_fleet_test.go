package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
)

func slurmClusterService() *services.ClusterServiceMock {
	return &services.ClusterServiceMock{
		GetFunc: func(ctx context.Context, name string) (*dbapi.Cluster, *errors.ServiceError) {
			return &dbapi.Cluster{
				Name:      "hpc-test",
				Region:    "us-east-1",
				Scheduler: constants.SchedulerSlurm.String(),
				Version:   "3.7.0",
				Status:    constants.ClusterStatusCreateComplete.String(),
			}, nil
		},
	}
}

func patchFleetBody(t *testing.T, status string) io.Reader {
	body, err := json.Marshal(public.UpdateComputeFleetRequestPayload{Status: status})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func Test_computeFleetHandler_Get(t *testing.T) {
	type fields struct {
		service        services.ComputeFleetService
		clusterService services.ClusterService
	}

	tests := []struct {
		name           string
		fields         fields
		wantStatusCode int
	}{
		{
			name: "fleet status returns 200",
			fields: fields{
				service: &services.ComputeFleetServiceMock{
					DescribeComputeFleetFunc: func(ctx context.Context, cluster *dbapi.Cluster) (constants.ComputeFleetStatus, string, *errors.ServiceError) {
						return constants.ComputeFleetStatusRunning, "2026-08-20T10:00:00Z", nil
					},
				},
				clusterService: slurmClusterService(),
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "missing cluster returns 404",
			fields: fields{
				service: &services.ComputeFleetServiceMock{},
				clusterService: &services.ClusterServiceMock{
					GetFunc: func(ctx context.Context, name string) (*dbapi.Cluster, *errors.ServiceError) {
						return nil, errors.NotFound("Cluster with name='hpc-test' not found")
					},
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewComputeFleetHandler(tt.fields.service, tt.fields.clusterService, config.NewFleetConfig())
			req, rw := GetHandlerParams("GET", "/v3/clusters/hpc-test/computefleet", nil, t)
			h.Get(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_computeFleetHandler_Patch(t *testing.T) {
	type fields struct {
		service services.ComputeFleetService
	}
	type args struct {
		status string
	}

	tests := []struct {
		name           string
		fields         fields
		args           args
		wantStatusCode int
	}{
		{
			name: "stop request returns 202",
			fields: fields{
				service: &services.ComputeFleetServiceMock{
					UpdateComputeFleetFunc: func(ctx context.Context, cluster *dbapi.Cluster, requested constants.ComputeFleetStatus) (constants.ComputeFleetStatus, string, *errors.ServiceError) {
						return constants.ComputeFleetStatusStopRequested, "2026-08-20T10:00:00Z", nil
					},
				},
			},
			args:           args{status: constants.ComputeFleetStatusStopRequested.String()},
			wantStatusCode: http.StatusAccepted,
		},
		{
			name: "status not requestable for the scheduler returns 400",
			fields: fields{
				service: &services.ComputeFleetServiceMock{
					UpdateComputeFleetFunc: func(ctx context.Context, cluster *dbapi.Cluster, requested constants.ComputeFleetStatus) (constants.ComputeFleetStatus, string, *errors.ServiceError) {
						return constants.ComputeFleetStatusUnknown, "", errors.BadRequest("status ENABLED cannot be requested for a slurm cluster")
					},
				},
			},
			args:           args{status: constants.ComputeFleetStatusEnabled.String()},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "empty status returns 400",
			fields:         fields{service: &services.ComputeFleetServiceMock{}},
			args:           args{status: ""},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h := NewComputeFleetHandler(tt.fields.service, slurmClusterService(), config.NewFleetConfig())
			req, rw := GetHandlerParams("PATCH", "/v3/clusters/hpc-test/computefleet", patchFleetBody(t, tt.args.status), t)
			h.Patch(rw, req)
			resp := rw.Result()
			g.Expect(resp.StatusCode).To(gomega.Equal(tt.wantStatusCode))
			resp.Body.Close()
		})
	}
}

func Test_computeFleetHandler_Patch_minorVersionMismatch(t *testing.T) {
	g := gomega.NewWithT(t)
	clusterService := &services.ClusterServiceMock{
		GetFunc: func(ctx context.Context, name string) (*dbapi.Cluster, *errors.ServiceError) {
			return &dbapi.Cluster{
				Name:      "hpc-test",
				Region:    "us-east-1",
				Scheduler: constants.SchedulerSlurm.String(),
				Version:   "3.6.2",
				Status:    constants.ClusterStatusCreateComplete.String(),
			}, nil
		},
	}
	fleetService := &services.ComputeFleetServiceMock{}

	h := NewComputeFleetHandler(fleetService, clusterService, config.NewFleetConfig())
	req, rw := GetHandlerParams("PATCH", "/v3/clusters/hpc-test/computefleet", patchFleetBody(t, constants.ComputeFleetStatusStopRequested.String()), t)
	h.Patch(rw, req)
	resp := rw.Result()
	defer resp.Body.Close()

	g.Expect(resp.StatusCode).To(gomega.Equal(http.StatusBadRequest))
	g.Expect(fleetService.UpdateComputeFleetCalls()).To(gomega.BeEmpty())
}
