package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/services/sentry"
)

var _ Server = &MetricsServer{}

type MetricsServer struct {
	httpServer    *http.Server
	metricsConfig *MetricsConfig
	serverConfig  *ServerConfig
	sentryTimeout time.Duration
}

func NewMetricsServer(metricsConfig *MetricsConfig, serverConfig *ServerConfig, sentryConfig *sentry.Config) *MetricsServer {
	mainRouter := mux.NewRouter()
	mainRouter.NotFoundHandler = http.HandlerFunc(api.SendNotFound)

	// metrics endpoint
	prometheusMetricsHandler := handlers.NewPrometheusMetricsHandler()
	mainRouter.Handle("/metrics", prometheusMetricsHandler.Handler())

	srv := &http.Server{
		Handler: mainRouter,
		Addr:    metricsConfig.BindAddress,
	}

	return &MetricsServer{
		httpServer:    srv,
		metricsConfig: metricsConfig,
		serverConfig:  serverConfig,
		sentryTimeout: sentryConfig.Timeout,
	}
}

func (s MetricsServer) Start() {
	go s.Run()
}

func (s MetricsServer) Run() {
	var err error
	if s.metricsConfig.EnableHTTPS {
		if s.serverConfig.HTTPSCertFile == "" || s.serverConfig.HTTPSKeyFile == "" {
			check(
				fmt.Errorf("Unspecified required --https-cert-file, --https-key-file"),
				"Can't start https server", s.sentryTimeout,
			)
		}

		// Serve with TLS
		glog.Infof("Serving Metrics with TLS at %s", s.metricsConfig.BindAddress)
		err = s.httpServer.ListenAndServeTLS(s.serverConfig.HTTPSCertFile, s.serverConfig.HTTPSKeyFile)
	} else {
		glog.Infof("Serving Metrics without TLS at %s", s.metricsConfig.BindAddress)
		err = s.httpServer.ListenAndServe()
	}
	check(err, "Metrics server terminated with errors", s.sentryTimeout)
	glog.Infof("Metrics server terminated")
}

func (s MetricsServer) Stop() {
	err := s.httpServer.Shutdown(context.Background())
	if err != nil {
		glog.Warningf("Unable to stop metrics server: %s", err)
	}
}

// Unimplemented
func (s MetricsServer) Listen() (listener net.Listener, err error) {
	return nil, nil
}

// Unimplemented
func (s MetricsServer) Serve(listener net.Listener) {
}
