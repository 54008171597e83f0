package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusMetricsHandler struct {
}

func NewPrometheusMetricsHandler() *prometheusMetricsHandler {
	return &prometheusMetricsHandler{}
}

func (h *prometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}
