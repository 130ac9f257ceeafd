/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler implements a Prometheus /metrics endpoint.
type Handler struct {
	gatherer prometheus.Gatherer
}

// NewHandler returns a new /metrics endpoint which returns Prometheus formatted statistics.
func NewHandler(gatherer prometheus.Gatherer) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Handler{gatherer: gatherer}
}

// Path returns the base path of the target URL for this Handler.
func (h *Handler) Path() string {
	return "/metrics"
}

// Method returns the HTTP method, which is always GET.
func (h *Handler) Method() string {
	return http.MethodGet
}

// Handler returns the echo handler serving the metrics.
func (h *Handler) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(h.gatherer,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	))
}

// Register adds the endpoint to e.
func (h *Handler) Register(e *echo.Echo) {
	e.Add(h.Method(), h.Path(), h.Handler())
}
