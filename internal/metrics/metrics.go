// Package metrics holds the Prometheus collectors of the site server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all site metrics
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	PageRenders     prometheus.Counter
	RenderErrors    prometheus.Counter
	Panics          prometheus.Counter
}

// NewRegistry creates a registry with every site metric registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route"},
		),

		PageRenders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_page_renders_total",
				Help: "Total page renders",
			},
		),

		RenderErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_page_render_errors_total",
				Help: "Total failed page renders",
			},
		),

		Panics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_http_panics_total",
				Help: "Total recovered handler panics",
			},
		),
	}

	r.registry.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.PageRenders,
		r.RenderErrors,
		r.Panics,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Gatherer exposes the underlying registry for tests and exporters
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
