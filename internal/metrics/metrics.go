// Package metrics holds the Prometheus instruments of the preview API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cloudguard"

// Metrics holds the counters and histograms for section resolution.
type Metrics struct {
	Resolutions    *prometheus.CounterVec // labels: renderer
	Fallbacks      prometheus.Counter
	Renders        *prometheus.CounterVec   // labels: renderer
	RenderDuration *prometheus.HistogramVec // labels: renderer
	HTTPRequests   *prometheus.CounterVec   // labels: route, code
}

// NewMetrics creates the instruments and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_resolutions_total",
			Help:      "Section ids resolved to a renderer, by renderer.",
		}, []string{"renderer"}),
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_fallbacks_total",
			Help:      "Unknown section ids that fell back to the default renderer.",
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_renders_total",
			Help:      "Plain-text section renders, by renderer.",
		}, []string{"renderer"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "section_render_duration_seconds",
			Help:      "Time spent composing a section render.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"renderer"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Preview API requests by route and status code.",
		}, []string{"route", "code"}),
	}

	reg.MustRegister(
		m.Resolutions,
		m.Fallbacks,
		m.Renders,
		m.RenderDuration,
		m.HTTPRequests,
	)

	return m
}

// ObserveResolution records one resolution outcome.
func (m *Metrics) ObserveResolution(renderer string, fallback bool) {
	m.Resolutions.WithLabelValues(renderer).Inc()
	if fallback {
		m.Fallbacks.Inc()
	}
}
