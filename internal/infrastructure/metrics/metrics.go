package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 儀表板建置的觀測指標，註冊在自己的 registry 上。
type Metrics struct {
	registry *prometheus.Registry

	// Build duration by selector
	BuildLatency *prometheus.HistogramVec

	// Per-domain read failures
	FetchFailures *prometheus.CounterVec

	// Most recently computed efficiency score
	LastScore prometheus.Gauge

	// Loads discarded because a newer one started
	Superseded prometheus.Counter

	// HTTP requests by route and status
	Requests *prometheus.CounterVec
}

// New 建立並註冊全部指標。
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		BuildLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_build_duration_seconds",
			Help:    "Duration of a full dashboard build including all domain reads",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"range"}),

		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_fetch_failures_total",
			Help: "Domain reads that failed while building a dashboard",
		}, []string{"domain"}),

		LastScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_efficiency_score",
			Help: "Efficiency score of the most recent dashboard build",
		}),

		Superseded: factory.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_loads_superseded_total",
			Help: "Dashboard loads discarded because the caller issued a newer one",
		}),

		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "status"}),
	}
}

// ObserveBuild records the duration of one dashboard build.
func (m *Metrics) ObserveBuild(selector string, seconds float64) {
	if m != nil {
		m.BuildLatency.WithLabelValues(selector).Observe(seconds)
	}
}

// IncFetchFailure records a failed domain read.
func (m *Metrics) IncFetchFailure(domain string) {
	if m != nil {
		m.FetchFailures.WithLabelValues(domain).Inc()
	}
}

// SetScore records the latest efficiency score.
func (m *Metrics) SetScore(score int) {
	if m != nil {
		m.LastScore.Set(float64(score))
	}
}

// IncSuperseded records a discarded load.
func (m *Metrics) IncSuperseded() {
	if m != nil {
		m.Superseded.Inc()
	}
}

// IncRequest records one served HTTP request.
func (m *Metrics) IncRequest(route, status string) {
	if m != nil {
		m.Requests.WithLabelValues(route, status).Inc()
	}
}

// Handler 回傳 /metrics 使用的 http.Handler。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
