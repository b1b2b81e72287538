package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each server gets its own
// registry so several can live in one process.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	analysesTotal     *prometheus.CounterVec
	analysisDuration  prometheus.Histogram
	sessionRecords    *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hcm_http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hcm_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hcm_analyses_total",
			Help: "Analysis runs triggered through the API by result.",
		}, []string{"result"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hcm_analysis_duration_seconds",
			Help:    "Histogram of analysis run durations.",
			Buckets: prometheus.DefBuckets,
		}),
		sessionRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hcm_session_records",
			Help: "Records in the current session by kind (pages, features, best_practices).",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.analysesTotal,
		m.analysisDuration,
		m.sessionRecords,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeAnalysis(start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.analysesTotal.WithLabelValues(result).Inc()
	m.analysisDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) setSessionRecords(pages, features, practices int) {
	m.sessionRecords.WithLabelValues("pages").Set(float64(pages))
	m.sessionRecords.WithLabelValues("features").Set(float64(features))
	m.sessionRecords.WithLabelValues("best_practices").Set(float64(practices))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// instrument is mux middleware; it labels by route template so path
// parameters do not explode the label set.
func (m *Metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}
