package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion metrics, labeled by pipeline stage (normalize, transliterate).
var (
	LinesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbn_lines_total",
		Help: "Lines processed by stage",
	}, []string{"stage"})

	BytesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbn_bytes_total",
		Help: "Bytes read and written by stage",
	}, []string{"stage", "direction"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bbn_stage_duration_seconds",
		Help:    "Time spent converting one line, by stage",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"stage"})
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbn_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bbn_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bbn_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})

	ConversionsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbn_conversions_logged_total",
		Help: "Conversion log writes by mode and result",
	}, []string{"mode", "result"})
)

// Document job metrics.
var (
	DocumentJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbn_document_jobs_total",
		Help: "Document conversion jobs by result",
	}, []string{"result"})

	DocumentJobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bbn_document_job_duration_seconds",
		Help:    "Document conversion job duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bbn_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bbn_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bbn_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bbn_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)
