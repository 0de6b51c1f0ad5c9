package prometheus

import (
	"time"

	"github.com/Matoxx01/mikes-backend/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	LoginCounter      prometheus.Counter
	AuthErrorsCounter prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Cascade deletion metrics
	CascadeDeleteCounter prometheus.CounterVec

	// Bulk import metrics
	BulkImportCounter       prometheus.Counter
	BulkImportErrorsCounter prometheus.CounterVec
	BulkImportedRows        prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Cascade deletion metrics
	CascadeDeleteCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cascade_deletes_total",
			Help: "Total number of cascade deletion workflows",
		},
		[]string{"entity"},
	)

	// Bulk import metrics
	BulkImportCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_bulk_imports_total",
			Help: "Total number of bulk import requests",
		},
	)

	BulkImportErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_bulk_import_errors_total",
			Help: "Total number of failed bulk imports",
		},
		[]string{"reason"},
	)

	BulkImportedRows = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_bulk_imported_rows_total",
			Help: "Total number of rows inserted by bulk imports",
		},
		[]string{"table"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordAuthError increments the counter for a failed authentication
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordCascadeDelete increments the counter for a cascade deletion workflow
func RecordCascadeDelete(entity string) {
	CascadeDeleteCounter.WithLabelValues(entity).Inc()
}

// RecordBulkImportError increments the counter for a failed bulk import
func RecordBulkImportError(reason string) {
	BulkImportErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordBulkImportedRows adds the number of rows a bulk import inserted
func RecordBulkImportedRows(table string, n int) {
	BulkImportedRows.WithLabelValues(table).Add(float64(n))
}
