package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sizeBuckets = []float64{100, 500, 1000, 5000, 10000, 50000}

var (
	// HTTPRequestsTotal считает запросы по методу, шаблону маршрута и коду ответа.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request body size in bytes",
			Buckets: sizeBuckets,
		},
		[]string{"method", "endpoint"},
	)
	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response body size in bytes",
			Buckets: sizeBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// HTTPRequest описывает обработанный запрос. Endpoint это шаблон маршрута, а не сырой путь.
type HTTPRequest struct {
	Method       string
	Endpoint     string
	Status       int
	Duration     time.Duration
	RequestSize  int64
	ResponseSize int
}

// ObserveHTTPRequest учитывает запрос во всех HTTP-метриках.
func ObserveHTTPRequest(req HTTPRequest) {
	status := strconv.Itoa(req.Status)
	HTTPRequestsTotal.WithLabelValues(req.Method, req.Endpoint, status).Inc()
	httpDuration.WithLabelValues(req.Method, req.Endpoint, status).Observe(req.Duration.Seconds())
	if req.RequestSize > 0 {
		httpRequestSize.WithLabelValues(req.Method, req.Endpoint).Observe(float64(req.RequestSize))
	}
	httpResponseSize.WithLabelValues(req.Method, req.Endpoint).Observe(float64(req.ResponseSize))
}
