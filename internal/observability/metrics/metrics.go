package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_generator_http_requests_total",
			Help: "Total number of HTTP requests processed, labeled by endpoint and status code.",
		},
		[]string{"endpoint", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "push_generator_http_request_duration_seconds",
			Help:    "Histogram of latencies for HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_generator_llm_requests_total",
			Help: "Total number of chat completion requests, labeled by result.",
		},
		[]string{"result"},
	)

	LLMRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "push_generator_llm_request_duration_seconds",
			Help:    "Histogram of chat completion durations.",
			Buckets: prometheus.DefBuckets,
		},
	)

	NotificationsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_generator_notifications_generated_total",
			Help: "Total number of notifications produced, labeled by product and source.",
		},
		[]string{"product", "source"},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_generator_recommendations_total",
			Help: "Total number of product recommendations produced, labeled by method.",
		},
		[]string{"method"},
	)

	KafkaPublishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_generator_kafka_publish_total",
			Help: "Total number of Kafka publish attempts, labeled by result.",
		},
		[]string{"result"},
	)

	KafkaPublishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "push_generator_kafka_publish_duration_seconds",
			Help:    "Histogram of Kafka publish durations.",
			Buckets: prometheus.DefBuckets,
		},
	)

	ErrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_generator_error_total",
			Help: "Total number of errors, labeled by type.",
		},
		[]string{"type"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(NotificationsGeneratedTotal)
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(KafkaPublishTotal)
	prometheus.MustRegister(KafkaPublishDuration)
	prometheus.MustRegister(ErrorTotal)
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
