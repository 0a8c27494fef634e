package metrics

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsHandler(t *testing.T) {
	h := MetricsHandler()
	assert.NotNil(t, h)
	assert.Implements(t, (*http.Handler)(nil), h)
}

func TestPrometheusMetrics(t *testing.T) {
	type metricTestCase struct {
		name        string
		collector   prometheus.Collector
		action      func()
		expectedOut string
		metricName  string
	}

	testCases := []metricTestCase{
		{
			name: "HttpRequestsTotal increments correctly",
			collector: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_generator_http_requests_total",
					Help: "Total number of HTTP requests processed, labeled by endpoint and status code.",
				},
				[]string{"endpoint", "status"},
			),
			action: func() {
				HttpRequestsTotal.WithLabelValues("/generate-notification", "200").Add(2)
			},
			expectedOut: `# HELP push_generator_http_requests_total Total number of HTTP requests processed, labeled by endpoint and status code.
# TYPE push_generator_http_requests_total counter
push_generator_http_requests_total{endpoint="/generate-notification",status="200"} 2
`,
			metricName: "push_generator_http_requests_total",
		},
		{
			name: "LLMRequestsTotal increments correctly",
			collector: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_generator_llm_requests_total",
					Help: "Total number of chat completion requests, labeled by result.",
				},
				[]string{"result"},
			),
			action: func() {
				LLMRequestsTotal.WithLabelValues("success").Inc()
			},
			expectedOut: `# HELP push_generator_llm_requests_total Total number of chat completion requests, labeled by result.
# TYPE push_generator_llm_requests_total counter
push_generator_llm_requests_total{result="success"} 1
`,
			metricName: "push_generator_llm_requests_total",
		},
		{
			name: "NotificationsGeneratedTotal increments correctly",
			collector: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_generator_notifications_generated_total",
					Help: "Total number of notifications produced, labeled by product and source.",
				},
				[]string{"product", "source"},
			),
			action: func() {
				NotificationsGeneratedTotal.WithLabelValues("Премиальная карта", "llm").Inc()
			},
			expectedOut: `# HELP push_generator_notifications_generated_total Total number of notifications produced, labeled by product and source.
# TYPE push_generator_notifications_generated_total counter
push_generator_notifications_generated_total{product="Премиальная карта",source="llm"} 1
`,
			metricName: "push_generator_notifications_generated_total",
		},
		{
			name: "RecommendationsTotal increments correctly",
			collector: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_generator_recommendations_total",
					Help: "Total number of product recommendations produced, labeled by method.",
				},
				[]string{"method"},
			),
			action: func() {
				RecommendationsTotal.WithLabelValues("rules").Inc()
			},
			expectedOut: `# HELP push_generator_recommendations_total Total number of product recommendations produced, labeled by method.
# TYPE push_generator_recommendations_total counter
push_generator_recommendations_total{method="rules"} 1
`,
			metricName: "push_generator_recommendations_total",
		},
		{
			name: "KafkaPublishTotal increments correctly",
			collector: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_generator_kafka_publish_total",
					Help: "Total number of Kafka publish attempts, labeled by result.",
				},
				[]string{"result"},
			),
			action: func() {
				KafkaPublishTotal.WithLabelValues("failure").Inc()
			},
			expectedOut: `# HELP push_generator_kafka_publish_total Total number of Kafka publish attempts, labeled by result.
# TYPE push_generator_kafka_publish_total counter
push_generator_kafka_publish_total{result="failure"} 1
`,
			metricName: "push_generator_kafka_publish_total",
		},
		{
			name: "ErrorTotal increments correctly",
			collector: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_generator_error_total",
					Help: "Total number of errors, labeled by type.",
				},
				[]string{"type"},
			),
			action: func() {
				ErrorTotal.WithLabelValues("parse_response").Inc()
			},
			expectedOut: `# HELP push_generator_error_total Total number of errors, labeled by type.
# TYPE push_generator_error_total counter
push_generator_error_total{type="parse_response"} 1
`,
			metricName: "push_generator_error_total",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			reg.MustRegister(tc.collector)

			// Swap the global metric variable to the test collector for isolation
			if c, ok := tc.collector.(*prometheus.CounterVec); ok {
				switch tc.metricName {
				case "push_generator_http_requests_total":
					HttpRequestsTotal = c
				case "push_generator_llm_requests_total":
					LLMRequestsTotal = c
				case "push_generator_notifications_generated_total":
					NotificationsGeneratedTotal = c
				case "push_generator_recommendations_total":
					RecommendationsTotal = c
				case "push_generator_kafka_publish_total":
					KafkaPublishTotal = c
				case "push_generator_error_total":
					ErrorTotal = c
				}
			}

			tc.action()

			err := testutil.CollectAndCompare(tc.collector, strings.NewReader(tc.expectedOut), tc.metricName)
			assert.NoError(t, err)
		})
	}
}
