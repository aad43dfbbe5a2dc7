package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PublisherPrometheusMetrics struct {
	kafkaPublishDurationHist *prometheus.HistogramVec
}

func newPublisherPrometheusMetrics(reg prometheus.Registerer) *PublisherPrometheusMetrics {
	hist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kafka_publisher_duration_seconds",
			Help:    "Duration of Kafka message publishing in seconds.",
			Buckets: []float64{0.001, 0.010, 0.100, 0.200, 0.500, 1, 2, 5, 10},
		},
		[]string{"topic", "success"},
	)
	reg.MustRegister(hist)

	return &PublisherPrometheusMetrics{kafkaPublishDurationHist: hist}
}

// Observe records one publish attempt. A nil receiver is a no-op so callers
// without metrics wiring need no guard.
func (m *PublisherPrometheusMetrics) Observe(startTime time.Time, topic string, publishErr error) {
	if m == nil {
		return
	}
	m.kafkaPublishDurationHist.
		WithLabelValues(topic, strconv.FormatBool(publishErr == nil)).
		Observe(time.Since(startTime).Seconds())
}
