package s3

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Upload results used as the "result" label.
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultError    = "error"
)

// Metrics holds the upload collectors.
type Metrics struct {
	uploads  *prometheus.CounterVec
	bytes    prometheus.Counter
	duration *prometheus.HistogramVec
}

// NewMetrics creates the upload collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("registerer must not be nil")
	}

	m := &Metrics{
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "s3upload",
			Name:      "uploads_total",
			Help:      "Total number of upload attempts, partitioned by result.",
		}, []string{"result"}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "s3upload",
			Name:      "uploaded_bytes_total",
			Help:      "Total number of payload bytes accepted by the object store.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "s3upload",
			Name:      "upload_duration_seconds",
			Help:      "Histogram of upload request latencies.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"result"}),
	}

	for _, collector := range []prometheus.Collector{m.uploads, m.bytes, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(result string, size int64, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.uploads.WithLabelValues(result).Inc()
	m.duration.WithLabelValues(result).Observe(elapsed.Seconds())

	if result == resultSuccess {
		m.bytes.Add(float64(size))
	}
}
