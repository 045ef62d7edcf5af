package lockers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the namespace all lock metrics are defined under.
	Namespace = "guarded"
	subsystem = "lock"
	lockLabel = "lock"
)

// Metrics holds the collectors updated by Instrumented lockers. One Metrics
// may be shared by many lockers; they are told apart by the lock label.
type Metrics struct {
	wait         *prometheus.HistogramVec
	hold         *prometheus.HistogramVec
	acquisitions *prometheus.CounterVec
}

// NewMetrics creates the lock collectors and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	buckets := prometheus.ExponentialBuckets(1e-6, 4, 12)

	return &Metrics{
		wait: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: subsystem,
			Name:      "wait_seconds",
			Help:      "Time spent waiting to acquire a lock",
			Buckets:   buckets,
		}, []string{lockLabel}),
		hold: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: subsystem,
			Name:      "hold_seconds",
			Help:      "Time a lock was held before release",
			Buckets:   buckets,
		}, []string{lockLabel}),
		acquisitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: subsystem,
			Name:      "acquisitions_total",
			Help:      "Number of times a lock was acquired",
		}, []string{lockLabel}),
	}
}

func (m *Metrics) observeWait(lock string, d time.Duration) {
	m.acquisitions.WithLabelValues(lock).Inc()
	m.wait.WithLabelValues(lock).Observe(d.Seconds())
}

func (m *Metrics) observeHold(lock string, d time.Duration) {
	m.hold.WithLabelValues(lock).Observe(d.Seconds())
}
