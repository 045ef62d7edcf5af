package lockers

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultSlowThreshold is the wait or hold time above which Instrumented
// logs a warning.
const DefaultSlowThreshold = 100 * time.Millisecond

// Opt configures an Instrumented locker.
type Opt func(*Instrumented)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Opt {
	return func(l *Instrumented) {
		l.logger = logger
	}
}

// WithClock sets the clock used to measure wait and hold times.
func WithClock(clock clockwork.Clock) Opt {
	return func(l *Instrumented) {
		l.clock = clock
	}
}

// WithSlowThreshold sets the duration above which waits and holds are
// logged as warnings.
func WithSlowThreshold(d time.Duration) Opt {
	return func(l *Instrumented) {
		l.slow = d
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Opt {
	return func(l *Instrumented) {
		l.metrics = m
	}
}

// Instrumented wraps a sync.Locker and reports how long callers wait for it
// and how long they hold it.
type Instrumented struct {
	inner   sync.Locker
	name    string
	logger  *zap.Logger
	clock   clockwork.Clock
	slow    time.Duration
	metrics *Metrics

	// acquired is protected by inner.
	acquired time.Time
}

// NewInstrumented wraps inner. name identifies the lock in logs and metrics.
func NewInstrumented(inner sync.Locker, name string, opts ...Opt) *Instrumented {
	l := &Instrumented{
		inner:  inner,
		name:   name,
		logger: zap.NewNop(),
		clock:  clockwork.NewRealClock(),
		slow:   DefaultSlowThreshold,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(zap.String("lock", name))
	return l
}

// Lock acquires the wrapped locker.
func (l *Instrumented) Lock() {
	start := l.clock.Now()
	l.inner.Lock()
	l.acquired = l.clock.Now()

	wait := l.acquired.Sub(start)
	if l.metrics != nil {
		l.metrics.observeWait(l.name, wait)
	}
	if wait > l.slow {
		l.logger.Warn("slow lock acquisition", zap.Duration("wait", wait))
		return
	}
	l.logger.Debug("lock acquired", zap.Duration("wait", wait))
}

// Unlock releases the wrapped locker.
func (l *Instrumented) Unlock() {
	held := l.clock.Since(l.acquired)
	l.inner.Unlock()

	if l.metrics != nil {
		l.metrics.observeHold(l.name, held)
	}
	if held > l.slow {
		l.logger.Warn("lock held too long", zap.Duration("held", held))
	}
}
