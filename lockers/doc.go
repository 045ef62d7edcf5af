// Package lockers provides mutex primitives that can be injected into a
// guarded.Ptr with guarded.WithMutex.
//
//   - [Spin] busy-waits with compare-and-swap. Use it for very short critical
//     sections.
//   - [Timed] supports TryLock, LockContext and LockTimeout. Its timers run
//     on a clockwork.Clock.
//   - [Instrumented] wraps any sync.Locker. It measures wait and hold times,
//     logs slow ones with zap and records them in Prometheus [Metrics].
//
// None of the primitives is re-entrant: locking twice from the same
// goroutine deadlocks.
//
// # Basic Usage
//
//	p := guarded.New(q, guarded.WithMutex[Queue](lockers.NewSpin))
//
//	metrics := lockers.NewMetrics(prometheus.DefaultRegisterer)
//	p = guarded.New(q, guarded.WithMutex[Queue](func() *lockers.Instrumented {
//		return lockers.NewInstrumented(new(sync.Mutex), "queue",
//			lockers.WithLogger(logger),
//			lockers.WithMetrics(metrics),
//		)
//	}))
package lockers
