package lockers

import (
	"runtime"
	"sync/atomic"
)

// Spin is a spin lock. The zero value is unlocked.
type Spin struct {
	state atomic.Int32
}

// NewSpin returns an unlocked Spin.
func NewSpin() *Spin {
	return new(Spin)
}

// Lock spins, yielding the processor between attempts, until the lock is
// acquired.
func (s *Spin) Lock() {
	for !s.TryLock() {
		runtime.Gosched()
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (s *Spin) TryLock() bool {
	return s.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. It panics if s is not locked.
func (s *Spin) Unlock() {
	if s.state.Swap(0) == 0 {
		panic("lockers: unlock of unlocked Spin")
	}
}
