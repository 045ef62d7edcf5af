package lockers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrTimeout is returned by LockTimeout when the lock was not acquired in
// time.
var ErrTimeout = errors.New("lock acquisition timed out")

// Timed is a mutex that can give up waiting. It is backed by a channel with
// a single slot: the lock is held while the slot is full.
type Timed struct {
	slot  chan struct{}
	clock clockwork.Clock
}

// NewTimed returns an unlocked Timed. Timeouts are measured on clock; a nil
// clock means the real one.
func NewTimed(clock clockwork.Clock) *Timed {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Timed{
		slot:  make(chan struct{}, 1),
		clock: clock,
	}
}

// Lock blocks until the lock is acquired.
func (t *Timed) Lock() {
	t.slot <- struct{}{}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (t *Timed) TryLock() bool {
	select {
	case t.slot <- struct{}{}:
		return true
	default:
		return false
	}
}

// LockContext blocks until the lock is acquired or ctx is done.
func (t *Timed) LockContext(ctx context.Context) error {
	select {
	case t.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("lock: %w", ctx.Err())
	}
}

// LockTimeout blocks until the lock is acquired or d elapses. On timeout the
// returned error wraps ErrTimeout.
func (t *Timed) LockTimeout(d time.Duration) error {
	if t.TryLock() {
		return nil
	}

	timer := t.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case t.slot <- struct{}{}:
		return nil
	case <-timer.Chan():
		return fmt.Errorf("%w after %s", ErrTimeout, d)
	}
}

// Unlock releases the lock. It panics if t is not locked.
func (t *Timed) Unlock() {
	select {
	case <-t.slot:
	default:
		panic("lockers: unlock of unlocked Timed")
	}
}
