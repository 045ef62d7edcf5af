package guarded

import "sync"

// Deleter disposes an owned element. It runs at most once per element.
type Deleter[T any] func(*T)

// Option configures a Ptr at construction.
type Option[T any] func(*Ptr[T])

// WithDeleter sets the disposal strategy used by Close, Reset and MoveFrom.
func WithDeleter[T any](d func(*T)) Option[T] {
	return func(p *Ptr[T]) {
		p.del = d
	}
}

// WithMutex sets the mutex primitive. newLocker is kept so that pointers
// move-constructed from this one get a fresh mutex of the same kind.
// It must return a new unlocked locker on every call.
func WithMutex[T any, L sync.Locker](newLocker func() L) Option[T] {
	return func(p *Ptr[T]) {
		p.newLocker = func() sync.Locker { return newLocker() }
		p.lk = p.newLocker()
	}
}
