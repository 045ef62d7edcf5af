package guarded

import "sync"

// Ptr owns at most one element of type T and serializes every access to it
// through its mutex. The zero value is an empty pointer guarded by a
// sync.Mutex.
//
// A Ptr must not be copied after first use.
type Ptr[T any] struct {
	_ noCopy

	mu        sync.Mutex
	lk        sync.Locker // overrides mu when set by WithMutex
	newLocker func() sync.Locker

	// elem is protected by the active locker.
	elem *T
	del  Deleter[T]
}

// New returns a Ptr that takes ownership of elem. A nil elem yields an empty
// pointer. elem must not be owned by anything else.
func New[T any](elem *T, opts ...Option[T]) *Ptr[T] {
	p := &Ptr[T]{elem: elem}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Ptr[T]) locker() sync.Locker {
	if p.lk != nil {
		return p.lk
	}
	return &p.mu
}

// Lock blocks until the pointer's mutex is acquired. Use it together with Get
// and Unlock to make a sequence of operations atomic.
func (p *Ptr[T]) Lock() {
	p.locker().Lock()
}

// Unlock releases the mutex. It must be called by the holder of the lock.
func (p *Ptr[T]) Unlock() {
	p.locker().Unlock()
}

// Get returns the owned element without locking. The result is only safe to
// use while the caller holds Lock.
func (p *Ptr[T]) Get() *T {
	return p.elem
}

// Access locks the pointer and returns a Guard exposing the element. The lock
// is held until the guard is released. On an empty pointer the guard's Elem
// is nil.
func (p *Ptr[T]) Access() *Guard[T] {
	g := &Guard[T]{}
	g.hold.acquire(p.locker())
	g.elem = p.elem
	return g
}

// Do calls fn with the element while holding the lock. The lock is released
// when fn returns or panics.
func (p *Ptr[T]) Do(fn func(*T)) {
	p.Lock()
	defer p.Unlock()
	fn(p.elem)
}

// Call is Do for callbacks that return a value.
func Call[T, R any](p *Ptr[T], fn func(*T) R) R {
	p.Lock()
	defer p.Unlock()
	return fn(p.elem)
}

// Reset replaces the owned element with elem and disposes the previous one.
// Resetting to the element already owned is a no-op.
func (p *Ptr[T]) Reset(elem *T) {
	p.Lock()
	old, del := p.elem, p.del
	p.elem = elem
	p.Unlock()

	if old != elem {
		dispose(old, del)
	}
}

// Close disposes the owned element and leaves p empty. It does not lock:
// no other goroutine may use p concurrently with Close.
func (p *Ptr[T]) Close() {
	old := p.elem
	p.elem = nil
	dispose(old, p.del)
}

func dispose[T any](elem *T, del Deleter[T]) {
	if elem == nil || del == nil {
		return
	}
	del(elem)
}

// noCopy may be added to structs which must not be copied after first use.
// See go vet -copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
