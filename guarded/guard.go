package guarded

import (
	"sync"
	"sync/atomic"
)

// hold is a lock owned by a guard. It is released at most once.
type hold struct {
	l    sync.Locker
	held atomic.Bool
}

func (h *hold) acquire(l sync.Locker) {
	l.Lock()
	h.adopt(l)
}

func (h *hold) adopt(l sync.Locker) {
	h.l = l
	h.held.Store(true)
}

func (h *hold) release() {
	if h.held.CompareAndSwap(true, false) {
		h.l.Unlock()
	}
}

// moveTo hands the lock over to dst. The receiver no longer unlocks.
func (h *hold) moveTo(dst *hold) {
	if !h.held.CompareAndSwap(true, false) {
		panic("guarded: move of a released guard")
	}
	dst.adopt(h.l)
}

// Guard exposes the element of a locked Ptr. The lock is held until Release.
// A Guard must not be copied; use Move to pass the lock on.
type Guard[T any] struct {
	_    noCopy
	hold hold
	elem *T
}

// Elem returns the guarded element. It returns nil after Release or Move.
func (g *Guard[T]) Elem() *T {
	return g.elem
}

// Release unlocks the pointer. Calling it more than once has no effect.
func (g *Guard[T]) Release() {
	g.elem = nil
	g.hold.release()
}

// Move returns a new Guard that owns the lock and leaves g released. It
// panics if g was already released or moved.
func (g *Guard[T]) Move() *Guard[T] {
	n := &Guard[T]{elem: g.elem}
	g.hold.moveTo(&n.hold)
	g.elem = nil
	return n
}

// IndexGuard exposes the elements of a locked slice Ptr.
// An IndexGuard must not be copied; use Move to pass the lock on.
type IndexGuard[E any] struct {
	_     noCopy
	hold  hold
	elems []E
}

// Index locks p and returns an IndexGuard over its slice. On an empty
// pointer the guard has length zero.
func Index[E any](p *Ptr[[]E]) *IndexGuard[E] {
	g := &IndexGuard[E]{}
	g.hold.acquire(p.locker())
	if p.elem != nil {
		g.elems = *p.elem
	}
	return g
}

// At returns a reference to the element at offset i. The reference is only
// protected until the guard is released: do not keep it past that point.
func (g *IndexGuard[E]) At(i int) *E {
	return &g.elems[i]
}

// Len returns the number of elements.
func (g *IndexGuard[E]) Len() int {
	return len(g.elems)
}

// Release unlocks the pointer. Calling it more than once has no effect.
func (g *IndexGuard[E]) Release() {
	g.elems = nil
	g.hold.release()
}

// Move returns a new IndexGuard that owns the lock and leaves g released.
func (g *IndexGuard[E]) Move() *IndexGuard[E] {
	n := &IndexGuard[E]{elems: g.elems}
	g.hold.moveTo(&n.hold)
	g.elems = nil
	return n
}

// Load returns a copy of the element at offset i, read under the lock.
func Load[E any](p *Ptr[[]E], i int) E {
	g := Index(p)
	defer g.Release()
	return *g.At(i)
}

// Store sets the element at offset i under the lock.
func Store[E any](p *Ptr[[]E], i int, v E) {
	g := Index(p)
	defer g.Release()
	*g.At(i) = v
}
