package guarded

import "unsafe"

// Move transfers ownership of the element and its deleter to a new Ptr and
// leaves p empty. The new pointer gets a fresh mutex of the same kind.
func (p *Ptr[T]) Move() *Ptr[T] {
	dst := &Ptr[T]{newLocker: p.newLocker}
	if p.newLocker != nil {
		dst.lk = p.newLocker()
	}

	unlock := lockPair(p, dst)
	dst.elem, dst.del = p.elem, p.del
	p.elem = nil
	unlock()

	return dst
}

// MoveFrom transfers ownership from src to p and leaves src empty. The
// element p owned before is disposed with p's previous deleter. Moving a
// pointer into itself does nothing.
func (p *Ptr[T]) MoveFrom(src *Ptr[T]) {
	if p == src {
		return
	}

	unlock := lockPair(p, src)
	old, oldDel := p.elem, p.del
	p.elem, p.del = src.elem, src.del
	src.elem = nil
	unlock()

	dispose(old, oldDel)
}

// lockPair locks both pointers in address order so that two goroutines
// moving a and b into each other cannot wait on one another.
func lockPair[T any](a, b *Ptr[T]) (unlock func()) {
	first, second := a.locker(), b.locker()
	if uintptr(unsafe.Pointer(a)) > uintptr(unsafe.Pointer(b)) {
		first, second = second, first
	}

	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
