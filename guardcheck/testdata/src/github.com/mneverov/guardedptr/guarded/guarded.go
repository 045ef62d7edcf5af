// Package guarded mirrors the API of the real package for analyzer tests.
package guarded

import "sync"

type Ptr[T any] struct {
	mu   sync.Mutex
	elem *T
}

func New[T any](elem *T) *Ptr[T] { return &Ptr[T]{elem: elem} }

func (p *Ptr[T]) Lock() { p.mu.Lock() }
func (p *Ptr[T]) Unlock() { p.mu.Unlock() }
func (p *Ptr[T]) Get() *T { return p.elem }
func (p *Ptr[T]) Do(fn func(*T)) { fn(p.elem) }
func (p *Ptr[T]) Access() *Guard[T] { return &Guard[T]{elem: p.elem} }
func (p *Ptr[T]) Move() *Ptr[T] { return &Ptr[T]{elem: p.elem} }

func Call[T, R any](p *Ptr[T], fn func(*T) R) R { return fn(p.elem) }

type Guard[T any] struct {
	elem *T
}

func (g *Guard[T]) Elem() *T { return g.elem }
func (g *Guard[T]) Release() {}
func (g *Guard[T]) Move() *Guard[T] { return &Guard[T]{elem: g.elem} }

type IndexGuard[E any] struct {
	elems []E
}

func Index[E any](p *Ptr[[]E]) *IndexGuard[E] { return &IndexGuard[E]{elems: *p.elem} }

func (g *IndexGuard[E]) At(i int) *E { return &g.elems[i] }
func (g *IndexGuard[E]) Release() {}
func (g *IndexGuard[E]) Move() *IndexGuard[E] { return &IndexGuard[E]{elems: g.elems} }
