package guarded

// Make copies v to the heap and returns a Ptr owning it.
func Make[T any](v T, opts ...Option[T]) *Ptr[T] {
	return New(&v, opts...)
}

// MakeSlice returns a Ptr owning a slice of n zero values. It panics if n is
// negative.
func MakeSlice[E any](n int, opts ...Option[[]E]) *Ptr[[]E] {
	s := make([]E, n)
	return New(&s, opts...)
}
