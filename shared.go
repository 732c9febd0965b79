package csvmap

import "sync"

// Shared is a thin, reference-counted-by-GC handle over a mutex-protected
// value of arbitrary type, passed to every worker in a ParallelScan. Go's
// garbage collector keeps the underlying value and mutex alive as long as
// any Shared handle referencing them exists, giving the same sharing
// semantics as a reference-counted pointer without manual bookkeeping.
//
// There is no deadlock detection; lock ordering across multiple Shared
// values is the caller's responsibility.
type Shared[T any] struct {
	mu    *sync.Mutex
	value *T
}

// NewShared constructs a Shared handle wrapping a copy of initial.
func NewShared[T any](initial T) Shared[T] {
	v := initial
	return Shared[T]{mu: &sync.Mutex{}, value: &v}
}

// NewSharedDefault constructs a Shared handle wrapping T's zero value.
func NewSharedDefault[T any]() Shared[T] {
	var zero T
	return NewShared(zero)
}

// Lock acquires the mutex, blocking until it is available, and returns a
// pointer to the guarded value for the caller to read or mutate. The
// caller must call Unlock when done.
func (s Shared[T]) Lock() *T {
	s.mu.Lock()
	return s.value
}

// Unlock releases the mutex acquired by Lock.
func (s Shared[T]) Unlock() {
	s.mu.Unlock()
}

// Handle returns a copy of this Shared value; since Shared already holds
// only pointers, the copy refers to the same underlying value and mutex
// and is safe to pass to another goroutine.
func (s Shared[T]) Handle() Shared[T] {
	return s
}
