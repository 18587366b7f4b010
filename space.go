package interp

import "sync"

// Space provides scratch buffers for curve evaluation. Every call to
// Workspace must return a buffer of length Len that no other in-flight
// evaluation holds, so a curve sharing one Space stays safe to evaluate from
// several goroutines. Buffer contents on entry are unspecified; kernels
// write every slot before reading it.
type Space[T any] interface {
	Len() int
	Workspace() []T
	Release(buf []T)
}

// DynSpace allocates a fresh buffer per evaluation.
type DynSpace[T any] struct {
	size int
}

var _ Space[Float] = DynSpace[Float]{}

// NewDynSpace returns a Space allocating buffers of the given length.
func NewDynSpace[T any](size int) DynSpace[T] {
	return DynSpace[T]{size: size}
}

func (s DynSpace[T]) Len() int { return s.size }

func (s DynSpace[T]) Workspace() []T { return make([]T, s.size) }

func (s DynSpace[T]) Release(buf []T) {}

// PooledSpace recycles buffers through a sync.Pool, keeping steady-state
// evaluation allocation-free.
type PooledSpace[T any] struct {
	size int
	pool *sync.Pool
}

var _ Space[Float] = (*PooledSpace[Float])(nil)

// NewPooledSpace returns a Space recycling buffers of the given length.
func NewPooledSpace[T any](size int) *PooledSpace[T] {
	return &PooledSpace[T]{
		size: size,
		pool: &sync.Pool{
			New: func() any { return make([]T, size) },
		},
	}
}

func (s *PooledSpace[T]) Len() int { return s.size }

func (s *PooledSpace[T]) Workspace() []T { return s.pool.Get().([]T) }

func (s *PooledSpace[T]) Release(buf []T) { s.pool.Put(buf) }
