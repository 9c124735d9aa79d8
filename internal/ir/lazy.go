package ir

import "sync"

// lazy is a cache cell computed on first read. Later reads return the same
// value, or the same error, without calling compute again. Concurrent first
// reads block until the single computation finishes.
type lazy[T any] func() (T, error)

func newLazy[T any](compute func() (T, error)) lazy[T] {
	return sync.OnceValues(compute)
}
