// Package appctx provides concurrency primitives shared by application
// services.
package appctx

import "sync"

// SafeRef guards a value behind a sync.RWMutex. Readers get copies;
// writers go through Update or Commit and are serialized.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef initialized with val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the current value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Update mutates the value in place under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}

// Commit runs fn against a copy of the value under the write lock and
// stores the copy only when fn returns a nil error. A failed fn leaves the
// value exactly as it was, whatever it changed on the copy.
func Commit[T, R any](r *SafeRef[T], fn func(*T) (R, error)) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.val
	res, err := fn(&next)
	if err != nil {
		var zero R
		return zero, err
	}
	r.val = next
	return res, nil
}
