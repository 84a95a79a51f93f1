package dashclient

import (
	"context"
	"sync/atomic"
)

// MutationFn performs the write itself, typically a POST/PUT/DELETE through
// a Client.
type MutationFn[In, Out any] func(ctx context.Context, in In) (Out, error)

// Mutation wraps a write operation with pending/error flags and lifecycle
// callbacks. Zero value is not usable; build with NewMutation.
//
// The usual wiring invalidates the affected list and detail keys from
// OnSuccess, so dependent screens refetch after the write lands:
//
//	m := dashclient.NewMutation(cache, createStudent).
//		OnSuccess(func(s Student) { cache.InvalidatePrefix(dashclient.K(PathStudents)) })
type Mutation[In, Out any] struct {
	cache *Cache
	fn    MutationFn[In, Out]

	pending atomic.Bool
	errored atomic.Bool

	onSuccess func(Out)
	onError   func(error)
	onSettled func()
}

func NewMutation[In, Out any](cache *Cache, fn MutationFn[In, Out]) *Mutation[In, Out] {
	return &Mutation[In, Out]{cache: cache, fn: fn}
}

// OnSuccess runs after the write succeeds, before OnSettled. Cache
// invalidations and form resets belong here.
func (m *Mutation[In, Out]) OnSuccess(fn func(Out)) *Mutation[In, Out] {
	m.onSuccess = fn
	return m
}

func (m *Mutation[In, Out]) OnError(fn func(error)) *Mutation[In, Out] {
	m.onError = fn
	return m
}

// OnSettled runs after OnSuccess or OnError, on both outcomes.
func (m *Mutation[In, Out]) OnSettled(fn func()) *Mutation[In, Out] {
	m.onSettled = fn
	return m
}

func (m *Mutation[In, Out]) IsPending() bool { return m.pending.Load() }
func (m *Mutation[In, Out]) IsError() bool   { return m.errored.Load() }

// Mutate runs the write synchronously: pending is set for the duration,
// callbacks fire in order (success or error, then settled), and the
// pending flag clears before returning. No retries are attempted; the
// error is surfaced to OnError and returned as-is.
func (m *Mutation[In, Out]) Mutate(ctx context.Context, in In) (Out, error) {
	m.pending.Store(true)
	m.errored.Store(false)

	out, err := m.fn(ctx, in)
	if err != nil {
		m.errored.Store(true)
		if m.onError != nil {
			m.onError(err)
		}
	} else if m.onSuccess != nil {
		m.onSuccess(out)
	}
	if m.onSettled != nil {
		m.onSettled()
	}
	m.pending.Store(false)
	return out, err
}

// InvalidateKeys is a convenience for the common OnSuccess body: invalidate
// each key (exact match plus descendants) on the mutation's cache.
func (m *Mutation[In, Out]) InvalidateKeys(keys ...Key) {
	for _, k := range keys {
		m.cache.InvalidatePrefix(k)
	}
}
