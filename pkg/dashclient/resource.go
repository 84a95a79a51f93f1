package dashclient

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
)

// envelope mirrors the server's response wrapper.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// TypedSnapshot is Snapshot with the data decoded to T.
type TypedSnapshot[T any] struct {
	Key     Key
	Status  Status
	Data    T
	HasData bool
	Err     error
}

func (s TypedSnapshot[T]) IsLoading() bool {
	return s.Status == StatusLoading && !s.HasData
}

func (s TypedSnapshot[T]) IsError() bool {
	return s.Status == StatusError
}

// Resource binds one API collection to the cache: list and detail reads go
// through cache keys rooted at the collection path, writes go straight to
// the server and invalidate that root.
type Resource[T any] struct {
	client *Client
	cache  *Cache
	path   string // e.g. "/api/students"
}

func NewResource[T any](client *Client, cache *Cache, path string) *Resource[T] {
	return &Resource[T]{client: client, cache: cache, path: path}
}

func (r *Resource[T]) Path() string { return r.path }

// ListKey is the cache key for the unfiltered collection. Filtered views
// append the query values so they invalidate together with the root.
func (r *Resource[T]) ListKey(filters ...any) Key {
	return append(K(r.path), filters...)
}

func (r *Resource[T]) DetailKey(id int64) Key {
	return K(r.path, id)
}

// SubscribeList attaches onChange to the collection (optionally filtered;
// filter segments must mirror the query sent to the server) and returns
// the current typed snapshot.
func (r *Resource[T]) SubscribeList(query string, onChange func(TypedSnapshot[[]T]), filters ...any) (TypedSnapshot[[]T], *Subscription) {
	key := r.ListKey(filters...)
	url := r.path
	if query != "" {
		url += "?" + query
	}
	fetch := func(ctx context.Context) (any, error) {
		var env envelope[[]T]
		if err := r.client.Get(ctx, url, &env); err != nil {
			return nil, err
		}
		return env.Data, nil
	}
	snap, sub := r.cache.Subscribe(key, fetch, func(s Snapshot) {
		if onChange != nil {
			onChange(decodeList[T](s))
		}
	})
	return decodeList[T](snap), sub
}

// SubscribeDetail attaches onChange to a single record by id.
func (r *Resource[T]) SubscribeDetail(id int64, onChange func(TypedSnapshot[T])) (TypedSnapshot[T], *Subscription) {
	url := fmt.Sprintf("%s/%d", r.path, id)
	fetch := func(ctx context.Context) (any, error) {
		var env envelope[T]
		if err := r.client.Get(ctx, url, &env); err != nil {
			return nil, err
		}
		return env.Data, nil
	}
	snap, sub := r.cache.Subscribe(r.DetailKey(id), fetch, func(s Snapshot) {
		if onChange != nil {
			onChange(decodeOne[T](s))
		}
	})
	return decodeOne[T](snap), sub
}

// Invalidate marks the whole collection stale, detail entries included.
func (r *Resource[T]) Invalidate() {
	r.cache.InvalidatePrefix(K(r.path))
}

// Create POSTs the payload and invalidates the collection on success.
func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	var env envelope[T]
	if err := r.client.Post(ctx, r.path, payload, &env); err != nil {
		var zero T
		return zero, err
	}
	r.Invalidate()
	return env.Data, nil
}

// Update PUTs the payload to the record and invalidates the collection.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	var env envelope[T]
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%d", r.path, id), payload, &env); err != nil {
		var zero T
		return zero, err
	}
	r.Invalidate()
	return env.Data, nil
}

// Delete removes the record and invalidates the collection.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", r.path, id)); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func decodeList[T any](s Snapshot) TypedSnapshot[[]T] {
	out := TypedSnapshot[[]T]{Key: s.Key, Status: s.Status, HasData: s.HasData, Err: s.Err}
	if s.HasData {
		out.Data = coerce[[]T](s.Data)
	}
	return out
}

func decodeOne[T any](s Snapshot) TypedSnapshot[T] {
	out := TypedSnapshot[T]{Key: s.Key, Status: s.Status, HasData: s.HasData, Err: s.Err}
	if s.HasData {
		out.Data = coerce[T](s.Data)
	}
	return out
}

// coerce recovers T from the cache's untyped slot. The fetchers above
// always store the exact type, so the assertion is the hot path; the
// re-marshal fallback covers values injected by other writers.
func coerce[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	var t T
	if b, err := sonic.Marshal(v); err == nil {
		_ = sonic.Unmarshal(b, &t)
	}
	return t
}
