package dashclient

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// Status is the lifecycle state of a cache entry.
type Status uint8

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Fetcher loads the value for a key from the source of truth.
type Fetcher func(ctx context.Context) (any, error)

// Snapshot is an immutable view of one entry, handed to subscribers on
// every transition.
type Snapshot struct {
	Key     Key
	Status  Status
	Data    any
	HasData bool
	Err     error
}

// IsLoading is true only when there is no previous data to show: a
// background refetch of an entry that already has data never reports
// loading, so screens keep rendering the stale value.
func (s Snapshot) IsLoading() bool {
	return s.Status == StatusLoading && !s.HasData
}

func (s Snapshot) IsError() bool {
	return s.Status == StatusError
}

type subscriberFn func(Snapshot)

type entry struct {
	mu sync.Mutex

	key     Key
	fetcher Fetcher

	status  Status
	data    any
	hasData bool
	err     error

	stale    bool
	fetching bool
	gen      uint64

	subs    map[int64]subscriberFn
	nextSub int64
}

func newEntry(key Key) *entry {
	return &entry{
		key:  key,
		subs: map[int64]subscriberFn{},
	}
}

func (e *entry) snapshotLocked() Snapshot {
	return Snapshot{
		Key:     e.key,
		Status:  e.status,
		Data:    e.data,
		HasData: e.hasData,
		Err:     e.err,
	}
}

func (e *entry) subscribersLocked() []subscriberFn {
	out := make([]subscriberFn, 0, len(e.subs))
	for _, fn := range e.subs {
		out = append(out, fn)
	}
	return out
}

// Cache is the process-wide query cache. Entries are created lazily on
// first subscription and never evicted; invalidation marks them stale and
// refetches while subscribers are attached.
type Cache struct {
	ctx     context.Context
	log     *zap.Logger
	entries *xsync.MapOf[string, *entry]
}

type CacheOption func(*Cache)

func WithCacheLogger(log *zap.Logger) CacheOption {
	return func(c *Cache) { c.log = log }
}

// WithBaseContext sets the context background refetches run under.
func WithBaseContext(ctx context.Context) CacheOption {
	return func(c *Cache) { c.ctx = ctx }
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		ctx:     context.Background(),
		log:     zap.NewNop(),
		entries: xsync.NewMapOf[string, *entry](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset drops every entry and subscriber. Test isolation hook.
func (c *Cache) Reset() {
	c.entries.Clear()
}

// Subscription is a live registration against one key.
type Subscription struct {
	entry *entry
	id    int64
}

// Unsubscribe detaches the callback. Late fetch results will still settle
// into the entry, but this subscriber is never called again.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.entry == nil {
		return
	}
	s.entry.mu.Lock()
	delete(s.entry.subs, s.id)
	s.entry.mu.Unlock()
	s.entry = nil
}

// Subscribe attaches onChange to key and returns the current snapshot. The
// entry is created on first use; a fetch starts when the entry is idle or
// stale and none is already in flight. N simultaneous first subscriptions
// produce one fetch.
func (c *Cache) Subscribe(key Key, fetcher Fetcher, onChange func(Snapshot)) (Snapshot, *Subscription) {
	e := c.entryFor(key)

	e.mu.Lock()
	if fetcher != nil {
		e.fetcher = fetcher
	}
	id := e.nextSub
	e.nextSub++
	if onChange != nil {
		e.subs[id] = onChange
	}
	sub := &Subscription{entry: e, id: id}

	var snap Snapshot
	if (e.status == StatusIdle || e.stale) && !e.fetching && e.fetcher != nil {
		snap = c.startFetchLocked(e) // releases the lock
	} else {
		snap = e.snapshotLocked()
		e.mu.Unlock()
	}
	return snap, sub
}

// Get returns the current snapshot without subscribing.
func (c *Cache) Get(key Key) Snapshot {
	if e, ok := c.entries.Load(key.String()); ok {
		e.mu.Lock()
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap
	}
	return Snapshot{Key: key, Status: StatusIdle}
}

// Invalidate marks the entry for key stale. With at least one subscriber a
// refetch starts immediately; with none it is deferred to the next
// subscription. Repeated invalidations while a fetch is in flight coalesce
// into a single follow-up refetch.
func (c *Cache) Invalidate(key Key) {
	if e, ok := c.entries.Load(key.String()); ok {
		c.invalidateEntry(e)
	}
}

// InvalidatePrefix invalidates every entry whose key begins with prefix,
// so K("/api/batches") hits K("/api/batches", 5) but not
// K("/api/students").
func (c *Cache) InvalidatePrefix(prefix Key) {
	c.entries.Range(func(_ string, e *entry) bool {
		if e.key.HasPrefix(prefix) {
			c.invalidateEntry(e)
		}
		return true
	})
}

func (c *Cache) entryFor(key Key) *entry {
	e, _ := c.entries.LoadOrCompute(key.String(), func() *entry {
		return newEntry(key)
	})
	return e
}

func (c *Cache) invalidateEntry(e *entry) {
	e.mu.Lock()
	e.gen++
	e.stale = true
	if len(e.subs) == 0 || e.fetching || e.fetcher == nil {
		// no subscribers: defer to next Subscribe.
		// fetch in flight: its result is dropped on completion (its
		// generation lost) and one follow-up refetch starts then.
		e.mu.Unlock()
		return
	}
	c.startFetchLocked(e) // releases the lock
}

// startFetchLocked begins a fetch for e and returns the snapshot at fetch
// start. The caller must hold e's lock; the lock is released before this
// returns.
func (c *Cache) startFetchLocked(e *entry) Snapshot {
	e.fetching = true
	e.stale = false
	gen := e.gen
	fetcher := e.fetcher
	if !e.hasData {
		e.status = StatusLoading
	}
	snap := e.snapshotLocked()
	subs := e.subscribersLocked()
	e.mu.Unlock()

	notify(subs, snap)

	go func() {
		data, err := fetcher(c.ctx)

		e.mu.Lock()
		e.fetching = false
		if gen != e.gen {
			// invalidated while in flight: this response may predate the
			// write that invalidated us, so drop it
			if len(e.subs) > 0 {
				c.startFetchLocked(e) // releases the lock
				return
			}
			e.stale = true
			e.mu.Unlock()
			return
		}
		if err != nil {
			// keep any previous data; only the status and error change
			e.status = StatusError
			e.err = err
			c.log.Warn("fetch failed",
				zap.String("key", e.key.String()),
				zap.Error(err))
		} else {
			e.status = StatusSuccess
			e.data = data
			e.hasData = true
			e.err = nil
		}
		snap := e.snapshotLocked()
		subs := e.subscribersLocked()
		e.mu.Unlock()

		notify(subs, snap)
	}()
	return snap
}

func notify(subs []subscriberFn, snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
