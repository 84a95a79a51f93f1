package dashclient

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func waitSnap(t *testing.T, ch <-chan Snapshot, cond func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if cond(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func staticFetcher(v any, calls *atomic.Int64) Fetcher {
	return func(ctx context.Context) (any, error) {
		if calls != nil {
			calls.Add(1)
		}
		return v, nil
	}
}

func TestSubscribersShareOneEntry(t *testing.T) {
	c := NewCache()
	var calls atomic.Int64
	key := K("/api/courses")

	ch1 := make(chan Snapshot, 8)
	ch2 := make(chan Snapshot, 8)
	_, s1 := c.Subscribe(key, staticFetcher("payload", &calls), func(s Snapshot) { ch1 <- s })
	defer s1.Unsubscribe()

	got1 := waitSnap(t, ch1, func(s Snapshot) bool { return s.Status == StatusSuccess })

	// second subscriber sees the cached value immediately, no new fetch
	snap2, s2 := c.Subscribe(key, nil, func(s Snapshot) { ch2 <- s })
	defer s2.Unsubscribe()

	if snap2.Status != StatusSuccess || snap2.Data != got1.Data {
		t.Fatalf("second subscriber got %+v, want cached success", snap2)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("fetch calls = %d, want 1", n)
	}
}

func TestConcurrentSubscribesDeduplicate(t *testing.T) {
	c := NewCache()
	var calls atomic.Int64
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}
	key := K("/api/students")

	const n = 16
	chs := make([]chan Snapshot, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		chs[i] = make(chan Snapshot, 8)
		ch := chs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Subscribe(key, fetch, func(s Snapshot) { ch <- s })
		}()
	}
	wg.Wait()
	close(release)

	for i := 0; i < n; i++ {
		waitSnap(t, chs[i], func(s Snapshot) bool { return s.Status == StatusSuccess })
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}
}

func TestInvalidateRefetchesAndKeepsStaleData(t *testing.T) {
	c := NewCache()
	var val atomic.Value
	val.Store("v1")
	fetch := func(ctx context.Context) (any, error) { return val.Load(), nil }
	key := K("/api/fees")

	ch := make(chan Snapshot, 8)
	_, sub := c.Subscribe(key, fetch, func(s Snapshot) { ch <- s })
	defer sub.Unsubscribe()
	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess && s.Data == "v1" })

	val.Store("v2")
	c.Invalidate(key)

	// during the refetch the previous data stays visible and the entry
	// never reports loading
	refetching := waitSnap(t, ch, func(s Snapshot) bool { return true })
	if refetching.IsLoading() {
		t.Errorf("refetch must not report loading when data exists: %+v", refetching)
	}
	if refetching.HasData && refetching.Data != "v1" && refetching.Data != "v2" {
		t.Errorf("unexpected data during refetch: %v", refetching.Data)
	}

	final := waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess && s.Data == "v2" })
	if !final.HasData {
		t.Fatalf("final snapshot lost data: %+v", final)
	}
}

func TestInvalidateWithoutSubscribersDefersRefetch(t *testing.T) {
	c := NewCache()
	var calls atomic.Int64
	fetch := func(ctx context.Context) (any, error) { return calls.Add(1), nil }
	key := K("/api/exams")

	ch := make(chan Snapshot, 8)
	_, sub := c.Subscribe(key, fetch, func(s Snapshot) { ch <- s })
	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess && s.Data == int64(1) })
	sub.Unsubscribe()

	c.Invalidate(key)
	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Fatalf("fetch calls after orphan invalidation = %d, want 1", n)
	}

	// the resubscribe first sees the stale value, then the deferred
	// refetch lands with the second fetch's result
	ch2 := make(chan Snapshot, 8)
	_, sub2 := c.Subscribe(key, nil, func(s Snapshot) { ch2 <- s })
	defer sub2.Unsubscribe()
	waitSnap(t, ch2, func(s Snapshot) bool { return s.Status == StatusSuccess && s.Data == int64(2) })
	if n := calls.Load(); n != 2 {
		t.Fatalf("fetch calls after resubscribe = %d, want 2", n)
	}
}

func TestInvalidationsDuringFetchCoalesce(t *testing.T) {
	c := NewCache()
	var calls atomic.Int64
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		n := calls.Add(1)
		if n == 1 {
			<-release
		}
		return n, nil
	}
	key := K("/api/messages")

	ch := make(chan Snapshot, 16)
	_, sub := c.Subscribe(key, fetch, func(s Snapshot) { ch <- s })
	defer sub.Unsubscribe()

	// three invalidations land while the first fetch is blocked
	c.Invalidate(key)
	c.Invalidate(key)
	c.Invalidate(key)
	close(release)

	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess && s.Data == int64(2) })
	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != 2 {
		t.Fatalf("fetch calls = %d, want 2 (initial + one coalesced refetch)", n)
	}
}

func TestFetchErrorKeepsPreviousData(t *testing.T) {
	c := NewCache()
	var fail atomic.Bool
	boom := errors.New("boom")
	fetch := func(ctx context.Context) (any, error) {
		if fail.Load() {
			return nil, boom
		}
		return "good", nil
	}
	key := K("/api/results")

	ch := make(chan Snapshot, 8)
	_, sub := c.Subscribe(key, fetch, func(s Snapshot) { ch <- s })
	defer sub.Unsubscribe()
	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess })

	fail.Store(true)
	c.Invalidate(key)
	errSnap := waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusError })
	if !errors.Is(errSnap.Err, boom) {
		t.Errorf("Err = %v, want boom", errSnap.Err)
	}
	if !errSnap.HasData || errSnap.Data != "good" {
		t.Errorf("error must not discard previous data: %+v", errSnap)
	}

	// errors do not leak into other keys
	other := c.Get(K("/api/courses"))
	if other.Status != StatusIdle {
		t.Errorf("unrelated key status = %v, want idle", other.Status)
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c := NewCache()
	var batchCalls, studentCalls atomic.Int64

	chB := make(chan Snapshot, 8)
	chD := make(chan Snapshot, 8)
	chS := make(chan Snapshot, 8)
	_, s1 := c.Subscribe(K("/api/batches"), staticFetcher("list", &batchCalls), func(s Snapshot) { chB <- s })
	defer s1.Unsubscribe()
	_, s2 := c.Subscribe(K("/api/batches", int64(5)), staticFetcher("detail", &batchCalls), func(s Snapshot) { chD <- s })
	defer s2.Unsubscribe()
	_, s3 := c.Subscribe(K("/api/students"), staticFetcher("students", &studentCalls), func(s Snapshot) { chS <- s })
	defer s3.Unsubscribe()

	waitSnap(t, chB, func(s Snapshot) bool { return s.Status == StatusSuccess })
	waitSnap(t, chD, func(s Snapshot) bool { return s.Status == StatusSuccess })
	waitSnap(t, chS, func(s Snapshot) bool { return s.Status == StatusSuccess })

	c.InvalidatePrefix(K("/api/batches"))
	waitSnap(t, chB, func(s Snapshot) bool { return s.Status == StatusSuccess })
	waitSnap(t, chD, func(s Snapshot) bool { return s.Status == StatusSuccess })

	time.Sleep(50 * time.Millisecond)
	if n := batchCalls.Load(); n != 4 {
		t.Errorf("batch fetches = %d, want 4 (2 initial + 2 refetch)", n)
	}
	if n := studentCalls.Load(); n != 1 {
		t.Errorf("student fetches = %d, want 1 (untouched)", n)
	}
}

func TestLateResponseFromStaleGenerationDropped(t *testing.T) {
	c := NewCache()
	var calls atomic.Int64
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		n := calls.Add(1)
		if n == 1 {
			close(firstStarted)
			<-release
			return "stale-response", nil
		}
		return "fresh-response", nil
	}
	key := K("/api/enrollments")

	ch := make(chan Snapshot, 16)
	_, sub := c.Subscribe(key, fetch, func(s Snapshot) { ch <- s })
	defer sub.Unsubscribe()

	<-firstStarted
	c.Invalidate(key) // bumps the generation past the in-flight fetch
	close(release)

	final := waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess })
	if final.Data != "fresh-response" {
		t.Fatalf("Data = %v, want fresh-response (stale generation must be dropped)", final.Data)
	}
}

func TestResetClearsEverything(t *testing.T) {
	c := NewCache()
	ch := make(chan Snapshot, 8)
	_, sub := c.Subscribe(K("/api/teachers"), staticFetcher("x", nil), func(s Snapshot) { ch <- s })
	defer sub.Unsubscribe()
	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess })

	c.Reset()
	if got := c.Get(K("/api/teachers")); got.Status != StatusIdle || got.HasData {
		t.Fatalf("after Reset, Get = %+v, want empty idle", got)
	}
}
