package dashclient

import (
	"context"
	"errors"
	"testing"
)

func TestMutationCallbackOrderOnSuccess(t *testing.T) {
	c := NewCache()
	var order []string
	m := NewMutation(c, func(ctx context.Context, in string) (string, error) {
		order = append(order, "fn")
		return in + "-done", nil
	}).
		OnSuccess(func(out string) { order = append(order, "success:"+out) }).
		OnError(func(err error) { order = append(order, "error") }).
		OnSettled(func() { order = append(order, "settled") })

	out, err := m.Mutate(context.Background(), "create")
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if out != "create-done" {
		t.Errorf("out = %q", out)
	}
	want := []string{"fn", "success:create-done", "settled"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if m.IsPending() || m.IsError() {
		t.Errorf("flags after success: pending=%v error=%v", m.IsPending(), m.IsError())
	}
}

func TestMutationErrorPath(t *testing.T) {
	c := NewCache()
	boom := errors.New("duplicate email")
	var gotErr error
	settled := false
	m := NewMutation(c, func(ctx context.Context, in int) (int, error) {
		return 0, boom
	}).
		OnSuccess(func(int) { t.Error("OnSuccess must not fire on error") }).
		OnError(func(err error) { gotErr = err }).
		OnSettled(func() { settled = true })

	_, err := m.Mutate(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !errors.Is(gotErr, boom) {
		t.Errorf("OnError got %v", gotErr)
	}
	if !settled {
		t.Errorf("OnSettled must fire on error")
	}
	if !m.IsError() {
		t.Errorf("IsError = false after failed mutation")
	}
	if m.IsPending() {
		t.Errorf("IsPending must clear after Mutate returns")
	}
}

func TestMutationPendingDuringRun(t *testing.T) {
	c := NewCache()
	var m *Mutation[struct{}, struct{}]
	m = NewMutation(c, func(ctx context.Context, _ struct{}) (struct{}, error) {
		if !m.IsPending() {
			t.Error("IsPending = false while mutation fn runs")
		}
		return struct{}{}, nil
	})
	m.Mutate(context.Background(), struct{}{})
}

func TestMutationInvalidatesKeysOnSuccess(t *testing.T) {
	c := NewCache()
	ch := make(chan Snapshot, 8)
	_, sub := c.Subscribe(K("/api/students"), staticFetcher("list", nil), func(s Snapshot) { ch <- s })
	defer sub.Unsubscribe()
	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess })

	var m *Mutation[string, string]
	m = NewMutation(c, func(ctx context.Context, in string) (string, error) {
		return in, nil
	}).OnSuccess(func(string) {
		m.InvalidateKeys(K("/api/students"))
	})

	if _, err := m.Mutate(context.Background(), "new student"); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	// the refetch scheduled by the invalidation settles
	waitSnap(t, ch, func(s Snapshot) bool { return s.Status == StatusSuccess })
}
