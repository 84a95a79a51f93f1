package dashclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

// fakeBackend is an in-memory stand-in for the API: one mutable collection
// served with the real response envelope.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]map[string]any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1, items: map[int64]map[string]any{}}
}

func (b *fakeBackend) handler(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		rest := strings.TrimPrefix(r.URL.Path, collection)
		rest = strings.TrimPrefix(rest, "/")

		switch {
		case r.Method == http.MethodGet && rest == "":
			list := make([]map[string]any, 0, len(b.items))
			for id := int64(1); id < b.nextID; id++ {
				if it, ok := b.items[id]; ok {
					list = append(list, it)
				}
			}
			writeEnvelope(w, http.StatusOK, list)
		case r.Method == http.MethodPost && rest == "":
			var body map[string]any
			sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body)
			body["id"] = b.nextID
			b.items[b.nextID] = body
			b.nextID++
			writeEnvelope(w, http.StatusCreated, body)
		default:
			id, _ := strconv.ParseInt(rest, 10, 64)
			it, ok := b.items[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"success":false,"message":"record not found","error_code":"NOT_FOUND"}`))
				return
			}
			switch r.Method {
			case http.MethodGet:
				writeEnvelope(w, http.StatusOK, it)
			case http.MethodPut:
				var body map[string]any
				sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body)
				for k, v := range body {
					it[k] = v
				}
				writeEnvelope(w, http.StatusOK, it)
			case http.MethodDelete:
				delete(b.items, id)
				writeEnvelope(w, http.StatusOK, nil)
			}
		}
	}
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	b, _ := sonic.Marshal(map[string]any{"success": true, "message": "ok", "data": data})
	w.Write(b)
}

func waitTyped[T any](t *testing.T, ch <-chan TypedSnapshot[T], cond func(TypedSnapshot[T]) bool) TypedSnapshot[T] {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if cond(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for typed snapshot")
		}
	}
}

func newTestAPI(t *testing.T, b *fakeBackend, collections ...string) *API {
	t.Helper()
	mux := http.NewServeMux()
	for _, c := range collections {
		mux.HandleFunc(c, b.handler(c))
		mux.HandleFunc(c+"/", b.handler(c))
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewAPI(NewClient(srv.URL), NewCache())
}

func TestCreateStudentRefreshesList(t *testing.T) {
	backend := newFakeBackend()
	api := newTestAPI(t, backend, PathStudents)

	ch := make(chan TypedSnapshot[[]Student], 8)
	snap, sub := api.Students.SubscribeList("", func(s TypedSnapshot[[]Student]) { ch <- s })
	defer sub.Unsubscribe()
	if !snap.IsLoading() {
		t.Fatalf("first subscription should report loading, got %+v", snap)
	}
	waitTyped(t, ch, func(s TypedSnapshot[[]Student]) bool {
		return s.Status == StatusSuccess && len(s.Data) == 0
	})

	created, err := api.Students.Create(context.Background(), map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"phone":     "555-0100",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.FirstName != "Ada" {
		t.Fatalf("created = %+v", created)
	}

	// list refetches via invalidation and now contains the new record
	got := waitTyped(t, ch, func(s TypedSnapshot[[]Student]) bool {
		return s.Status == StatusSuccess && len(s.Data) == 1
	})
	if got.Data[0].FullName() != "Ada Lovelace" {
		t.Fatalf("list after create = %+v", got.Data)
	}
}

func TestUpdateAttendanceStatusRoundTrip(t *testing.T) {
	backend := newFakeBackend()
	api := newTestAPI(t, backend, PathAttendance)

	rec, err := api.Attendance.Create(context.Background(), map[string]any{
		"studentId": 2, "batchId": 1, "date": "2026-03-02T00:00:00Z", "status": AttendancePresent,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := api.Attendance.Update(context.Background(), rec.ID, map[string]any{
		"status": AttendanceAbsent,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != AttendanceAbsent {
		t.Fatalf("status after update = %q, want absent", updated.Status)
	}

	ch := make(chan TypedSnapshot[Attendance], 8)
	_, sub := api.Attendance.SubscribeDetail(rec.ID, func(s TypedSnapshot[Attendance]) { ch <- s })
	defer sub.Unsubscribe()
	got := waitTyped(t, ch, func(s TypedSnapshot[Attendance]) bool { return s.Status == StatusSuccess })
	if got.Data.Status != AttendanceAbsent {
		t.Fatalf("detail status = %q, want absent", got.Data.Status)
	}
}

func TestDeleteTeacherRemovesFromList(t *testing.T) {
	backend := newFakeBackend()
	api := newTestAPI(t, backend, PathTeachers)

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		_, err := api.Teachers.Create(ctx, map[string]any{
			"firstName": fmt.Sprintf("T%d", i),
			"lastName":  "Example",
			"email":     fmt.Sprintf("t%d@example.com", i),
			"phone":     "555-0000",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	ch := make(chan TypedSnapshot[[]Teacher], 8)
	_, sub := api.Teachers.SubscribeList("", func(s TypedSnapshot[[]Teacher]) { ch <- s })
	defer sub.Unsubscribe()
	waitTyped(t, ch, func(s TypedSnapshot[[]Teacher]) bool {
		return s.Status == StatusSuccess && len(s.Data) == 3
	})

	if err := api.Teachers.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got := waitTyped(t, ch, func(s TypedSnapshot[[]Teacher]) bool {
		return s.Status == StatusSuccess && len(s.Data) == 2
	})
	for _, tc := range got.Data {
		if tc.ID == 3 {
			t.Fatalf("teacher 3 still present after delete: %+v", got.Data)
		}
	}

	// fetching the deleted record reports not found
	chD := make(chan TypedSnapshot[Teacher], 8)
	_, subD := api.Teachers.SubscribeDetail(3, func(s TypedSnapshot[Teacher]) { chD <- s })
	defer subD.Unsubscribe()
	errSnap := waitTyped(t, chD, func(s TypedSnapshot[Teacher]) bool { return s.Status == StatusError })
	if !IsNotFound(errSnap.Err) {
		t.Fatalf("Err = %v, want not found", errSnap.Err)
	}
}

func TestFilteredListUsesDistinctKeyUnderSamePrefix(t *testing.T) {
	backend := newFakeBackend()
	api := newTestAPI(t, backend, PathEnrollments)

	ctx := context.Background()
	api.Enrollments.Create(ctx, map[string]any{"studentId": 1, "batchId": 5, "status": EnrollmentActive})
	api.Enrollments.Create(ctx, map[string]any{"studentId": 2, "batchId": 9, "status": EnrollmentActive})

	all := api.Enrollments.ListKey()
	filtered := api.Enrollments.ListKey("batch_id", int64(5))
	if all.Equal(filtered) {
		t.Fatal("filtered list must use its own key")
	}
	if !filtered.HasPrefix(all) {
		t.Fatal("filtered key must share the collection prefix so it invalidates with it")
	}
}
