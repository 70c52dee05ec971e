package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/desirely/creator-desk/internal/api"
	"github.com/desirely/creator-desk/internal/model"
)

// fakeNotifier records pushed notifications for assertions.
type fakeNotifier struct {
	mu      sync.Mutex
	entries []model.Notification
}

func (f *fakeNotifier) Push(message string, severity model.Severity) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, model.Notification{Message: message, Severity: severity})
	return "n"
}

func (f *fakeNotifier) bySeverity(severity model.Severity) []model.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Notification
	for _, n := range f.entries {
		if n.Severity == severity {
			out = append(out, n)
		}
	}
	return out
}

// creatorBackend is an in-memory implementation of the backend REST surface.
type creatorBackend struct {
	mu       sync.Mutex
	creators []model.Creator
	nextID   int
	failAll  bool
	requests int
}

func (b *creatorBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.requests++

		if b.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "backend exploded"})
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/creators":
			json.NewEncoder(w).Encode(b.creators)

		case r.Method == http.MethodPost && r.URL.Path == "/api/creator":
			var draft model.CreatorDraft
			json.NewDecoder(r.Body).Decode(&draft)
			b.nextID++
			created := model.Creator{
				ID:          "id-" + strconv.Itoa(b.nextID),
				Name:        draft.Name,
				Description: draft.Description,
				Gender:      draft.Gender,
				ImageID:     draft.ImageID,
			}
			b.creators = append(b.creators, created)
			json.NewEncoder(w).Encode(created)

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/creator/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/creator/")
			var updated model.Creator
			json.NewDecoder(r.Body).Decode(&updated)
			updated.ID = id
			for i, c := range b.creators {
				if c.ID == id {
					b.creators[i] = updated
				}
			}
			json.NewEncoder(w).Encode(updated)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/creator/delete/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/creator/delete/")
			for i, c := range b.creators {
				if c.ID == id {
					b.creators = append(b.creators[:i], b.creators[i+1:]...)
					break
				}
			}
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "no such route"})
		}
	})
}

func newTestStore(t *testing.T, backend *creatorBackend) (*Service, *fakeNotifier, func()) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	notifier := &fakeNotifier{}
	service := NewService(api.NewClient(server.URL, zerolog.Nop()), notifier, zerolog.Nop())
	return service, notifier, server.Close
}

func TestListReplacesSnapshot(t *testing.T) {
	backend := &creatorBackend{creators: []model.Creator{
		{ID: "a", Name: "Ada", Description: "pioneer", Gender: "f"},
	}}
	service, _, closeFn := newTestStore(t, backend)
	defer closeFn()

	if err := service.List(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snap := service.Snapshot()
	if snap.Status != model.StatusIdle {
		t.Errorf("Expected status Idle, got %s", snap.Status)
	}
	if len(snap.Creators) != 1 || snap.Creators[0].Name != "Ada" {
		t.Errorf("Expected snapshot with Ada, got %+v", snap.Creators)
	}
}

func TestListFailureSetsErrorStatus(t *testing.T) {
	backend := &creatorBackend{failAll: true}
	service, notifier, closeFn := newTestStore(t, backend)
	defer closeFn()

	if err := service.List(context.Background()); err == nil {
		t.Fatal("Expected error, got nil")
	}

	snap := service.Snapshot()
	if snap.Status != model.StatusError {
		t.Errorf("Expected status Error, got %s", snap.Status)
	}
	if !strings.Contains(snap.Err, "backend exploded") {
		t.Errorf("Expected server detail in status, got '%s'", snap.Err)
	}
	if len(notifier.bySeverity(model.SeverityError)) != 1 {
		t.Error("Expected one error notification for list failure")
	}
}

func TestCreateValidatesBeforeSending(t *testing.T) {
	backend := &creatorBackend{}
	service, notifier, closeFn := newTestStore(t, backend)
	defer closeFn()

	_, err := service.Create(context.Background(), model.CreatorDraft{Name: "Ada"})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if backend.requests != 0 {
		t.Errorf("Expected no network call for invalid draft, got %d requests", backend.requests)
	}
	if len(notifier.bySeverity(model.SeverityError)) != 1 {
		t.Error("Expected one error notification for validation failure")
	}
}

func TestCreateRefreshesFromServer(t *testing.T) {
	backend := &creatorBackend{}
	service, notifier, closeFn := newTestStore(t, backend)
	defer closeFn()

	created, err := service.Create(context.Background(), model.CreatorDraft{
		Name: "Ada", Description: "d", Gender: "f",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected server-assigned id")
	}

	// Create must be followed by a full list refresh, not a local append.
	if backend.requests != 2 {
		t.Errorf("Expected create + list refresh (2 requests), got %d", backend.requests)
	}

	snap := service.Snapshot()
	if _, ok := snap.Find(created.ID); !ok {
		t.Error("Expected refreshed snapshot to contain the new record")
	}

	successes := notifier.bySeverity(model.SeveritySuccess)
	if len(successes) != 1 || !strings.Contains(successes[0].Message, created.ID) {
		t.Errorf("Expected success notification carrying the new id, got %+v", successes)
	}
}

func TestCreateThenRemoveRoundTrip(t *testing.T) {
	backend := &creatorBackend{}
	service, _, closeFn := newTestStore(t, backend)
	defer closeFn()

	ctx := context.Background()
	created, err := service.Create(ctx, model.CreatorDraft{Name: "Ada", Description: "d", Gender: "f"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := service.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if _, ok := service.Find(created.ID); !ok {
		t.Fatal("Expected Ada in the collection after create+list")
	}

	if err := service.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := service.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if _, ok := service.Find(created.ID); ok {
		t.Error("Expected Ada gone after remove+list")
	}
}

func TestUpdateMergesOptimistically(t *testing.T) {
	backend := &creatorBackend{creators: []model.Creator{
		{ID: "a", Name: "Ada", Description: "d", Gender: "f"},
	}}
	service, _, closeFn := newTestStore(t, backend)
	defer closeFn()

	ctx := context.Background()
	if err := service.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	listRequests := backend.requests

	edited := model.Creator{ID: "a", Name: "New", Description: "d", Gender: "f"}
	if _, err := service.Update(ctx, "a", edited); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// The merge is local: exactly one more request (the PUT), no re-fetch.
	if backend.requests != listRequests+1 {
		t.Errorf("Expected no list refresh after update, got %d extra requests",
			backend.requests-listRequests)
	}

	c, ok := service.Find("a")
	if !ok {
		t.Fatal("Expected creator 'a' in snapshot")
	}
	if c.Name != "New" {
		t.Errorf("Expected optimistic name 'New', got '%s'", c.Name)
	}
}

func TestUpdateFailureLeavesEntryUntouched(t *testing.T) {
	backend := &creatorBackend{creators: []model.Creator{
		{ID: "a", Name: "Ada", Description: "d", Gender: "f"},
	}}
	service, notifier, closeFn := newTestStore(t, backend)
	defer closeFn()

	ctx := context.Background()
	if err := service.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()

	edited := model.Creator{ID: "a", Name: "New", Description: "d", Gender: "f"}
	if _, err := service.Update(ctx, "a", edited); err == nil {
		t.Fatal("Expected update error, got nil")
	}

	c, _ := service.Find("a")
	if c.Name != "Ada" {
		t.Errorf("Expected prior entry untouched, got name '%s'", c.Name)
	}

	errs := notifier.bySeverity(model.SeverityError)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "backend exploded") {
		t.Errorf("Expected error notification with server detail, got %+v", errs)
	}
}

func TestRemoveFailureLeavesCollectionUnchanged(t *testing.T) {
	backend := &creatorBackend{creators: []model.Creator{
		{ID: "a", Name: "Ada", Description: "d", Gender: "f"},
	}}
	service, notifier, closeFn := newTestStore(t, backend)
	defer closeFn()

	ctx := context.Background()
	if err := service.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()

	if err := service.Remove(ctx, "a"); err == nil {
		t.Fatal("Expected remove error, got nil")
	}
	if _, ok := service.Find("a"); !ok {
		t.Error("Expected entry to survive a failed delete")
	}
	if len(notifier.bySeverity(model.SeveritySuccess)) != 0 {
		t.Error("Expected no success notification for failed delete")
	}
}

func TestAttachImagePatchesSnapshotWithoutNotifying(t *testing.T) {
	backend := &creatorBackend{creators: []model.Creator{
		{ID: "a", Name: "Ada", Description: "d", Gender: "f"},
	}}
	service, notifier, closeFn := newTestStore(t, backend)
	defer closeFn()

	ctx := context.Background()
	if err := service.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if err := service.AttachImage(ctx, "a", "img-7"); err != nil {
		t.Fatalf("AttachImage failed: %v", err)
	}

	c, _ := service.Find("a")
	if c.ImageID != "img-7" {
		t.Errorf("Expected image id patched into snapshot, got '%s'", c.ImageID)
	}
	if c.Name != "Ada" {
		t.Errorf("Expected other fields untouched, got name '%s'", c.Name)
	}

	notifier.mu.Lock()
	total := len(notifier.entries)
	notifier.mu.Unlock()
	if total != 0 {
		t.Errorf("Expected the pipeline, not the store, to notify; got %d notifications", total)
	}
}

func TestFilterCreators(t *testing.T) {
	creators := []model.Creator{
		{ID: "1", Name: "Ada Lovelace", Description: "analytical engine"},
		{ID: "2", Name: "Grace Hopper", Description: "compilers"},
		{ID: "3", Name: "Hedy Lamarr", Description: "Frequency Hopping"},
	}

	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3"}},
		{"ada", []string{"1"}},
		{"ADA", []string{"1"}},
		{"hopp", []string{"2", "3"}}, // name of 2, description of 3
		{"engine", []string{"1"}},
		{"nobody", nil},
	}

	for _, tc := range cases {
		got := FilterCreators(creators, tc.term)
		if len(got) != len(tc.want) {
			t.Errorf("Term '%s': expected %d results, got %d", tc.term, len(tc.want), len(got))
			continue
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Errorf("Term '%s': position %d expected id %s, got %s", tc.term, i, id, got[i].ID)
			}
		}
	}

	// Filtering must not mutate the input.
	if creators[0].Name != "Ada Lovelace" {
		t.Error("Filter mutated the underlying slice")
	}
}

func TestSnapshotCopyIsIsolated(t *testing.T) {
	backend := &creatorBackend{creators: []model.Creator{
		{ID: "a", Name: "Ada", Description: "d", Gender: "f"},
	}}
	service, _, closeFn := newTestStore(t, backend)
	defer closeFn()

	if err := service.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	snap := service.Snapshot()
	snap.Creators[0].Name = "Mutated"

	c, _ := service.Find("a")
	if c.Name != "Ada" {
		t.Error("External mutation of a snapshot copy must not reach the store")
	}
}
