package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueAssignsIDAndDefaults(t *testing.T) {
	store := newTestStore(t)

	item := Item{
		UserID:    "user-1",
		Entity:    EntityTask,
		Operation: OperationCreate,
		Data:      json.RawMessage(`{"title":"write report"}`),
	}
	if err := store.Enqueue(item); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	batch, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if len(batch) != 1 {
		t.Fatalf("Expected 1 buffered item, got %d", len(batch))
	}
	got := batch[0]
	if got.ID == "" {
		t.Error("Expected a generated ID")
	}
	if got.Priority != 3 {
		t.Errorf("Default priority = %d, want 3", got.Priority)
	}
	if got.Timestamp.IsZero() {
		t.Error("Expected a populated timestamp")
	}
}

func TestGetBatchOrdersByPriorityThenAge(t *testing.T) {
	store := newTestStore(t)

	base := time.Now()
	items := []Item{
		{ID: "low-first", Priority: 2, Timestamp: base, Entity: EntityTask, Operation: OperationUpdate},
		{ID: "high-late", Priority: 5, Timestamp: base.Add(time.Minute), Entity: EntityTask, Operation: OperationCreate},
		{ID: "high-early", Priority: 5, Timestamp: base, Entity: EntityWorkday, Operation: OperationUpdate},
	}
	for _, item := range items {
		if err := store.Enqueue(item); err != nil {
			t.Fatalf("Enqueue %s failed: %v", item.ID, err)
		}
	}

	batch, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	want := []string{"high-early", "high-late", "low-first"}
	if len(batch) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(batch))
	}
	for i, id := range want {
		if batch[i].ID != id {
			t.Errorf("Position %d = %s, want %s", i, batch[i].ID, id)
		}
	}
}

func TestGetBatchRespectsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Enqueue(Item{Entity: EntityTask, Operation: OperationCreate}); err != nil {
			t.Fatalf("Enqueue failed: %v", err)
		}
	}

	batch, err := store.GetBatch(2)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if len(batch) != 2 {
		t.Errorf("Expected batch of 2, got %d", len(batch))
	}
}

func TestRemoveDeletesItem(t *testing.T) {
	store := newTestStore(t)

	if err := store.Enqueue(Item{ID: "gone", Entity: EntityTask, Operation: OperationDelete}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	batch, err := store.GetBatch(1)
	if err != nil || len(batch) != 1 {
		t.Fatalf("GetBatch failed: %v (%d items)", err, len(batch))
	}

	if err := store.Remove(batch[0]); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 0 {
		t.Errorf("Expected empty buffer after Remove, size = %d", size)
	}
}

func TestRequeueBumpsTimestamp(t *testing.T) {
	store := newTestStore(t)

	old := Item{ID: "retry-me", Priority: 4, Timestamp: time.Now().Add(-time.Hour), Entity: EntityTask, Operation: OperationUpdate}
	if err := store.Enqueue(old); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	batch, _ := store.GetBatch(1)
	if len(batch) != 1 {
		t.Fatal("Expected one buffered item")
	}

	if err := store.Remove(batch[0]); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	requeued := batch[0]
	requeued.Retries++
	if err := store.Requeue(requeued); err != nil {
		t.Fatalf("Requeue failed: %v", err)
	}

	batch, _ = store.GetBatch(1)
	if len(batch) != 1 {
		t.Fatal("Expected requeued item")
	}
	if !batch[0].Timestamp.After(old.Timestamp) {
		t.Error("Expected Requeue to bump the timestamp")
	}
	if batch[0].Retries != 1 {
		t.Errorf("Retries = %d, want 1", batch[0].Retries)
	}
}

func TestCleanupDropsStaleItems(t *testing.T) {
	store := newTestStore(t)

	stale := Item{ID: "stale", Timestamp: time.Now().Add(-48 * time.Hour), Entity: EntityTask, Operation: OperationCreate}
	fresh := Item{ID: "fresh", Timestamp: time.Now(), Entity: EntityTask, Operation: OperationCreate}
	for _, item := range []Item{stale, fresh} {
		if err := store.Enqueue(item); err != nil {
			t.Fatalf("Enqueue failed: %v", err)
		}
	}

	if err := store.Cleanup(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	batch, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if len(batch) != 1 || batch[0].ID != "fresh" {
		t.Fatalf("Expected only the fresh item to survive, got %+v", batch)
	}
}
