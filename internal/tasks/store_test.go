package tasks

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"taskpad/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Bridge) {
	t.Helper()
	slot := storage.NewFileSlot(filepath.Join(t.TempDir(), "tasks.json"))
	bridge := storage.NewBridge(zerolog.Nop(), slot)
	return NewStore(zerolog.Nop(), bridge), bridge
}

func TestAdd(t *testing.T) {
	store, _ := newTestStore(t)

	task := store.Add("Buy milk")
	if task == nil {
		t.Fatal("Add returned nil for non-empty text")
	}
	if task.ID == "" {
		t.Error("Add: empty task id")
	}
	if task.Completed {
		t.Error("Add: new task must not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Error("Add: zero CreatedAt")
	}
	if got := store.Counts().Total; got != 1 {
		t.Errorf("total after Add: got %d, want 1", got)
	}
}

func TestAddEmptyText(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add("Buy milk")

	if task := store.Add(""); task != nil {
		t.Errorf("Add(\"\"): got %+v, want nil", task)
	}
	if got := store.Counts().Total; got != 1 {
		t.Errorf("total after empty Add: got %d, want 1", got)
	}
}

func TestAddUniqueIDs(t *testing.T) {
	store, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := store.Add("task")
		if seen[task.ID] {
			t.Fatalf("duplicate task id %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestToggle(t *testing.T) {
	store, _ := newTestStore(t)
	task := store.Add("Buy milk")

	if !store.Toggle(task.ID) {
		t.Fatal("Toggle: task not found")
	}
	if !store.All()[0].Completed {
		t.Error("first Toggle: task not completed")
	}

	if !store.Toggle(task.ID) {
		t.Fatal("second Toggle: task not found")
	}
	if store.All()[0].Completed {
		t.Error("second Toggle: task still completed")
	}
}

func TestToggleUnknownID(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add("Buy milk")

	if store.Toggle("nope") {
		t.Error("Toggle of unknown id reported found")
	}
	if store.All()[0].Completed {
		t.Error("Toggle of unknown id mutated the collection")
	}
}

func TestEdit(t *testing.T) {
	store, _ := newTestStore(t)
	task := store.Add("Buy milk")
	store.Toggle(task.ID)

	if !store.Edit(task.ID, "Buy oat milk") {
		t.Fatal("Edit: task not found")
	}

	got := store.All()[0]
	if got.Text != "Buy oat milk" {
		t.Errorf("text after Edit: got %q, want %q", got.Text, "Buy oat milk")
	}
	if !got.Completed {
		t.Error("Edit must preserve the completed flag")
	}

	// No store-level validation: empty text is accepted.
	if !store.Edit(task.ID, "") {
		t.Fatal("Edit to empty text: task not found")
	}
	if got := store.All()[0].Text; got != "" {
		t.Errorf("text after empty Edit: got %q, want \"\"", got)
	}
}

func TestEditUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	if store.Edit("nope", "text") {
		t.Error("Edit of unknown id reported found")
	}
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.Add("first")
	store.Add("second")

	if !store.Delete(first.ID) {
		t.Fatal("Delete: task not found")
	}
	if got := store.Counts().Total; got != 1 {
		t.Errorf("total after Delete: got %d, want 1", got)
	}
	if got := store.All()[0].Text; got != "second" {
		t.Errorf("remaining task: got %q, want %q", got, "second")
	}

	if store.Delete(first.ID) {
		t.Error("repeated Delete reported found")
	}
	if got := store.Counts().Total; got != 1 {
		t.Errorf("total after repeated Delete: got %d, want 1", got)
	}
}

func TestCounts(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add("one")
	two := store.Add("two")
	store.Add("three")
	store.Toggle(two.ID)

	counts := store.Counts()
	if counts.Total != 3 {
		t.Errorf("Total: got %d, want 3", counts.Total)
	}
	if counts.Completed != 1 {
		t.Errorf("Completed: got %d, want 1", counts.Completed)
	}
	if counts.Remaining != 2 {
		t.Errorf("Remaining: got %d, want 2", counts.Remaining)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add("one")
	two := store.Add("two")
	store.Add("three")

	// Neither toggling nor editing reorders the collection.
	store.Toggle(two.ID)
	store.Edit(two.ID, "two edited")

	want := []string{"one", "two edited", "three"}
	list := store.All()
	for i, text := range want {
		if list[i].Text != text {
			t.Errorf("task %d: got %q, want %q", i, list[i].Text, text)
		}
	}
}

func TestWriteThroughPersistence(t *testing.T) {
	store, bridge := newTestStore(t)
	task := store.Add("Buy milk")
	store.Toggle(task.ID)

	// A fresh store over the same bridge must see every mutation.
	reloaded := NewStore(zerolog.Nop(), bridge)
	list := reloaded.All()
	if len(list) != 1 {
		t.Fatalf("reloaded store: got %d tasks, want 1", len(list))
	}
	if list[0].ID != task.ID {
		t.Errorf("reloaded id: got %s, want %s", list[0].ID, task.ID)
	}
	if !list[0].Completed {
		t.Error("reloaded task lost its completed flag")
	}
}

func TestScenario(t *testing.T) {
	store, _ := newTestStore(t)

	task := store.Add("Buy milk")
	counts := store.Counts()
	if counts.Total != 1 || counts.Completed != 0 || counts.Remaining != 1 {
		t.Fatalf("after add: got %+v", counts)
	}

	store.Toggle(task.ID)
	counts = store.Counts()
	if counts.Completed != 1 || counts.Remaining != 0 {
		t.Fatalf("after toggle: got %+v", counts)
	}

	store.Edit(task.ID, "Buy oat milk")
	got := store.All()[0]
	if got.Text != "Buy oat milk" || !got.Completed {
		t.Fatalf("after edit: got %+v", got)
	}

	store.Delete(task.ID)
	if got := store.Counts().Total; got != 0 {
		t.Fatalf("after delete: total = %d, want 0", got)
	}
}
