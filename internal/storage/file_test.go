package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskbot/internal/storage"
	"taskbot/internal/task"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	store := storage.NewFileStore(path)
	ctx := context.Background()

	tasks := sampleTasks()
	if err := store.Save(ctx, tasks); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(loaded))
	}
	for i, want := range tasks {
		if loaded[i].Render() != want.Render() {
			t.Errorf("task %d: expected %q, got %q", i, want.Render(), loaded[i].Render())
		}
	}
}

func TestFileStoreMissingFileIsEmptyList(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "absent.yaml"))

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(loaded))
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	store := storage.NewFileStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, sampleTasks()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(ctx, []task.Task{task.NewTodo("only one")}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Description() != "only one" {
		t.Errorf("expected the second save to fully supersede the first, got %d tasks", len(loaded))
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
