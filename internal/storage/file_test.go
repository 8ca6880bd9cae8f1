package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cart.json")
	store, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("new storage failed: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	payload := []byte(`{"cart":[{"vendor":"v1","products":[{"product_id":"p1","quantity":2}]}]}`)
	if err := store.Save(ctx, payload); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("round trip mismatch: %s", got)
	}

	// Overwrite replaces the whole record.
	if err := store.Save(ctx, []byte(`{"cart":[]}`)); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load after overwrite failed: %v", err)
	}
	if string(got) != `{"cart":[]}` {
		t.Fatalf("overwrite mismatch: %s", got)
	}
}

func TestFileStorageSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewFileStorage(filepath.Join(dir, "cart.json"))
	if err != nil {
		t.Fatalf("new storage failed: %v", err)
	}
	if err := store.Save(context.Background(), []byte(`{"cart":[]}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "cart.json" {
		t.Fatalf("expected only the snapshot file, got %v", entries)
	}
}

func TestFileStorageClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cart.json")
	store, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("new storage failed: %v", err)
	}
	ctx := context.Background()

	// Clearing a never-saved snapshot is not an error.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear on missing file failed: %v", err)
	}

	if err := store.Save(ctx, []byte(`{"cart":[]}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestNewFileStorageRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := NewFileStorage(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
