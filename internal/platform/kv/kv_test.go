package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, err := store.Load(ctx, KeyEmployees); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unwritten key, got %v", err)
	}

	if err := store.Save(ctx, KeyEmployees, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	value, err := store.Load(ctx, KeyEmployees)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(value) != `[{"id":"1"}]` {
		t.Fatalf("unexpected value: %s", value)
	}

	if err := store.Save(ctx, KeyEmployees, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, err = store.Load(ctx, KeyEmployees)
	if err != nil {
		t.Fatalf("load after overwrite failed: %v", err)
	}
	if string(value) != `[]` {
		t.Fatalf("expected last write to win, got %s", value)
	}

	if err := store.Delete(ctx, KeyEmployees); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(ctx, KeyEmployees); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent key is a no-op.
	if err := store.Delete(ctx, KeySessionUser); err != nil {
		t.Fatalf("delete of absent key failed: %v", err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "staffhub.db")

	store, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if err := store.Save(ctx, KeySessionAuthenticated, []byte("true")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(ctx, KeySessionUser, []byte(`{"name":"Admin User"}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// A fresh handle over the same file sees the last saved state.
	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, err := reopened.Load(ctx, KeySessionAuthenticated)
	if err != nil {
		t.Fatalf("load after reopen failed: %v", err)
	}
	if string(value) != "true" {
		t.Fatalf("unexpected value after reopen: %s", value)
	}

	if _, err := reopened.Load(ctx, KeyPayrollRecords); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
