package store

import (
	"os"
	"testing"

	"nickandperla.net/arith/internal/eval"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	// Test Put and Get
	err := s.Put("demo", eval.Context{"x": 3, "y": -2})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("demo")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["x"] != 3 || got["y"] != -2 {
		t.Errorf("expected {x:3 y:-2}, got %v", got)
	}

	// Mutating the returned context must not affect the stored one.
	got["x"] = 99
	again, err := s.Get("demo")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again["x"] != 3 {
		t.Errorf("stored context mutated through a returned copy: %v", again)
	}

	// Test Delete
	err = s.Delete("demo")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err = s.Get("demo")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %v", got)
	}
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	for _, name := range []string{"b", "a", "c"} {
		if err := s.Put(name, eval.Context{"x": 1}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	expected := []string{"a", "b", "c"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, names)
			break
		}
	}
}

func TestSQLiteStore(t *testing.T) {
	// Create temp file
	f, err := os.CreateTemp("", "arith-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	// Test Put and Get
	err = s.Put("demo", eval.Context{"x": 3})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("demo")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 1 || got["x"] != 3 {
		t.Errorf("expected {x:3}, got %v", got)
	}

	// Overwrite replaces the full binding set.
	err = s.Put("demo", eval.Context{"y": 7})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err = s.Get("demo")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, ok := got["x"]; ok {
		t.Errorf("old binding survived overwrite: %v", got)
	}
	if got["y"] != 7 {
		t.Errorf("expected {y:7}, got %v", got)
	}

	// Missing name returns nil without error.
	got, err = s.Get("missing")
	if err != nil {
		t.Fatalf("Get of missing name failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing name, got %v", got)
	}

	// An empty context is legal and distinguishable from a missing one.
	err = s.Put("empty", eval.Context{})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err = s.Get("empty")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty context, got %v", got)
	}

	// Reopen and check persistence.
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	s, err = NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s.Close()

	got, err = s.Get("demo")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got["y"] != 7 {
		t.Errorf("expected {y:7} after reopen, got %v", got)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "demo" || names[1] != "empty" {
		t.Errorf("expected [demo empty], got %v", names)
	}

	// Test Delete
	if err := s.Delete("demo"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err = s.Get("demo")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %v", got)
	}
}

func TestSQLiteSchemaVersion(t *testing.T) {
	f, err := os.CreateTemp("", "arith-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	version, err := s.GetMetadata("schema_version")
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("expected schema version %s, got %s", SchemaVersion, version)
	}

	// A future schema version is rejected on open.
	if err := s.SetMetadata("schema_version", "99"); err != nil {
		t.Fatalf("SetMetadata failed: %v", err)
	}
	s.Close()

	if _, err := NewSQLite(path); err == nil {
		t.Error("expected error opening store with unsupported schema version")
	}
}
