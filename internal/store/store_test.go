package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestEntKVSetOverwrite(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	got, err := kv.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("Get(absent) error = %v", err)
	}
	if got != nil {
		t.Errorf("Get(absent) = %v, want nil", got)
	}

	// First Set takes the create path.
	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err = kv.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get(k) = %s, %v", got, err)
	}

	// Second Set must take the update path, not insert a duplicate.
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, _ = kv.Get(ctx, "k")
	if string(got) != "v2" {
		t.Errorf("Get(k) after overwrite = %s, want v2", got)
	}

	n, err := s.Client().KVEntry.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if n != 1 {
		t.Errorf("entry count after overwrite = %d, want 1", n)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, _ = kv.Get(ctx, "k")
	if got != nil {
		t.Errorf("Get(k) after delete = %v, want nil", got)
	}
}
