package store

import (
	"context"
	"testing"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	got, err := kv.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("Get(absent) error = %v", err)
	}
	if got != nil {
		t.Errorf("Get(absent) = %v, want nil", got)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err = kv.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Errorf("Get(k) = %s, %v", got, err)
	}

	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, _ = kv.Get(ctx, "k")
	if string(got) != "v2" {
		t.Errorf("Get(k) after overwrite = %s", got)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, _ = kv.Get(ctx, "k")
	if got != nil {
		t.Errorf("Get(k) after delete = %v, want nil", got)
	}
}

func TestMemoryKVDefensiveCopies(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	in := []byte("original")
	if err := kv.Set(ctx, "k", in); err != nil {
		t.Fatal(err)
	}
	in[0] = 'X'

	got, _ := kv.Get(ctx, "k")
	if string(got) != "original" {
		t.Errorf("stored value mutated through caller slice: %s", got)
	}

	got[0] = 'Y'
	again, _ := kv.Get(ctx, "k")
	if string(again) != "original" {
		t.Errorf("stored value mutated through returned slice: %s", again)
	}
}

func TestMemoryKVFailWrites(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	kv.FailWrites = true
	if err := kv.Set(ctx, "k", []byte("v")); err == nil {
		t.Error("Set() with FailWrites returned nil error")
	}

	kv.FailWrites = false
	if err := kv.Set(ctx, "k", []byte("v")); err != nil {
		t.Errorf("Set() after clearing FailWrites = %v", err)
	}
}
