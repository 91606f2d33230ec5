package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nehal/linguo/internal/llm"
)

func TestNewResolvesDefaultDBPath(t *testing.T) {
	t.Setenv("LINGUO_DB", filepath.Join(t.TempDir(), "linguo.db"))

	a, err := New(context.Background(), Options{LLM: &llm.Config{Offline: true}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	if a.Store == nil || a.Events == nil || a.Ledger == nil || a.Pipeline == nil || a.Ops == nil {
		t.Fatal("expected all components wired")
	}
	if a.Provider != nil {
		t.Errorf("offline config produced a provider, want nil")
	}
}

func TestNewExplicitDBPath(t *testing.T) {
	a, err := New(context.Background(), Options{
		DBPath: filepath.Join(t.TempDir(), "explicit.db"),
		LLM:    &llm.Config{Offline: true},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
