package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/nehal/linguo/ent"
	"github.com/nehal/linguo/ent/kventry"
)

// KV is the opaque key-value persistence collaborator. Get returns
// (nil, nil) for an absent key; a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// entKV implements KV on the kv_entries table.
type entKV struct {
	client *ent.Client
}

func (r *entKV) Get(ctx context.Context, key string) ([]byte, error) {
	e, err := r.client.KVEntry.Query().
		Where(kventry.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return e.Value, nil
}

func (r *entKV) Set(ctx context.Context, key string, value []byte) error {
	// Update-then-create. The store has a single writer per process, so
	// the two steps do not race.
	n, err := r.client.KVEntry.Update().
		Where(kventry.KeyEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}
	_, err = r.client.KVEntry.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *entKV) Delete(ctx context.Context, key string) error {
	_, err := r.client.KVEntry.Delete().
		Where(kventry.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// MemoryKV is an in-memory KV for tests and ephemeral sessions.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// FailWrites makes Set return an error, for exercising persistence
	// failure paths in tests.
	FailWrites bool
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("set %q: writes disabled", key)
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.entries[key] = v
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
