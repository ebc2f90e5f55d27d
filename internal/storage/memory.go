package storage

import "context"

// MemoryKV is a map-backed KV used by tests (and by anything that wants a
// throwaway store). It is not safe for concurrent use; the application is
// single-threaded by design.
type MemoryKV struct {
	data map[string][]byte
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Clear(ctx context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

func (m *MemoryKV) List(ctx context.Context) (map[string][]byte, error) {
	result := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		out := make([]byte, len(v))
		copy(out, v)
		result[k] = out
	}
	return result, nil
}

// Batch just runs fn against the store itself; map writes are already
// effectively atomic in a single-threaded process.
func (m *MemoryKV) Batch(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	return fn(ctx, m)
}
