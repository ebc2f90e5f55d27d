// Package storage abstracts the durable key-value store the storefront
// persists into. Keys are strings, values are JSON documents stored as
// opaque bytes. Two implementations exist: a SQLite-backed store for the
// real application and an in-memory store for tests.
package storage

import "context"

// KV is the minimal key-value surface the session and catalog stores need.
//
// Contract: Get returns (nil, nil) when the key is absent. Set upserts.
// Delete is idempotent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Batcher is an optional capability: stores that can group several writes
// into one atomic unit implement it.
type Batcher interface {
	Batch(ctx context.Context, fn func(ctx context.Context, kv KV) error) error
}

// Batch runs fn atomically when kv supports batching, and directly
// against kv otherwise.
func Batch(ctx context.Context, kv KV, fn func(ctx context.Context, kv KV) error) error {
	if b, ok := kv.(Batcher); ok {
		return b.Batch(ctx, fn)
	}
	return fn(ctx, kv)
}

// Well-known keys. The layout mirrors the store's external interface:
// a users array, an optional current session object, and a products array.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyProducts    = "products"
)
