// Package metadata implements the durable key/value store backing the
// session. Values are opaque byte slices; a missing key reads as nil.
package metadata

import (
	"context"
)

// Repository is the storage port consumed by the session manager. The
// multi-key operations are atomic: either every key is written/removed or
// none is.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	SetMulti(ctx context.Context, kv map[string][]byte) error
	DeleteMulti(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
