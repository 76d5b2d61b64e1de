// Package storage persists the record collection as a single JSON blob
// behind a small key-value capability, mirroring the mobile app storage
// this service replaces.
package storage

import (
	"context"
	"errors"
)

// StorageKey is the logical key the record collection lives under. The
// name is kept for compatibility with blobs written by the mobile app.
const StorageKey = "DAFTAR_BELANJA"

// ErrStorage marks read/write failures against the blob backend. Callers
// must not assume a mutation took effect when they see it.
var ErrStorage = errors.New("storage failure")

// Blob is the external persistence capability: opaque string values under
// string keys, nothing more.
type Blob interface {
	// Get returns the value for key; the second return is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
