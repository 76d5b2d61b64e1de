// Package backend selects and constructs the blob persistence capability
// the record store runs against.
package backend

import "belanja/internal/storage"

// Type names a blob backend implementation.
type Type string

const (
	// Memory keeps blobs in the process; data is lost on exit.
	Memory Type = "memory"
	// File keeps one file per key under a data directory, the closest
	// analogue to the mobile app's local storage.
	File Type = "file"
	// SQLite keeps blobs in a key/value table.
	SQLite Type = "sqlite"
)

func (t Type) String() string { return string(t) }

// IsValid reports whether t names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case Memory, File, SQLite:
		return true
	}
	return false
}

// Types lists every valid backend type.
func Types() []Type {
	return []Type{Memory, File, SQLite}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result carries a constructed blob backend and its cleanup. Cleanup is
// never nil; backends without resources to release get a no-op.
type Result struct {
	Blob    storage.Blob
	Cleanup CleanupFunc
}

// Config holds what each backend needs to come up.
type Config struct {
	Type Type

	// File backend
	DataDir string

	// SQLite backend
	SQLiteDBPath string
}
