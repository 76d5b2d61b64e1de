package backend

import (
	"fmt"
	"log/slog"

	"belanja/internal/storage"
)

// New constructs the configured blob backend.
func New(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Type {
	case Memory:
		logger.Info("Initialized memory backend")
		return &Result{Blob: NewMemoryBlob(), Cleanup: noopCleanup}, nil

	case File:
		dir := cfg.DataDir
		if dir == "" {
			dir = "data"
		}
		blob, err := NewFileBlob(dir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "data_dir", dir)
		return &Result{Blob: blob, Cleanup: noopCleanup}, nil

	case SQLite:
		blob, err := storage.NewSQLiteBlob(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Blob: blob, Cleanup: blob.Close}, nil
	}

	return nil, fmt.Errorf("invalid backend type: %q", cfg.Type)
}

// noopCleanup backs the backends that hold no releasable resources, so
// callers can always invoke Result.Cleanup.
func noopCleanup() error { return nil }
