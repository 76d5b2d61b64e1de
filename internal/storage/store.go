package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"belanja/internal/cache"
	"belanja/internal/core"
)

// Store owns the full record collection. Every mutation is a whole-blob
// read-modify-write; no other component persists records.
type Store struct {
	blob Blob
	key  string

	// decoded-collection cache, invalidated on every mutation. The Store
	// is the only writer, so a hit always matches the persisted blob.
	records *cache.LRUCache[[]core.Record]

	idMu   sync.Mutex
	lastID int64
}

func NewStore(blob Blob, key string) *Store {
	if key == "" {
		key = StorageKey
	}
	return &Store{
		blob:    blob,
		key:     key,
		records: cache.NewLRUCache[[]core.Record](4, 5*time.Minute),
	}
}

// LoadAll returns the persisted collection in insertion order. A missing,
// unreadable or unparseable blob degrades to an empty collection so the
// app stays usable; the condition is logged, not propagated.
func (s *Store) LoadAll(ctx context.Context) []core.Record {
	if cached, ok := s.records.Get(s.key); ok {
		out := make([]core.Record, len(cached))
		copy(out, cached)
		return out
	}

	value, ok, err := s.blob.Get(ctx, s.key)
	if err != nil {
		slog.WarnContext(ctx, "Blob read failed, treating collection as empty",
			"key", s.key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	records, err := decodeRecords(value)
	if err != nil {
		slog.WarnContext(ctx, "Stored blob is not a record list, treating collection as empty",
			"key", s.key, "error", err)
		return nil
	}

	s.records.Set(s.key, records)
	out := make([]core.Record, len(records))
	copy(out, records)
	return out
}

// loadForWrite reads the collection ahead of a mutation. Unlike LoadAll,
// a failing backend read aborts the mutation: rewriting the blob from an
// empty snapshot would silently drop every record.
func (s *Store) loadForWrite(ctx context.Context) ([]core.Record, error) {
	value, ok, err := s.blob.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read blob %q: %w", s.key, errors.Join(ErrStorage, err))
	}
	if !ok {
		return nil, nil
	}
	records, err := decodeRecords(value)
	if err != nil {
		// Lenient-recovery policy: an unparseable blob counts as empty
		// everywhere, including here.
		slog.WarnContext(ctx, "Stored blob is not a record list, mutation starts from empty",
			"key", s.key, "error", err)
		return nil, nil
	}
	return records, nil
}

func (s *Store) persist(ctx context.Context, records []core.Record) error {
	value, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.blob.Set(ctx, s.key, value); err != nil {
		return fmt.Errorf("write blob %q: %w", s.key, errors.Join(ErrStorage, err))
	}
	s.records.Delete(s.key)
	return nil
}

// Upsert validates the record, then replaces the record with the same id
// in place (keeping its position) or appends it, and persists the whole
// collection. On failure nothing is committed.
func (s *Store) Upsert(ctx context.Context, rec core.Record) (core.Record, error) {
	rec = rec.WithDefaults()
	if err := rec.Validate(); err != nil {
		return core.Record{}, err
	}

	records, err := s.loadForWrite(ctx)
	if err != nil {
		return core.Record{}, err
	}

	replaced := false
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	if err := s.persist(ctx, records); err != nil {
		return core.Record{}, err
	}
	slog.InfoContext(ctx, "Record saved",
		"id", rec.ID, "date", rec.Date, "name", rec.Name,
		"total_price", rec.TotalPrice, "replaced", replaced)
	return rec, nil
}

// DeleteOne removes the record with the given id. A missing id is a
// no-op, not an error.
func (s *Store) DeleteOne(ctx context.Context, id int64) error {
	_, err := s.DeleteMany(ctx, []int64{id})
	return err
}

// DeleteMany removes every record whose id is in ids and reports how many
// were actually removed. Ids with no matching record are ignored.
func (s *Store) DeleteMany(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	records, err := s.loadForWrite(ctx)
	if err != nil {
		return 0, err
	}

	remaining := records[:0]
	for _, r := range records {
		if _, gone := drop[r.ID]; !gone {
			remaining = append(remaining, r)
		}
	}
	removed := len(records) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	if err := s.persist(ctx, remaining); err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "Records deleted", "requested", len(ids), "removed", removed)
	return removed, nil
}

// NextID issues a fresh record id. Ids are sourced from wall-clock millis
// (the format the mobile app used) and serialized so two saves in the
// same tick still get strictly increasing ids. Ids are never reused.
func (s *Store) NextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
