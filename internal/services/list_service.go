// Package services holds the stateful pieces sitting between the record
// store and the UI collaborator: pagination, selection and the list
// actor that serializes every user-triggered operation.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"belanja/internal/core"
	"belanja/internal/storage"
)

// ListService is the single logical actor of the list view. It owns the
// in-memory snapshot and serializes load, filter change, pagination and
// selection behind one mutex; the store's blob round-trips are the only
// asynchronous boundary and complete before dependent state is touched.
type ListService struct {
	mu       sync.Mutex
	store    *storage.Store
	snapshot []core.Record
	rng      core.DateRange
	pager    *Paginator
	sel      *SelectionSet
}

func NewListService(store *storage.Store, pageSize int) *ListService {
	return &ListService{
		store: store,
		pager: NewPaginator(pageSize),
		sel:   NewSelectionSet(),
	}
}

// Refresh reloads the full collection, superseding the previous
// snapshot, and prunes selection entries whose records are gone. The UI
// collaborator calls this on each return to the list view.
func (s *ListService) Refresh(ctx context.Context) {
	records := s.store.LoadAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = records
	s.pruneSelectionLocked()
}

// SetRange activates a date-range filter and rewinds pagination, since a
// filter change invalidates pagination progress.
func (s *ListService) SetRange(dr core.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = dr
	s.pager.Reset()
}

// ClearRange removes the active filter and rewinds pagination.
func (s *ListService) ClearRange() {
	s.SetRange(core.DateRange{})
}

// Range returns the active filter bounds.
func (s *ListService) Range() core.DateRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng
}

// Advance loads one more page of the filtered list. Returns whether the
// visible prefix grew.
func (s *ListService) Advance() bool {
	s.mu.Lock()
	total := len(core.FilterByDate(s.snapshot, s.rng))
	s.mu.Unlock()
	// the paginator carries its own re-entrancy gate
	return s.pager.Advance(total)
}

// Save persists a record: a zero id means a new record and gets a fresh
// one, a known id replaces that record in place. The snapshot is
// reloaded after a successful write.
func (s *ListService) Save(ctx context.Context, rec core.Record) (core.Record, error) {
	if rec.ID == 0 {
		rec.ID = s.store.NextID()
	}
	saved, err := s.store.Upsert(ctx, rec)
	if err != nil {
		return core.Record{}, fmt.Errorf("save record: %w", err)
	}
	s.Refresh(ctx)
	return saved, nil
}

// Delete removes one record by id and reloads the snapshot.
func (s *ListService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteOne(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	s.Refresh(ctx)
	return nil
}

// EnterSelection starts selection mode from the triggering record.
func (s *ListService) EnterSelection(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Enter(id)
}

// ToggleSelection flips one record's membership.
func (s *ListService) ToggleSelection(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Toggle(id)
}

// ToggleDateGroup applies the bucket checkbox semantics to the visible
// members of the given date bucket.
func (s *ListService) ToggleDateGroup(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.pager.Visible(core.FilterByDate(s.snapshot, s.rng))
	var members []int64
	for _, r := range visible {
		if r.Date == date {
			members = append(members, r.ID)
		}
	}
	if len(members) == 0 {
		return
	}
	s.sel.ToggleGroup(members)
}

// ExitSelection leaves selection mode.
func (s *ListService) ExitSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Exit()
}

// DeleteSelected bulk-deletes the current selection, then clears it and
// leaves selection mode. On storage failure the selection and snapshot
// are left untouched so the user can retry.
func (s *ListService) DeleteSelected(ctx context.Context) (int, error) {
	s.mu.Lock()
	ids := s.sel.IDs()
	s.mu.Unlock()
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := s.store.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete selected: %w", err)
	}

	s.mu.Lock()
	s.sel.Exit()
	s.mu.Unlock()
	s.Refresh(ctx)

	slog.InfoContext(ctx, "Bulk delete completed", "selected", len(ids), "removed", removed)
	return removed, nil
}

// pruneSelectionLocked drops selection entries for ids missing from the
// snapshot. Callers hold s.mu.
func (s *ListService) pruneSelectionLocked() {
	if s.sel.Count() == 0 {
		return
	}
	existing := make(map[int64]struct{}, len(s.snapshot))
	for _, r := range s.snapshot {
		existing[r.ID] = struct{}{}
	}
	s.sel.Prune(existing)
}
