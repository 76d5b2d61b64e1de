package services

import "sort"

// GroupState describes how much of a date bucket is selected.
type GroupState int

const (
	SelectionNone GroupState = iota
	SelectionPartial
	SelectionAll
)

func (g GroupState) String() string {
	switch g {
	case SelectionAll:
		return "all"
	case SelectionPartial:
		return "partial"
	}
	return "none"
}

// SelectionSet tracks the ids picked for a bulk action while selection
// mode is active. It is process-local and never persisted.
type SelectionSet struct {
	active   bool
	selected map[int64]struct{}
}

func NewSelectionSet() *SelectionSet {
	return &SelectionSet{selected: make(map[int64]struct{})}
}

// Enter switches selection mode on with exactly the triggering record
// selected, discarding any prior selection.
func (s *SelectionSet) Enter(id int64) {
	s.active = true
	s.selected = map[int64]struct{}{id: {}}
}

// Toggle flips membership of id without touching the mode flag.
func (s *SelectionSet) Toggle(id int64) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
}

// Exit leaves selection mode and forgets the selection.
func (s *SelectionSet) Exit() {
	s.active = false
	s.selected = make(map[int64]struct{})
}

func (s *SelectionSet) Active() bool { return s.active }

func (s *SelectionSet) Count() int { return len(s.selected) }

func (s *SelectionSet) Has(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

// IDs returns the selected ids in ascending order.
func (s *SelectionSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// GroupState reports whether none, some or all of memberIDs are selected.
// An empty member list counts as none.
func (s *SelectionSet) GroupState(memberIDs []int64) GroupState {
	if len(memberIDs) == 0 {
		return SelectionNone
	}
	picked := 0
	for _, id := range memberIDs {
		if s.Has(id) {
			picked++
		}
	}
	switch picked {
	case 0:
		return SelectionNone
	case len(memberIDs):
		return SelectionAll
	}
	return SelectionPartial
}

// ToggleGroup clears memberIDs from the selection when all of them are
// already selected; otherwise it selects them all, so both partial and
// empty bucket states resolve toward fully selected.
func (s *SelectionSet) ToggleGroup(memberIDs []int64) {
	if s.GroupState(memberIDs) == SelectionAll {
		for _, id := range memberIDs {
			delete(s.selected, id)
		}
		return
	}
	for _, id := range memberIDs {
		s.selected[id] = struct{}{}
	}
}

// Prune drops selected ids that no longer exist. A selection left empty
// deactivates the mode: a dangling selection over deleted records is an
// invariant violation.
func (s *SelectionSet) Prune(existing map[int64]struct{}) {
	for id := range s.selected {
		if _, ok := existing[id]; !ok {
			delete(s.selected, id)
		}
	}
	if s.active && len(s.selected) == 0 {
		s.active = false
	}
}
