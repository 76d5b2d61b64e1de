package services

import (
	"reflect"
	"testing"
)

func TestSelectionEnterDiscardsPrior(t *testing.T) {
	s := NewSelectionSet()
	s.Enter(1)
	s.Toggle(2)
	s.Toggle(3)

	s.Enter(9)
	if !s.Active() || s.Count() != 1 || !s.Has(9) {
		t.Fatalf("enter should restart with only the trigger: %v", s.IDs())
	}
}

func TestSelectionToggleAndExit(t *testing.T) {
	s := NewSelectionSet()
	s.Enter(1)
	s.Toggle(2)
	s.Toggle(1) // deselecting does not leave the mode
	if !s.Active() {
		t.Fatal("toggle must not change the mode flag")
	}
	if !reflect.DeepEqual(s.IDs(), []int64{2}) {
		t.Fatalf("got %v, want [2]", s.IDs())
	}

	s.Exit()
	if s.Active() || s.Count() != 0 {
		t.Fatal("exit should clear mode and selection")
	}
}

func TestSelectionGroupState(t *testing.T) {
	s := NewSelectionSet()
	s.Enter(1)
	s.Toggle(2)

	cases := []struct {
		name    string
		members []int64
		want    GroupState
	}{
		{"all selected", []int64{1, 2}, SelectionAll},
		{"partial", []int64{1, 3}, SelectionPartial},
		{"none", []int64{4, 5}, SelectionNone},
		{"empty members", nil, SelectionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.GroupState(tc.members); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectionToggleGroup(t *testing.T) {
	s := NewSelectionSet()
	members := []int64{1, 2, 3}

	s.Enter(1) // partial
	s.ToggleGroup(members)
	if s.GroupState(members) != SelectionAll {
		t.Fatal("partial should resolve toward all")
	}

	s.ToggleGroup(members)
	if s.GroupState(members) != SelectionNone {
		t.Fatal("all should toggle back to none")
	}
}

func TestSelectionToggleGroupRoundTrip(t *testing.T) {
	// Toggling twice returns to the starting state when it was none or
	// all; a partial start instead resolves to all, then clears.
	members := []int64{1, 2, 3}

	t.Run("from none", func(t *testing.T) {
		s := NewSelectionSet()
		s.Enter(5) // outside the group, state for members is none

		s.ToggleGroup(members)
		s.ToggleGroup(members)
		if got := s.GroupState(members); got != SelectionNone {
			t.Fatalf("state drifted: none -> %v", got)
		}
		if !s.Has(5) {
			t.Fatal("ids outside the group must be untouched")
		}
	})

	t.Run("from all", func(t *testing.T) {
		s := NewSelectionSet()
		s.Enter(1)
		s.Toggle(2)
		s.Toggle(3)
		s.Toggle(5)

		s.ToggleGroup(members)
		s.ToggleGroup(members)
		if got := s.GroupState(members); got != SelectionAll {
			t.Fatalf("state drifted: all -> %v", got)
		}
		if !s.Has(5) {
			t.Fatal("ids outside the group must be untouched")
		}
	})

	t.Run("from partial", func(t *testing.T) {
		s := NewSelectionSet()
		s.Enter(1)
		s.Toggle(5)

		s.ToggleGroup(members)
		if got := s.GroupState(members); got != SelectionAll {
			t.Fatalf("partial should resolve to all, got %v", got)
		}
		s.ToggleGroup(members)
		if got := s.GroupState(members); got != SelectionNone {
			t.Fatalf("second toggle should clear the group, got %v", got)
		}
		if !s.Has(5) {
			t.Fatal("ids outside the group must be untouched")
		}
	})
}

func TestSelectionPrune(t *testing.T) {
	s := NewSelectionSet()
	s.Enter(1)
	s.Toggle(2)

	s.Prune(map[int64]struct{}{2: {}})
	if s.Has(1) || !s.Has(2) {
		t.Fatalf("got %v, want [2]", s.IDs())
	}
	if !s.Active() {
		t.Fatal("mode stays on while something remains selected")
	}

	s.Prune(map[int64]struct{}{})
	if s.Active() || s.Count() != 0 {
		t.Fatal("emptied selection must deactivate the mode")
	}
}
