package services

import (
	"fmt"

	"belanja/internal/core"
)

// RecordView is one list row with its display strings and selection
// overlay resolved.
type RecordView struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Name       string `json:"name"`
	TotalPrice int64  `json:"totalPrice"`
	Quantity   int64  `json:"quantity"`
	Unit       string `json:"unit,omitempty"`
	UnitPrice  *int64 `json:"unitPrice,omitempty"`
	Selected   bool   `json:"selected"`

	TotalDisplay  string `json:"totalDisplay"`
	DetailDisplay string `json:"detailDisplay,omitempty"`
}

// GroupView is one date bucket of the visible list.
type GroupView struct {
	Date         string       `json:"date"`
	Label        string       `json:"label"`
	Total        int64        `json:"total"`
	TotalDisplay string       `json:"totalDisplay"`
	Selection    string       `json:"selection"`
	Records      []RecordView `json:"records"`
}

// ListView is everything the list UI renders: the grouped visible
// prefix, the filter summary and the selection mode state.
type ListView struct {
	TotalCount   int         `json:"totalCount"`
	ShownCount   int         `json:"shownCount"`
	VisibleCount int         `json:"visibleCount"`
	HasMore      bool        `json:"hasMore"`
	Summary      string      `json:"summary"`
	Selection    bool        `json:"selectionActive"`
	Selected     int         `json:"selectedCount"`
	Groups       []GroupView `json:"groups"`
}

// View materializes the current list state: filter, paginate, group,
// then overlay selection.
func (s *ListService) View() ListView {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := core.FilterByDate(s.snapshot, s.rng)
	visible := s.pager.Visible(filtered)
	groups := core.GroupByDate(visible)

	view := ListView{
		TotalCount:   len(s.snapshot),
		ShownCount:   len(filtered),
		VisibleCount: len(visible),
		HasMore:      s.pager.HasMore(len(filtered)),
		Summary:      summaryLine(len(s.snapshot), len(filtered), s.rng),
		Selection:    s.sel.Active(),
		Selected:     s.sel.Count(),
		Groups:       make([]GroupView, len(groups)),
	}

	for i, g := range groups {
		gv := GroupView{
			Date:         g.Date,
			Label:        core.FormatDateLabel(g.Date),
			Total:        g.Total,
			TotalDisplay: "IDR " + core.FormatIDR(g.Total),
			Selection:    s.sel.GroupState(g.MemberIDs()).String(),
			Records:      make([]RecordView, len(g.Records)),
		}
		for j, r := range g.Records {
			gv.Records[j] = recordView(r, s.sel.Has(r.ID))
		}
		view.Groups[i] = gv
	}
	return view
}

func recordView(r core.Record, selected bool) RecordView {
	rv := RecordView{
		ID:           r.ID,
		Date:         r.Date,
		Name:         r.Name,
		TotalPrice:   r.TotalPrice,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		Selected:     selected,
		TotalDisplay: "IDR " + core.FormatIDR(r.TotalPrice),
	}
	if up, ok := r.UnitPrice(); ok {
		rv.UnitPrice = &up
		rv.DetailDisplay = fmt.Sprintf("%s %s × IDR %s",
			core.FormatIDR(r.Quantity), r.Unit, core.FormatIDR(up))
	}
	return rv
}

// summaryLine mirrors the list header text of the original app.
func summaryLine(total, shown int, rng core.DateRange) string {
	plural := "s"
	if total == 1 {
		plural = ""
	}
	if rng.IsZero() {
		return fmt.Sprintf("Showing all %d record%s", total, plural)
	}

	var rangeText string
	switch {
	case !rng.From.IsZero() && !rng.To.IsZero():
		rangeText = fmt.Sprintf("from %s to %s", core.FormatDateID(rng.From), core.FormatDateID(rng.To))
	case !rng.From.IsZero():
		rangeText = "from " + core.FormatDateID(rng.From)
	default:
		rangeText = "until " + core.FormatDateID(rng.To)
	}
	return fmt.Sprintf("Showing %d of %d record%s (%s)", shown, total, plural, rangeText)
}
