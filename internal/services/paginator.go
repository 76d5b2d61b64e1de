package services

import (
	"sync/atomic"

	"belanja/internal/core"
)

// DefaultPageSize is how many records one page of the list view shows.
const DefaultPageSize = 20

// Paginator exposes an incrementally growing prefix of the filtered
// record list. It is independent of grouping: the cursor counts records,
// not buckets.
type Paginator struct {
	pageSize int
	loaded   int

	// busy gates re-entrant Advance calls: a scroll trigger re-fired
	// before the previous advance settles must not double-advance.
	busy atomic.Bool
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, loaded: pageSize}
}

// Loaded returns the current cursor value.
func (p *Paginator) Loaded() int { return p.loaded }

// Visible returns the loaded prefix of records.
func (p *Paginator) Visible(records []core.Record) []core.Record {
	n := p.loaded
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}

// HasMore reports whether Advance would grow the visible prefix.
func (p *Paginator) HasMore(total int) bool {
	return p.loaded < total
}

// Advance grows the cursor by one page, capped at total. At or past the
// end it is a no-op, and a call arriving while another is in flight is
// dropped. Returns whether the cursor moved.
func (p *Paginator) Advance(total int) bool {
	if !p.busy.CompareAndSwap(false, true) {
		return false
	}
	defer p.busy.Store(false)

	if p.loaded >= total {
		return false
	}
	p.loaded += p.pageSize
	if p.loaded > total {
		p.loaded = total
	}
	return true
}

// Reset rewinds the cursor to one page. Called whenever the active
// filter bounds change.
func (p *Paginator) Reset() {
	p.loaded = p.pageSize
}
