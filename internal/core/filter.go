package core

import "time"

// DateRange is an inclusive day-level filter. A zero bound leaves that side
// open; the zero value matches every record with a parseable date.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether both bounds are open.
func (dr DateRange) IsZero() bool {
	return dr.From.IsZero() && dr.To.IsZero()
}

// Contains reports whether d falls inside the range, comparing at day
// granularity.
func (dr DateRange) Contains(d time.Time) bool {
	day := d.Truncate(24 * time.Hour)
	if !dr.From.IsZero() && day.Before(dr.From.Truncate(24*time.Hour)) {
		return false
	}
	if !dr.To.IsZero() && day.After(dr.To.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

// FilterByDate returns the subsequence of records inside the range,
// preserving input order. Records with unparseable dates never pass, even
// when the range is fully open.
func FilterByDate(records []Record, dr DateRange) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		d, err := r.DateValue()
		if err != nil {
			continue
		}
		if dr.Contains(d) {
			out = append(out, r)
		}
	}
	return out
}
