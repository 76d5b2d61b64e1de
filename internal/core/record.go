package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the storage representation of a purchase date (day
// granularity, no time component).
const DateLayout = "2006-01-02"

// DefaultUnit is used when a record carries quantity detail but no unit label.
const DefaultUnit = "pcs"

var (
	ErrEmptyName        = errors.New("empty item name")
	ErrNegativePrice    = errors.New("negative total price")
	ErrNegativeQuantity = errors.New("negative quantity")
	ErrInvalidDate      = errors.New("invalid date")
)

// Record is one logged purchase entry. TotalPrice is expressed in the
// smallest currency unit (whole rupiah). Quantity 0 means no detail was
// provided and the unit price is undefined.
type Record struct {
	ID         int64
	Date       string // YYYY-MM-DD
	Name       string
	TotalPrice int64
	Quantity   int64
	Unit       string
}

// Validate reports the first broken field constraint, if any.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.TotalPrice < 0 {
		return ErrNegativePrice
	}
	if r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if _, err := r.DateValue(); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// DateValue parses the record date. Records whose date does not parse are
// excluded from every filtered or grouped view but stay in storage.
func (r Record) DateValue() (time.Time, error) {
	d, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// UnitPrice derives the per-unit price, rounded down. The second return is
// false when no quantity detail was provided.
func (r Record) UnitPrice() (int64, bool) {
	if r.Quantity <= 0 {
		return 0, false
	}
	return r.TotalPrice / r.Quantity, true
}

// WithDefaults fills in the unit label for records that carry quantity
// detail without naming a unit.
func (r Record) WithDefaults() Record {
	if r.Quantity > 0 && strings.TrimSpace(r.Unit) == "" {
		r.Unit = DefaultUnit
	}
	return r
}
