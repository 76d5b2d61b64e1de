package core

import (
	"strconv"
	"strings"
	"time"
)

// FormatIDR renders an amount in whole rupiah with id-ID digit grouping,
// e.g. 15000 -> "15.000".
func FormatIDR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatDateLabel renders a group header for a stored date key,
// e.g. "2024-05-02" -> "02-May-2024 (Thu)". Unparseable keys are returned
// as-is.
func FormatDateLabel(dateKey string) string {
	d, err := time.Parse(DateLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return d.Format("02-Jan-2006 (Mon)")
}

// FormatDateID renders a date the way the filter summary shows it,
// day/month/year without zero padding.
func FormatDateID(d time.Time) string {
	return strconv.Itoa(d.Day()) + "/" + strconv.Itoa(int(d.Month())) + "/" + strconv.Itoa(d.Year())
}

// ParseDigits extracts the digits of a free-form numeric input and parses
// them as a whole amount. Empty or digit-free input yields 0; this mirrors
// the lenient numeric fields of the entry form.
func ParseDigits(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
