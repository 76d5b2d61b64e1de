package core

import (
	"testing"
	"time"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestFilterByDate(t *testing.T) {
	records := []Record{
		{ID: 1, Date: "2024-05-01", Name: "a", TotalPrice: 1},
		{ID: 2, Date: "2024-05-03", Name: "b", TotalPrice: 2},
		{ID: 3, Date: "not-a-date", Name: "c", TotalPrice: 3},
		{ID: 4, Date: "2024-05-05", Name: "d", TotalPrice: 4},
	}

	cases := []struct {
		name string
		dr   DateRange
		want []int64
	}{
		{"open range keeps valid dates only", DateRange{}, []int64{1, 2, 4}},
		{"both bounds inclusive", DateRange{From: day(2024, 5, 1), To: day(2024, 5, 3)}, []int64{1, 2}},
		{"from only", DateRange{From: day(2024, 5, 3)}, []int64{2, 4}},
		{"to only", DateRange{To: day(2024, 5, 1)}, []int64{1}},
		{"empty window", DateRange{From: day(2024, 6, 1), To: day(2024, 6, 30)}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByDate(records, tc.dr)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tc.want))
			}
			for i, r := range got {
				if r.ID != tc.want[i] {
					t.Fatalf("position %d: got id %d, want %d", i, r.ID, tc.want[i])
				}
			}
		})
	}
}

func TestFilterByDateIgnoresTimeOfDay(t *testing.T) {
	records := []Record{{ID: 1, Date: "2024-05-01", Name: "a", TotalPrice: 1}}
	dr := DateRange{
		From: time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
		To:   time.Date(2024, 5, 1, 0, 1, 0, 0, time.UTC),
	}
	if got := FilterByDate(records, dr); len(got) != 1 {
		t.Fatalf("day-level comparison should include the record, got %d", len(got))
	}
}
