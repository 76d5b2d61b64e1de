package core

import "testing"

func TestGroupByDateEmpty(t *testing.T) {
	if got := GroupByDate(nil); len(got) != 0 {
		t.Fatalf("expected no groups, got %d", len(got))
	}
}

func TestGroupByDate(t *testing.T) {
	records := []Record{
		{ID: 1, Date: "2024-05-01", Name: "Milk", TotalPrice: 15000},
		{ID: 2, Date: "2024-05-03", Name: "Bread", TotalPrice: 8000},
		{ID: 3, Date: "2024-05-01", Name: "Eggs", TotalPrice: 5000},
		{ID: 4, Date: "2024-05-02", Name: "Rice", TotalPrice: 60000},
	}
	groups := GroupByDate(records)

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Date <= groups[i].Date {
			t.Fatalf("bucket keys not strictly descending: %q then %q", groups[i-1].Date, groups[i].Date)
		}
	}
	if groups[0].Date != "2024-05-03" || groups[2].Date != "2024-05-01" {
		t.Fatalf("unexpected bucket order: %q .. %q", groups[0].Date, groups[2].Date)
	}

	// intra-bucket arrival order is preserved
	first := groups[2]
	if first.Records[0].ID != 1 || first.Records[1].ID != 3 {
		t.Fatalf("bucket member order changed: %v", first.MemberIDs())
	}
	if first.Total != 20000 {
		t.Fatalf("got bucket total %d, want 20000", first.Total)
	}

	// the bucket totals account for every input record exactly once
	var sum, want int64
	for _, g := range groups {
		sum += g.Total
	}
	for _, r := range records {
		want += r.TotalPrice
	}
	if sum != want {
		t.Fatalf("bucket totals sum to %d, input sums to %d", sum, want)
	}
}
