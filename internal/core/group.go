package core

import "sort"

// DateGroup is a display bucket of records sharing one date, with the
// exact integer sum of their total prices.
type DateGroup struct {
	Date    string
	Records []Record
	Total   int64
}

// GroupByDate buckets records by exact date-string equality. Buckets come
// back most recent first; within a bucket, records keep the order they
// arrived in. ISO dates sort lexicographically, so a plain string sort
// gives chronological order.
func GroupByDate(records []Record) []DateGroup {
	if len(records) == 0 {
		return nil
	}

	index := make(map[string]int, len(records))
	groups := make([]DateGroup, 0, len(records))
	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			i = len(groups)
			index[r.Date] = i
			groups = append(groups, DateGroup{Date: r.Date})
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].Total += r.TotalPrice
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Date > groups[b].Date
	})
	return groups
}

// MemberIDs returns the ids of the bucket's records, in bucket order.
func (g DateGroup) MemberIDs() []int64 {
	ids := make([]int64, len(g.Records))
	for i, r := range g.Records {
		ids[i] = r.ID
	}
	return ids
}
