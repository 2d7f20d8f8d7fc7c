package main

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// groupMonths buckets records by calendar month. Records inside a month and
// the months themselves are ordered newest first. Ties keep input order.
func groupMonths(records []record) []monthGroup {
	byMonth := lo.GroupBy(records, func(r record) string {
		return r.Timestamp.Format(monthKeyLayout)
	})

	keys := lo.Keys(byMonth)
	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Compare(b, a)
	})

	return lo.Map(keys, func(key string, _ int) monthGroup {
		return monthGroup{Key: key, Records: newestFirst(byMonth[key])}
	})
}

// newestFirst returns a copy of records sorted by timestamp, newest first
func newestFirst(records []record) []record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b record) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return sorted
}
