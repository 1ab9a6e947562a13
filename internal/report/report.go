// Package report computes summary aggregates over filtered record sets:
// counts, sums, averages, percentage rates, and rankings. Every report is
// recomputed in full from the records it is given; nothing is cached or
// maintained incrementally.
package report

import (
	"math"
	"sort"
)

// Sum returns the total of metric over the records.
func Sum[T any](records []T, metric func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += metric(r)
	}
	return total
}

// Average returns the mean of metric over the records. The average of an
// empty set is 0.
func Average[T any](records []T, metric func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, metric) / float64(len(records))
}

// Rate returns numerator/denominator as a percentage rounded to the
// nearest whole number. A zero denominator yields 0.
func Rate(numerator, denominator float64) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(numerator / denominator * 100))
}

// Rank returns the records sorted by metric descending. The sort is
// stable: ties keep their original relative order. The input slice is
// not modified.
func Rank[T any](records []T, metric func(T) float64) []T {
	ranked := make([]T, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i]) > metric(ranked[j])
	})
	return ranked
}

// Tally counts records per key, e.g. messages per status or videos per
// category.
func Tally[T any](records []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}
