// Package query implements the filtering engines behind the lead,
// audience, and catalog list views: free-text search, facet filters,
// and visibility scoping.
package query

import "strings"

// Searchable is implemented by records that can be matched against a
// free-text query.
type Searchable interface {
	// SearchFields returns the record's searchable text fields.
	SearchFields() []string
	// SearchInterests returns the record's interest tags.
	SearchInterests() []string
}

// Search returns the records matching the free-text query, preserving
// input order. A record matches when the trimmed, lowercased query is a
// substring of any searchable field or interest tag. An empty or
// whitespace-only query returns no results: the views behind this engine
// show nothing until a query is submitted.
func Search[T Searchable](records []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	matched := make([]T, 0, len(records))
	for _, r := range records {
		if matchesQuery(r, q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// matchesQuery reports whether any searchable field or interest of the
// record contains the already-lowercased query.
func matchesQuery(r Searchable, q string) bool {
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, interest := range r.SearchInterests() {
		if strings.Contains(strings.ToLower(interest), q) {
			return true
		}
	}
	return false
}
