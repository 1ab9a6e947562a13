package query

// FacetAll is the sentinel selection meaning "no constraint on this facet".
const FacetAll = "all"

// Facet names understood by the domain records.
const (
	FacetPlatform  = "platform"
	FacetRelevance = "relevance"
	FacetOwner     = "owner"
	FacetCategory  = "category"
	FacetStatus    = "status"
)

// Criteria maps a facet name to its selected value.
type Criteria map[string]string

// Faceted is implemented by records that expose discrete facet values.
type Faceted interface {
	// FacetValue returns the record's value for the named facet, and
	// whether the facet exists on this record type.
	FacetValue(name string) (string, bool)
}

// Filter returns the records matching every constrained facet, preserving
// input order. A facet set to FacetAll or the empty string is
// unconstrained; any other value must equal the record's facet value
// exactly. Facets unknown to the record type match nothing.
func Filter[T Faceted](records []T, criteria Criteria) []T {
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if matchesCriteria(r, criteria) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesCriteria(r Faceted, criteria Criteria) bool {
	for name, want := range criteria {
		if want == FacetAll || want == "" {
			continue
		}
		got, ok := r.FacetValue(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}
