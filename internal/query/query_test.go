package query

import (
	"reflect"
	"testing"

	"leaddesk/internal/models"
)

func sampleProfiles() []models.Profile {
	return []models.Profile{
		{
			ID: "1", Name: "Anna Müller", Username: "@anna.fitness",
			Bio:       "Personal Trainer",
			Interests: []string{"Sport", "Fitness"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "2", Name: "Sophie Anna", Username: "@sophie.anna",
			Bio:       "Fashion & Beauty",
			Interests: []string{"Mode", "Beauty"},
			Platform:  models.PlatformTikTok,
		},
	}
}

func sampleLeads() []models.Lead {
	return []models.Lead{
		{ID: "1", Name: "Sarah Weber", Username: "@sarahweber", Platform: models.PlatformInstagram,
			Relevance: models.RelevanceHigh, OwnerID: "user-1"},
		{ID: "2", Name: "Max Müller", Username: "@maxmueller", Platform: models.PlatformTikTok,
			Relevance: models.RelevanceHigh, OwnerID: "user-2"},
		{ID: "3", Name: "Lisa Schmidt", Username: "@lisaschmidt", Platform: models.PlatformInstagram,
			Relevance: models.RelevanceMedium, OwnerID: "user-3"},
	}
}

func TestSearchMatchesInterests(t *testing.T) {
	matches := Search(sampleProfiles(), "Sport")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ID != "1" {
		t.Errorf("expected profile 1, got %s", matches[0].ID)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"anna", []string{"1", "2"}},
		{"ANNA", []string{"1", "2"}},
		{"  fitness  ", []string{"1"}},
		{"beaut", []string{"2"}},
		{"nothing-matches-this", nil},
	}
	for _, tc := range cases {
		matches := Search(sampleProfiles(), tc.query)
		var got []string
		for _, m := range matches {
			got = append(got, m.ID)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Search(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	for _, query := range []string{"", "   ", "\t"} {
		if matches := Search(sampleProfiles(), query); len(matches) != 0 {
			t.Errorf("Search(%q) returned %d matches, want 0", query, len(matches))
		}
	}
}

func TestFilterFacetsCombineWithAnd(t *testing.T) {
	leads := sampleLeads()

	matches := Filter(leads, Criteria{
		FacetPlatform:  string(models.PlatformInstagram),
		FacetRelevance: string(models.RelevanceHigh),
	})
	if len(matches) != 1 || matches[0].ID != "1" {
		t.Fatalf("expected only lead 1, got %+v", matches)
	}
}

func TestFilterAllSentinelIsUnconstrained(t *testing.T) {
	leads := sampleLeads()

	withSentinel := Filter(leads, Criteria{FacetPlatform: FacetAll})
	withoutFacet := Filter(leads, Criteria{})
	if !reflect.DeepEqual(withSentinel, withoutFacet) {
		t.Error("FacetAll should be equivalent to omitting the facet")
	}
	if len(withSentinel) != len(leads) {
		t.Errorf("expected all %d leads, got %d", len(leads), len(withSentinel))
	}
}

func TestFilterUnrecognizedValueFailsClosed(t *testing.T) {
	matches := Filter(sampleLeads(), Criteria{FacetPlatform: "myspace"})
	if len(matches) != 0 {
		t.Errorf("unknown facet value should match nothing, got %d", len(matches))
	}
}

func TestFilterUnknownFacetNameFailsClosed(t *testing.T) {
	matches := Filter(sampleLeads(), Criteria{"no-such-facet": "anything"})
	if len(matches) != 0 {
		t.Errorf("unknown facet name should match nothing, got %d", len(matches))
	}
}

func TestFilterComposesWithSearch(t *testing.T) {
	leads := Filter(sampleLeads(), Criteria{FacetPlatform: string(models.PlatformInstagram)})
	matches := Search(leads, "weber")
	if len(matches) != 1 || matches[0].ID != "1" {
		t.Fatalf("expected only lead 1, got %+v", matches)
	}
}

func TestScopeVisibility(t *testing.T) {
	leads := sampleLeads()

	all := InScope(leads, ScopeAll())
	if len(all) != 3 {
		t.Errorf("manager scope should see all leads, got %d", len(all))
	}

	owned := InScope(leads, ScopeOwned("user-2"))
	if len(owned) != 1 || owned[0].ID != "2" {
		t.Fatalf("participant scope should see only owned leads, got %+v", owned)
	}
}
