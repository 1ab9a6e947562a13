package models

// Lead represents a contacted or contactable social-media profile
// tracked by a user.
type Lead struct {
	ID              string
	Name            string
	Username        string
	Platform        Platform
	Avatar          string
	Description     string
	Relevance       RelevanceTier
	Interests       []string
	EngagementLevel int // percent, 0-100
	OwnerID         string
}

// SearchFields returns the free-text searchable fields of the lead.
func (l Lead) SearchFields() []string {
	return []string{l.Name, l.Username, l.Description}
}

// SearchInterests returns the lead's interest tags.
func (l Lead) SearchInterests() []string {
	return l.Interests
}

// FacetValue returns the lead's value for a named facet.
func (l Lead) FacetValue(name string) (string, bool) {
	switch name {
	case "platform":
		return string(l.Platform), true
	case "relevance":
		return string(l.Relevance), true
	case "owner":
		return l.OwnerID, true
	}
	return "", false
}

// Owner returns the ID of the user the lead belongs to.
func (l Lead) Owner() string {
	return l.OwnerID
}

// Profile represents a candidate account surfaced by an audience search,
// not yet converted to a lead.
type Profile struct {
	ID         string
	Name       string
	Username   string
	Avatar     string
	Bio        string
	Followers  int
	Engagement float64 // percent, 0-100
	Interests  []string
	Platform   Platform
}

// SearchFields returns the free-text searchable fields of the profile.
func (p Profile) SearchFields() []string {
	return []string{p.Name, p.Username, p.Bio}
}

// SearchInterests returns the profile's interest tags.
func (p Profile) SearchInterests() []string {
	return p.Interests
}

// FacetValue returns the profile's value for a named facet.
func (p Profile) FacetValue(name string) (string, bool) {
	if name == "platform" {
		return string(p.Platform), true
	}
	return "", false
}
