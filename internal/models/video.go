package models

import "time"

// TrainingVideo represents an entry in the training-video catalog.
type TrainingVideo struct {
	ID          string
	Title       string
	Description string
	Duration    string // mm:ss label
	Category    string
	UploadedBy  string
	UploadedAt  time.Time
}

// FacetValue returns the video's value for a named facet.
func (v TrainingVideo) FacetValue(name string) (string, bool) {
	if name == "category" {
		return v.Category, true
	}
	return "", false
}
