package models

import "time"

// Message represents an outreach message sent to a lead.
type Message struct {
	ID       string
	UserID   string
	LeadName string
	Platform Platform
	Preview  string
	Status   MessageStatus
	SentAt   time.Time
}

// Owner returns the ID of the user who sent the message.
func (m Message) Owner() string {
	return m.UserID
}

// FacetValue returns the message's value for a named facet.
func (m Message) FacetValue(name string) (string, bool) {
	switch name {
	case "platform":
		return string(m.Platform), true
	case "status":
		return string(m.Status), true
	case "owner":
		return m.UserID, true
	}
	return "", false
}
