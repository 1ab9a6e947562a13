package models

import "time"

// UserStats holds per-user outreach metrics.
type UserStats struct {
	NewLeads       int
	Replies        int
	OpenMessages   int
	ConversionRate float64 // percent, 0-100
}

// User represents a team member or manager.
type User struct {
	ID                string
	Name              string
	Email             string
	Role              Role
	Avatar            string
	ManagerID         string // empty for managers
	InstagramUsername string
	TikTokUsername    string
	Stats             UserStats
	JoinedAt          time.Time
}

// InstagramConnected reports whether the user has linked an Instagram account.
func (u User) InstagramConnected() bool {
	return u.InstagramUsername != ""
}

// TikTokConnected reports whether the user has linked a TikTok account.
func (u User) TikTokConnected() bool {
	return u.TikTokUsername != ""
}
