// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"leaddesk/internal/models"
)

// DataStore defines the interface for data persistence. The filtering
// engines never touch the store directly; callers load record sets here
// and pass them on as plain slices.
type DataStore interface {
	// Users
	SaveUser(ctx context.Context, user *models.User) error
	GetUsers(ctx context.Context, filter UserFilter) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Leads
	SaveLead(ctx context.Context, lead *models.Lead) error
	GetLeads(ctx context.Context, filter LeadFilter) ([]models.Lead, error)

	// Audience profiles
	SaveProfile(ctx context.Context, profile *models.Profile) error
	GetProfiles(ctx context.Context) ([]models.Profile, error)

	// Training videos
	SaveVideo(ctx context.Context, video *models.TrainingVideo) error
	DeleteVideo(ctx context.Context, id string) error
	GetVideos(ctx context.Context, filter VideoFilter) ([]models.TrainingVideo, error)

	// Outreach messages
	SaveMessage(ctx context.Context, msg *models.Message) error
	GetMessages(ctx context.Context, filter MessageFilter) ([]models.Message, error)

	// Trading journal
	SaveJournalEntry(ctx context.Context, entry *models.JournalEntry) error
	GetJournal(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error)

	// Lifecycle
	Close() error
}

// UserFilter represents filters for querying users.
type UserFilter struct {
	Role      models.Role
	ManagerID string
	Limit     int
}

// LeadFilter represents filters for querying leads.
type LeadFilter struct {
	OwnerID string
	Limit   int
}

// VideoFilter represents filters for querying training videos.
type VideoFilter struct {
	Category string
	Limit    int
}

// MessageFilter represents filters for querying outreach messages.
type MessageFilter struct {
	UserID string
	Status models.MessageStatus
	Limit  int
}

// JournalFilter represents filters for querying journal entries.
type JournalFilter struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
