// Package models provides domain models for the lead-generation application.
package models

// Platform represents a social media platform.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// IsValid reports whether the platform is a known value.
func (p Platform) IsValid() bool {
	return p == PlatformInstagram || p == PlatformTikTok
}

// Role represents a user's role in a team.
type Role string

const (
	RoleManager     Role = "manager"
	RoleParticipant Role = "participant"
)

// RelevanceTier represents how relevant a lead is to the campaign.
type RelevanceTier string

const (
	RelevanceHigh   RelevanceTier = "high"
	RelevanceMedium RelevanceTier = "medium"
	RelevanceLow    RelevanceTier = "low"
)

// IsValid reports whether the relevance tier is a known value.
func (r RelevanceTier) IsValid() bool {
	return r == RelevanceHigh || r == RelevanceMedium || r == RelevanceLow
}

// TradeDirection represents the side of a journal trade.
type TradeDirection string

const (
	TradeBuy  TradeDirection = "buy"
	TradeSell TradeDirection = "sell"
)

// TradeResult represents the outcome classification of a trade.
type TradeResult string

const (
	TradeSuccess TradeResult = "success"
	TradePending TradeResult = "pending"
	TradeFailed  TradeResult = "failed"
)

// Mood represents the mood recorded with a journal entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// IsValid reports whether the mood is a known value.
func (m Mood) IsValid() bool {
	return m == MoodHappy || m == MoodNeutral || m == MoodSad
}

// MessageStatus represents the state of an outreach message.
type MessageStatus string

const (
	MessageReplied  MessageStatus = "replied"
	MessagePending  MessageStatus = "pending"
	MessageFollowUp MessageStatus = "follow-up"
)
