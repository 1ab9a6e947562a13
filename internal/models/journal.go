package models

import "time"

// Trade represents a single buy/sell transaction recorded in the
// trading journal.
type Trade struct {
	Asset      string
	Direction  TradeDirection
	Quantity   float64
	EntryPrice float64
	ExitPrice  *float64 // nil while the position is open
	Notes      string
	Result     TradeResult
	ProfitLoss *float64 // nil until the trade is closed out
}

// JournalEntry represents one day's trading record: the trades taken
// plus the reflections written alongside them.
type JournalEntry struct {
	ID               string
	UserID           string
	Date             time.Time
	Trades           []Trade
	Mood             Mood
	Learnings        string
	GoalsForTomorrow string
	TotalProfitLoss  float64
}

// Owner returns the ID of the user the entry belongs to.
func (e JournalEntry) Owner() string {
	return e.UserID
}
