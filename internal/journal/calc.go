// Package journal implements the trading-journal domain logic: per-trade
// profit/loss computation, entry totals, and journal-wide statistics.
package journal

import (
	"time"

	"github.com/google/uuid"

	"leaddesk/internal/models"
	"leaddesk/internal/report"
)

// Outcome is the derived state of a single trade.
type Outcome struct {
	ProfitLoss *float64
	Result     models.TradeResult
}

// Compute derives the profit/loss and result classification of a trade.
// A trade stays pending until the exit price is known and both quantity
// and entry price are positive; bad numeric input never propagates, it
// just keeps the trade pending. A buy profits when the exit is above the
// entry, a sell profits when the exit is below it. Zero profit counts as
// success.
func Compute(direction models.TradeDirection, quantity, entryPrice float64, exitPrice *float64) Outcome {
	if exitPrice == nil || quantity <= 0 || entryPrice <= 0 {
		return Outcome{Result: models.TradePending}
	}

	diff := *exitPrice - entryPrice
	if direction == models.TradeSell {
		diff = entryPrice - *exitPrice
	}
	pnl := diff * quantity

	result := models.TradeSuccess
	if pnl < 0 {
		result = models.TradeFailed
	}
	return Outcome{ProfitLoss: &pnl, Result: result}
}

// Apply recomputes the trade's derived fields in place. Called whenever
// one of the input fields changes.
func Apply(t *models.Trade) {
	outcome := Compute(t.Direction, t.Quantity, t.EntryPrice, t.ExitPrice)
	t.ProfitLoss = outcome.ProfitLoss
	t.Result = outcome.Result
}

// EntryTotal sums the profit/loss of the trades, treating still-pending
// trades as 0.
func EntryTotal(trades []models.Trade) float64 {
	var total float64
	for _, t := range trades {
		if t.ProfitLoss != nil {
			total += *t.ProfitLoss
		}
	}
	return total
}

// NewEntry builds a journal entry from a day's trades. Each trade's
// derived fields and the entry total are recomputed here, so the total
// always matches the trades it contains.
func NewEntry(userID string, date time.Time, trades []models.Trade, mood models.Mood, learnings, goals string) models.JournalEntry {
	for i := range trades {
		Apply(&trades[i])
	}
	return models.JournalEntry{
		ID:               uuid.NewString(),
		UserID:           userID,
		Date:             date,
		Trades:           trades,
		Mood:             mood,
		Learnings:        learnings,
		GoalsForTomorrow: goals,
		TotalProfitLoss:  EntryTotal(trades),
	}
}

// Stats summarizes a set of journal entries.
type Stats struct {
	TotalTrades      int
	SuccessfulTrades int
	WinRate          int // whole percent, 0 when no trades
	TotalProfitLoss  float64
}

// Summarize computes journal-wide statistics across entries.
func Summarize(entries []models.JournalEntry) Stats {
	var stats Stats
	for _, e := range entries {
		stats.TotalTrades += len(e.Trades)
		for _, t := range e.Trades {
			if t.Result == models.TradeSuccess {
				stats.SuccessfulTrades++
			}
		}
		stats.TotalProfitLoss += e.TotalProfitLoss
	}
	stats.WinRate = report.Rate(float64(stats.SuccessfulTrades), float64(stats.TotalTrades))
	return stats
}
