package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leaddesk/internal/errors"
	"leaddesk/internal/journal"
	"leaddesk/internal/models"
	"leaddesk/internal/query"
	"leaddesk/internal/store"
)

// addJournalCommands adds trading journal commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Trading journal",
		Long:  "Record daily trades and review your trading performance.",
	}

	cmd.AddCommand(newJournalAddCmd(app))
	cmd.AddCommand(newJournalListCmd(app))
	cmd.AddCommand(newJournalReportCmd(app))

	rootCmd.AddCommand(cmd)
}

// parseTradeSpec parses a trade given as
// "asset,direction,quantity,entry[,exit]". The exit price may be left
// off for a position that is still open.
func parseTradeSpec(spec string) (models.Trade, error) {
	parts := strings.Split(spec, ",")
	if len(parts) < 4 || len(parts) > 5 {
		return models.Trade{}, errors.NewValidationError("trade", spec,
			"expected asset,direction,quantity,entry[,exit]")
	}

	asset := strings.TrimSpace(parts[0])
	if asset == "" {
		return models.Trade{}, errors.NewValidationError("trade", spec, "asset is required")
	}

	direction := models.TradeDirection(strings.ToLower(strings.TrimSpace(parts[1])))
	if direction != models.TradeBuy && direction != models.TradeSell {
		return models.Trade{}, errors.NewValidationError("trade", spec, "direction must be buy or sell")
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return models.Trade{}, errors.NewValidationError("trade", spec, "quantity must be a number")
	}

	entryPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return models.Trade{}, errors.NewValidationError("trade", spec, "entry price must be a number")
	}

	trade := models.Trade{
		Asset:      asset,
		Direction:  direction,
		Quantity:   quantity,
		EntryPrice: entryPrice,
	}
	if len(parts) == 5 && strings.TrimSpace(parts[4]) != "" {
		exitPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[4]), 64)
		if err != nil {
			return models.Trade{}, errors.NewValidationError("trade", spec, "exit price must be a number")
		}
		trade.ExitPrice = &exitPrice
	}

	journal.Apply(&trade)
	return trade, nil
}

func newJournalAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		Long: `Record a day's trades together with your mood, learnings, and
goals. Each --trade takes "asset,direction,quantity,entry[,exit]";
profit/loss and the result classification are derived automatically,
and trades without an exit price stay pending.`,
		Example: `  leaddesk journal add --trade "AAPL,buy,10,150.00,155.50" --mood happy
  leaddesk journal add --trade "TSLA,sell,5,200.00,195.00" --trade "BTC,buy,0.5,42000" \
      --learnings "Geduld zahlt sich aus"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			specs, _ := cmd.Flags().GetStringArray("trade")
			dateStr, _ := cmd.Flags().GetString("date")
			moodStr, _ := cmd.Flags().GetString("mood")
			learnings, _ := cmd.Flags().GetString("learnings")
			goals, _ := cmd.Flags().GetString("goals")

			if len(specs) == 0 {
				err := errors.NewValidationError("trade", "", "at least one --trade is required")
				output.Error("%v", err)
				return err
			}

			mood := models.Mood(moodStr)
			if !mood.IsValid() {
				err := errors.NewValidationError("mood", moodStr, "must be happy, neutral, or sad")
				output.Error("%v", err)
				return err
			}

			date := time.Now()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					output.Error("Invalid date %q: %v", dateStr, err)
					return err
				}
				date = parsed
			}

			trades := make([]models.Trade, 0, len(specs))
			for _, spec := range specs {
				trade, err := parseTradeSpec(spec)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				trades = append(trades, trade)
			}

			entry := journal.NewEntry(app.Config.Team.UserID, date, trades, mood, learnings, goals)
			if err := app.Store.SaveJournalEntry(cmd.Context(), &entry); err != nil {
				output.Error("Failed to save journal entry: %v", err)
				return err
			}

			app.Logger.Info().
				Str("entry_id", entry.ID).
				Int("trades", len(entry.Trades)).
				Float64("total_pnl", entry.TotalProfitLoss).
				Msg("journal entry saved")

			if output.IsJSON() {
				return output.JSON(entry)
			}

			output.Success("✓ Journal entry saved")
			output.Println()
			for _, t := range entry.Trades {
				if t.ProfitLoss != nil {
					output.Printf("  %-8s %-4s  %s\n", t.Asset, t.Direction, output.FormatPnL(*t.ProfitLoss))
				} else {
					output.Printf("  %-8s %-4s  pending\n", t.Asset, t.Direction)
				}
			}
			output.Println()
			output.Printf("  Total P&L: %s\n", output.FormatPnL(entry.TotalProfitLoss))
			return nil
		},
	}

	cmd.Flags().StringArray("trade", nil, `trade as "asset,direction,quantity,entry[,exit]" (repeatable)`)
	cmd.Flags().String("date", "", "entry date as YYYY-MM-DD (default: today)")
	cmd.Flags().String("mood", string(models.MoodNeutral), "mood (happy|neutral|sad)")
	cmd.Flags().String("learnings", "", "what you learned today")
	cmd.Flags().String("goals", "", "goals for tomorrow")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long:  "List journal entries visible to you, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")

			// Scope the query itself so the limit window holds the
			// caller's entries, not other users' newer ones
			filter := store.JournalFilter{Limit: limit}
			if !app.Config.IsManager() {
				filter.UserID = app.Config.Team.UserID
			}
			entries, err := app.Store.GetJournal(cmd.Context(), filter)
			if err != nil {
				output.Error("Failed to fetch journal: %v", err)
				return err
			}
			entries = query.InScope(entries, app.Scope())

			if output.IsJSON() {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				output.Info("No journal entries yet.")
				output.Dim("Tip: record your first day with 'leaddesk journal add'.")
				return nil
			}

			for _, e := range entries {
				output.Bold("%s — %d trades — %s", output.Date(e.Date), len(e.Trades),
					output.FormatPnL(e.TotalProfitLoss))
				output.Printf("  Mood: %s\n", e.Mood)
				for _, t := range e.Trades {
					line := fmt.Sprintf("  %-8s %-4s qty %g @ %s", t.Asset, t.Direction,
						t.Quantity, FormatCurrency(t.EntryPrice))
					if t.ExitPrice != nil {
						line += fmt.Sprintf(" → %s", FormatCurrency(*t.ExitPrice))
					}
					if t.ProfitLoss != nil {
						line += "  " + output.FormatPnL(*t.ProfitLoss)
					} else {
						line += "  pending"
					}
					output.Println(line)
				}
				if e.Learnings != "" {
					output.Dim("  Learnings: %s", e.Learnings)
				}
				if e.GoalsForTomorrow != "" {
					output.Dim("  Goals: %s", e.GoalsForTomorrow)
				}
				output.Println()
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "maximum entries to show")

	return cmd
}

func newJournalReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show journal statistics",
		Long:  "Display trade counts, win rate, and total profit/loss across your journal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			filter := store.JournalFilter{}
			if !app.Config.IsManager() {
				filter.UserID = app.Config.Team.UserID
			}
			entries, err := app.Store.GetJournal(cmd.Context(), filter)
			if err != nil {
				output.Error("Failed to fetch journal: %v", err)
				return err
			}
			entries = query.InScope(entries, app.Scope())

			stats := journal.Summarize(entries)

			if output.IsJSON() {
				return output.JSON(stats)
			}

			output.Bold("Journal Report")
			output.Println()
			output.Printf("  Entries:            %d\n", len(entries))
			output.Printf("  Total Trades:       %d\n", stats.TotalTrades)
			output.Printf("  Successful Trades:  %d\n", stats.SuccessfulTrades)
			output.Printf("  Win Rate:           %s\n", FormatPercent(stats.WinRate))
			output.Printf("  Total P&L:          %s\n", output.FormatPnL(stats.TotalProfitLoss))
			return nil
		},
	}
}
