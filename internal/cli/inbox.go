package cli

import (
	"github.com/spf13/cobra"

	"leaddesk/internal/models"
	"leaddesk/internal/query"
	"leaddesk/internal/report"
	"leaddesk/internal/store"
)

// addInboxCommands adds outreach inbox commands.
func addInboxCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Outreach inbox",
		Long:  "Review outreach messages and their reply status.",
	}

	cmd.AddCommand(newInboxListCmd(app))

	rootCmd.AddCommand(cmd)
}

func newInboxListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outreach messages",
		Long:  "List outreach messages visible to you, optionally filtered by status, with per-status counts.",
		Example: `  leaddesk inbox list
  leaddesk inbox list --status replied`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized. Run 'leaddesk seed' first.")
				return nil
			}

			status, _ := cmd.Flags().GetString("status")

			msgs, err := app.Store.GetMessages(cmd.Context(), store.MessageFilter{})
			if err != nil {
				output.Error("Failed to fetch messages: %v", err)
				return err
			}

			msgs = query.InScope(msgs, app.Scope())

			// Status counts cover the whole visible inbox, not the
			// filtered view
			counts := report.Tally(msgs, func(m models.Message) string {
				return string(m.Status)
			})

			msgs = query.Filter(msgs, query.Criteria{query.FacetStatus: status})

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"messages": msgs,
					"counts":   counts,
				})
			}

			if len(msgs) == 0 {
				output.Info("No messages match the current filters.")
				return nil
			}

			table := NewTable(output, "Lead", "Platform", "Status", "Sent", "Preview")
			for _, m := range msgs {
				table.AddRow(
					m.LeadName,
					string(m.Platform),
					string(m.Status),
					output.Date(m.SentAt),
					TruncateString(m.Preview, 45),
				)
			}
			table.Render()

			output.Println()
			output.Bold("Status")
			output.Printf("  Replied:    %d\n", counts[string(models.MessageReplied)])
			output.Printf("  Pending:    %d\n", counts[string(models.MessagePending)])
			output.Printf("  Follow-up:  %d\n", counts[string(models.MessageFollowUp)])

			return nil
		},
	}

	cmd.Flags().String("status", query.FacetAll, "filter by status (replied|pending|follow-up|all)")

	return cmd
}
