package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"leaddesk/internal/models"
	"leaddesk/internal/report"
	"leaddesk/internal/store"
)

// addTeamCommands adds team performance commands.
func addTeamCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team performance",
		Long:  "Compare outreach performance across the team.",
	}

	cmd.AddCommand(newTeamStatsCmd(app))
	cmd.AddCommand(newTeamRankCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTeamStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show team totals",
		Long:  "Display total leads, replies, open messages, and average conversion rate for the team.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized. Run 'leaddesk seed' first.")
				return nil
			}

			members, err := app.Store.GetUsers(cmd.Context(), store.UserFilter{
				Role: models.RoleParticipant,
			})
			if err != nil {
				output.Error("Failed to fetch team members: %v", err)
				return err
			}

			summary := report.SummarizeTeam(members)

			if output.IsJSON() {
				return output.JSON(summary)
			}

			output.Bold("Team Overview")
			output.Println()
			output.Printf("  Members:          %d\n", summary.Members)
			output.Printf("  New Leads:        %d\n", summary.NewLeads)
			output.Printf("  Replies:          %d\n", summary.Replies)
			output.Printf("  Open Messages:    %d\n", summary.OpenMessages)
			output.Printf("  Avg Conversion:   %s\n", FormatPercent(summary.AvgConversionRate))

			return nil
		},
	}
}

func newTeamRankCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank team members by a metric",
		Long: `Rank team members by an outreach metric, best first. Ties keep
their original order.`,
		Example: `  leaddesk team rank --metric conversion
  leaddesk team rank --metric leads`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized. Run 'leaddesk seed' first.")
				return nil
			}

			metric, _ := cmd.Flags().GetString("metric")

			members, err := app.Store.GetUsers(cmd.Context(), store.UserFilter{
				Role: models.RoleParticipant,
			})
			if err != nil {
				output.Error("Failed to fetch team members: %v", err)
				return err
			}

			ranked, err := report.RankUsers(members, metric)
			if err != nil {
				output.Error("%v (use leads|replies|conversion|open)", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(ranked)
			}

			if len(ranked) == 0 {
				output.Info("No team members found.")
				return nil
			}

			metricFn, _ := report.UserMetric(metric)

			output.Bold("Team Ranking — %s", metric)
			output.Println()

			table := NewTable(output, "#", "Name", "Leads", "Replies", "Open", "Conversion")
			for i, u := range ranked {
				table.AddRow(
					fmt.Sprintf("%d", i+1),
					u.Name,
					fmt.Sprintf("%d", u.Stats.NewLeads),
					fmt.Sprintf("%d", u.Stats.Replies),
					fmt.Sprintf("%d", u.Stats.OpenMessages),
					FormatPercent(int(u.Stats.ConversionRate)),
				)
			}
			table.Render()

			if top, ok := report.TopPerformer(ranked, metric); ok {
				output.Println()
				output.Success("🏆 Top performer: %s (%.0f)", top.Name, metricFn(top))
			}

			return nil
		},
	}

	cmd.Flags().String("metric", report.MetricConversion, "ranking metric (leads|replies|conversion|open)")

	return cmd
}
