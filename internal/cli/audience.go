package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"leaddesk/internal/models"
	"leaddesk/internal/query"
	"leaddesk/internal/report"
)

// addAudienceCommands adds audience analysis commands.
func addAudienceCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "audience",
		Short: "Audience analysis",
		Long:  "Search the audience profile pool for lead candidates.",
	}

	cmd.AddCommand(newAudienceAnalyzeCmd(app))

	rootCmd.AddCommand(cmd)
}

func newAudienceAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <query>",
		Short: "Search audience profiles",
		Long: `Search the audience profile pool by keyword. Profiles match when
the query appears in their name, username, bio, or interests.`,
		Example: `  leaddesk audience analyze Sport
  leaddesk audience analyze fitness --platform instagram`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized. Run 'leaddesk seed' first.")
				return nil
			}

			searchQuery := strings.Join(args, " ")
			platform, _ := cmd.Flags().GetString("platform")

			profiles, err := app.Store.GetProfiles(cmd.Context())
			if err != nil {
				output.Error("Failed to fetch profiles: %v", err)
				return err
			}

			matches := query.Search(profiles, searchQuery)
			matches = query.Filter(matches, query.Criteria{query.FacetPlatform: platform})

			if output.IsJSON() {
				return output.JSON(matches)
			}

			if len(matches) == 0 {
				output.Info("No profiles found for %q.", searchQuery)
				return nil
			}

			output.Bold("Audience matches for %q", searchQuery)
			output.Println()

			table := NewTable(output, "Name", "Username", "Platform", "Followers", "Engagement", "Interests")
			for _, p := range matches {
				table.AddRow(
					p.Name,
					p.Username,
					string(p.Platform),
					FormatFollowers(p.Followers),
					FormatEngagement(p.Engagement),
					TruncateString(strings.Join(p.Interests, ", "), 40),
				)
			}
			table.Render()

			output.Println()
			output.Bold("Summary")
			output.Printf("  Profiles:        %d\n", len(matches))
			totalReach := report.Sum(matches, func(p models.Profile) float64 {
				return float64(p.Followers)
			})
			output.Printf("  Combined Reach:  %s\n", FormatFollowers(int(totalReach)))
			avgEngagement := report.Average(matches, func(p models.Profile) float64 {
				return p.Engagement
			})
			output.Printf("  Avg Engagement:  %s\n", FormatEngagement(avgEngagement))

			return nil
		},
	}

	cmd.Flags().String("platform", query.FacetAll, "filter by platform (instagram|tiktok|all)")

	return cmd
}
