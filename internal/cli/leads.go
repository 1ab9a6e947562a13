package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"leaddesk/internal/models"
	"leaddesk/internal/query"
	"leaddesk/internal/report"
	"leaddesk/internal/store"
)

// addLeadCommands adds lead management commands.
func addLeadCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Lead management",
		Long:  "Browse, search, and filter your leads.",
	}

	cmd.AddCommand(newLeadsListCmd(app))

	rootCmd.AddCommand(cmd)
}

func newLeadsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		Long: `List leads visible to you, optionally narrowed by facet filters
and a free-text search.

Facet filters use exact matching and combine with AND; "all" leaves a
facet unconstrained. The search query matches name, username,
description, and interests as a case-insensitive substring.`,
		Example: `  leaddesk leads list
  leaddesk leads list --platform instagram --relevance high
  leaddesk leads list --search weber`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized. Run 'leaddesk seed' first.")
				return nil
			}

			platform, _ := cmd.Flags().GetString("platform")
			relevance, _ := cmd.Flags().GetString("relevance")
			owner, _ := cmd.Flags().GetString("user")
			search, _ := cmd.Flags().GetString("search")

			leads, err := app.Store.GetLeads(cmd.Context(), store.LeadFilter{})
			if err != nil {
				output.Error("Failed to fetch leads: %v", err)
				return err
			}

			// Visibility first, then facets, then search
			leads = query.InScope(leads, app.Scope())
			leads = query.Filter(leads, query.Criteria{
				query.FacetPlatform:  platform,
				query.FacetRelevance: relevance,
				query.FacetOwner:     owner,
			})
			if strings.TrimSpace(search) != "" {
				leads = query.Search(leads, search)
			}

			if output.IsJSON() {
				return output.JSON(leads)
			}

			if len(leads) == 0 {
				output.Info("No leads match the current filters.")
				return nil
			}

			table := NewTable(output, "Name", "Username", "Platform", "Relevance", "Engagement", "Owner")
			for _, l := range leads {
				table.AddRow(
					l.Name,
					l.Username,
					string(l.Platform),
					string(l.Relevance),
					FormatPercent(l.EngagementLevel),
					l.OwnerID,
				)
			}
			table.Render()

			output.Println()
			output.Bold("Summary")
			output.Printf("  Leads:           %d\n", len(leads))
			avgEngagement := report.Average(leads, func(l models.Lead) float64 {
				return float64(l.EngagementLevel)
			})
			output.Printf("  Avg Engagement:  %.0f%%\n", avgEngagement)
			highCount := len(query.Filter(leads, query.Criteria{query.FacetRelevance: string(models.RelevanceHigh)}))
			output.Printf("  High Relevance:  %d\n", highCount)

			return nil
		},
	}

	cmd.Flags().String("platform", query.FacetAll, "filter by platform (instagram|tiktok|all)")
	cmd.Flags().String("relevance", query.FacetAll, "filter by relevance tier (high|medium|low|all)")
	cmd.Flags().String("user", query.FacetAll, "filter by owning user id (managers only)")
	cmd.Flags().String("search", "", "free-text search over name, username, description, and interests")

	return cmd
}
