package cli

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"leaddesk/internal/errors"
	"leaddesk/internal/models"
	"leaddesk/internal/query"
	"leaddesk/internal/report"
	"leaddesk/internal/store"
)

// addVideoCommands adds training-video catalog commands.
func addVideoCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Training video catalog",
		Long:  "Browse and manage the team's training videos.",
	}

	cmd.AddCommand(newVideosListCmd(app))
	cmd.AddCommand(newVideosAddCmd(app))
	cmd.AddCommand(newVideosDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newVideosListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List training videos",
		Long:  "List training videos newest first, optionally filtered by category, with per-category counts.",
		Example: `  leaddesk videos list
  leaddesk videos list --category "Kommunikation"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized. Run 'leaddesk seed' first.")
				return nil
			}

			category, _ := cmd.Flags().GetString("category")

			videos, err := app.Store.GetVideos(cmd.Context(), store.VideoFilter{})
			if err != nil {
				output.Error("Failed to fetch videos: %v", err)
				return err
			}

			counts := report.Tally(videos, func(v models.TrainingVideo) string {
				return v.Category
			})

			videos = query.Filter(videos, query.Criteria{query.FacetCategory: category})

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"videos": videos,
					"counts": counts,
				})
			}

			if len(videos) == 0 {
				output.Info("No videos in this category.")
				return nil
			}

			table := NewTable(output, "Title", "Category", "Duration", "Uploaded By", "Uploaded")
			for _, v := range videos {
				table.AddRow(
					TruncateString(v.Title, 40),
					v.Category,
					v.Duration,
					v.UploadedBy,
					output.Date(v.UploadedAt),
				)
			}
			table.Render()

			output.Println()
			output.Bold("Categories")
			for category, count := range counts {
				output.Printf("  %-20s %d\n", category, count)
			}

			return nil
		},
	}

	cmd.Flags().String("category", query.FacetAll, "filter by category")

	return cmd
}

func newVideosAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a training video",
		Long:  "Add a video to the catalog. New uploads appear first in the list.",
		Example: `  leaddesk videos add "Follow-up Strategien" --category "Kommunikation" --duration 14:05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			title := args[0]
			description, _ := cmd.Flags().GetString("description")
			category, _ := cmd.Flags().GetString("category")
			duration, _ := cmd.Flags().GetString("duration")

			if duration != "" && !ValidDuration(duration) {
				err := errors.NewValidationError("duration", duration, "must be a mm:ss label")
				output.Error("%v", err)
				return err
			}

			video := models.TrainingVideo{
				ID:          uuid.NewString(),
				Title:       title,
				Description: description,
				Duration:    duration,
				Category:    category,
				UploadedBy:  app.Config.Team.UserID,
				UploadedAt:  time.Now(),
			}
			if err := app.Store.SaveVideo(cmd.Context(), &video); err != nil {
				output.Error("Failed to save video: %v", err)
				return err
			}

			app.Logger.Info().Str("video_id", video.ID).Str("category", category).Msg("video added")
			output.Success("✓ Video added: %s", title)
			return nil
		},
	}

	cmd.Flags().String("description", "", "video description")
	cmd.Flags().String("category", "Allgemein", "video category")
	cmd.Flags().String("duration", "", "duration as mm:ss")

	return cmd
}

func newVideosDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <video-id>",
		Short: "Delete a training video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			if err := app.Store.DeleteVideo(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, errors.ErrDataNotFound) {
					output.Warning("No video with id %s.", args[0])
					return err
				}
				output.Error("Failed to delete video: %v", err)
				return err
			}

			app.Logger.Info().Str("video_id", args[0]).Msg("video deleted")
			output.Success("✓ Video deleted")
			return nil
		},
	}
}
