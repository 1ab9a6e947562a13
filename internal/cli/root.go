package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"leaddesk/internal/config"
	"leaddesk/internal/logging"
	"leaddesk/internal/models"
	"leaddesk/internal/query"
	"leaddesk/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
}

// Scope returns the record visibility scope for the configured caller:
// managers see the whole team's records, participants only their own.
func (a *App) Scope() query.Scope {
	if a.Config.IsManager() {
		return query.ScopeAll()
	}
	return query.ScopeOwned(a.Config.Team.UserID)
}

// Role returns the configured caller's role.
func (a *App) Role() models.Role {
	if a.Config.IsManager() {
		return models.RoleManager
	}
	return models.RoleParticipant
}

// Output builds a per-command Output honoring the UI configuration:
// color can be switched off entirely and dates use the configured layout.
func (a *App) Output(cmd *cobra.Command) *Output {
	out := NewOutput(cmd)
	if a.Config != nil {
		out.colorEnabled = out.colorEnabled && a.Config.UI.ColorEnabled
		out.dateFormat = a.Config.UI.DateFormat
	}
	return out
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	dataStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, some features may be unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", cfg.Database.Path).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "leaddesk",
		Short: "leaddesk - social media lead generation workflow CLI",
		Long: `leaddesk manages social media lead-generation workflows from the terminal.

Browse and filter leads, analyze audience profiles, compare team
performance, keep a training-video catalog, and maintain a daily
trading journal.

Use 'leaddesk help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/leaddesk)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addLeadCommands(rootCmd, app)
	addAudienceCommands(rootCmd, app)
	addTeamCommands(rootCmd, app)
	addInboxCommands(rootCmd, app)
	addVideoCommands(rootCmd, app)
	addJournalCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newSeedCmd(app))
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.Output(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("leaddesk v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Configuration")
			output.Printf("  Database:  %s\n", app.Config.Database.Path)
			output.Printf("  User:      %s\n", app.Config.Team.UserID)
			output.Printf("  Role:      %s\n", app.Config.Team.Role)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.Output(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	return cmd
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo data set",
		Long:  "Load demo users, leads, audience profiles, videos, messages, and a journal entry into the store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}
			if err := store.Seed(cmd.Context(), app.Store); err != nil {
				output.Error("Failed to seed store: %v", err)
				return err
			}
			app.Logger.Info().Msg("demo data loaded")
			output.Success("✓ Demo data loaded")
			return nil
		},
	}
}
