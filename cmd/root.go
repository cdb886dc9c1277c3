package cmd

import (
	"context"

	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Spaced-repetition flashcards in the terminal",
	Long:  "Flashdeck schedules flashcards from JSON deck files with SM-2 and runs review and cram sessions in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, session.Review)
	},
	SilenceUsage: true,
}

// Execute runs the root command with ctx as every command's context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FLASHDECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides FLASHDECK_CONFIG env var)")
	rootCmd.PersistentFlags().String("decks", "", "Directory holding JSON deck files (overrides source.dir)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(cramCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured store path, then FLASHDECK_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}

// resolveDecksDir returns the --decks flag or the configured source dir.
func resolveDecksDir(cmd *cobra.Command, configured string) string {
	if d, _ := cmd.Flags().GetString("decks"); d != "" {
		return d
	}
	return configured
}
