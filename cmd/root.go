package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nehal/linguo/internal/app"
	"github.com/nehal/linguo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "linguo",
	Short: "AI language tutor",
	Long:  "Linguo — adaptive language practice with spaced review of your mistakes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUO_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(articleCmd)
	rootCmd.AddCommand(talkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LINGUO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp assembles the application for a command invocation.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(context.Background(), app.Options{DBPath: dbPath})
}
