package cmd

import (
	"github.com/abhisek/pteprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pteprep",
	Short: "30-day PTE Academic study planner",
	Long: "pteprep: a terminal study companion for the PTE Academic exam. It builds a daily\n" +
		"task plan from your target score and study hours, runs timed practice and mock\n" +
		"tests, and tracks vocabulary and progress.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PTEPREP_DB env var)")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(refCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PTEPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
