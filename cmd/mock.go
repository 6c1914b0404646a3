package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/reference"
	"github.com/spf13/cobra"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Mock test history and schedule",
}

var mockHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished mock tests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withState(cmd, false, func(_ context.Context, st *app.State) error {
			results := st.History().Results
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No mock tests taken yet.")
				return nil
			}
			fmt.Fprintf(out, "%-10s  %-7s  %-5s  %-5s  %-5s  %-5s  %-8s  %s\n",
				"Date", "Overall", "Spk", "Wrt", "Rdg", "Lst", "Time", "Answered")
			fmt.Fprintln(out, strings.Repeat("─", 72))
			shown := 0
			for i := len(results) - 1; i >= 0; i-- {
				if limit > 0 && shown == limit {
					break
				}
				r := results[i]
				note := ""
				if r.TimedOut {
					note = " (time up)"
				}
				fmt.Fprintf(out, "%-10s  %-7d  %-5d  %-5d  %-5d  %-5d  %-8s  %d%s\n",
					r.Date, r.OverallScore, r.Speaking, r.Writing, r.Reading, r.Listening,
					reference.Duration(r.Duration), r.CompletedTasks, note)
				shown++
			}
			if d, ok := st.History().Improvement(); ok {
				fmt.Fprintf(out, "\nChange since previous test: %+d\n", d)
			}
			return nil
		})
	},
}

var mockScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the planned mock tests for the 30-day plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(_ context.Context, st *app.State) error {
			out := cmd.OutOrStdout()
			for _, m := range st.MockSchedule() {
				status := "locked"
				switch {
				case m.Recommended:
					status = "recommended"
				case m.Available:
					status = "available"
				}
				fmt.Fprintf(out, "Day %-2d  %-22s  %-11s  %s\n", m.Day, m.Name, status, m.Description)
			}
			return nil
		})
	},
}

func init() {
	mockHistoryCmd.Flags().Int("limit", 0, "Show at most this many tests (0 = all)")

	mockCmd.AddCommand(mockHistoryCmd)
	mockCmd.AddCommand(mockScheduleCmd)
}
