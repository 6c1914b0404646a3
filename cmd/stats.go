package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress and score advice",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, true, func(ctx context.Context, st *app.State) error {
			if err := requireOnboarded(st); err != nil {
				return err
			}
			sum, err := st.Summary()
			if err != nil {
				return err
			}
			p, _ := st.Profile()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Day %d of 30 (%d left), week %d: %s\n",
				sum.Day, sum.RemainingDays, sum.Phase.Week, sum.Phase.Name)
			fmt.Fprintf(out, "Target %d, estimated %d\n", p.TargetScore, sum.EstimatedScore)
			fmt.Fprintf(out, "Tasks at target: %d/%d (high priority %d/%d)\n",
				sum.TasksComplete, sum.TasksTotal, sum.HighComplete, sum.HighTotal)
			fmt.Fprintf(out, "Today's items: %.0f%%\n\n", sum.TodayCompletion*100)
			for _, s := range sum.Sections {
				fmt.Fprintf(out, "  %-10s %3.0f%%\n", s.Section.Label(), s.Percent()*100)
			}

			if practice, err := st.PracticeSummary(ctx); err == nil && len(practice) > 0 {
				fmt.Fprintln(out, "\nPractice averages:")
				for _, t := range practice {
					fmt.Fprintf(out, "  %-24s %3d attempts, avg %.1f, best %d\n", t.TaskID, t.Attempts, t.Average, t.Best)
				}
			}

			if r, ok := st.History().Latest(); ok {
				fmt.Fprintf(out, "\nLatest mock (%s): overall %d\n", r.Date, r.OverallScore)
			}

			advice := st.Advice(ctx, st.CalculatorScores())
			fmt.Fprintf(out, "\nAdvice: %s\n", advice.Text)
			for _, d := range advice.Drills {
				fmt.Fprintf(out, "  • %s\n", d)
			}
			return nil
		})
	},
}
