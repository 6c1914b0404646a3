package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/planner"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage scheduled study sessions",
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study sessions for this week, or for --date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		return withState(cmd, false, func(_ context.Context, st *app.State) error {
			p := st.Planner()
			if p == nil {
				return requireOnboarded(st)
			}
			dates := planner.WeekDates(st.Now())
			if date != "" {
				dates = []string{date}
			}
			out := cmd.OutOrStdout()
			for _, d := range dates {
				sessions := p.ForDate(d)
				fmt.Fprintf(out, "%s (%d)\n", d, len(sessions))
				for _, s := range sessions {
					mark := " "
					if s.Completed {
						mark = "✓"
					}
					fmt.Fprintf(out, "  [%s] %s  %s-%s  %s\n", mark, s.ID, s.StartTime, s.EndTime, strings.Join(s.Tasks, ", "))
					if s.Notes != "" {
						fmt.Fprintf(out, "      %s\n", s.Notes)
					}
				}
			}
			done, total := p.TodayStats()
			fmt.Fprintf(out, "\nToday: %d of %d sessions done.\n", done, total)
			return nil
		})
	},
}

var planAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		taskList, _ := cmd.Flags().GetString("tasks")
		notes, _ := cmd.Flags().GetString("notes")
		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			p := st.Planner()
			if p == nil {
				return requireOnboarded(st)
			}
			if date == "" {
				date = st.Now().Format(planner.DateLayout)
			}
			s, err := p.Create(ctx, planner.Draft{
				Date:      date,
				StartTime: start,
				EndTime:   end,
				Tasks:     planner.ParseTasks(taskList),
				Notes:     notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s on %s, %s-%s.\n", s.ID, s.Date, s.StartTime, s.EndTime)
			return nil
		})
	},
}

var planDoneCmd = &cobra.Command{
	Use:   "done <session-id>",
	Short: "Toggle a session's completed flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			p := st.Planner()
			if p == nil {
				return requireOnboarded(st)
			}
			s, err := p.ToggleComplete(ctx, args[0])
			if err != nil {
				return err
			}
			state := "open"
			if s.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s marked %s.\n", s.ID, state)
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			p := st.Planner()
			if p == nil {
				return requireOnboarded(st)
			}
			if err := p.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s.\n", args[0])
			return nil
		})
	},
}

var planSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all sessions with a fresh week of defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			if err := st.ReseedPlanner(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planner reseeded with %d sessions.\n", len(st.Planner().All()))
			return nil
		})
	},
}

func init() {
	planListCmd.Flags().String("date", "", "Only show sessions on this date (YYYY-MM-DD)")

	planAddCmd.Flags().String("date", "", "Session date (YYYY-MM-DD, default today)")
	planAddCmd.Flags().String("start", "09:00", "Start time (HH:MM)")
	planAddCmd.Flags().String("end", "10:00", "End time (HH:MM)")
	planAddCmd.Flags().String("tasks", "", "Comma-separated task names")
	planAddCmd.Flags().String("notes", "", "Free-form notes")

	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planDoneCmd)
	planCmd.AddCommand(planDeleteCmd)
	planCmd.AddCommand(planSeedCmd)
}
