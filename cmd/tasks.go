package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/tasks"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Show and update today's task counters",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's tasks (filter by priority or section)",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		return withState(cmd, false, func(_ context.Context, st *app.State) error {
			if err := requireOnboarded(st); err != nil {
				return err
			}
			list := st.Board().Filter(filter)
			if len(list) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No tasks match %q.\n", filter)
				return nil
			}
			printTasks(cmd.OutOrStdout(), list)
			completed, total := st.Board().Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d tasks at target, %d/%d items.\n",
				st.Board().CompletedCount(), len(st.Board().Tasks), completed, total)
			return nil
		})
	},
}

func printTasks(out io.Writer, list []tasks.Task) {
	fmt.Fprintf(out, "%-24s  %-28s  %-9s  %-6s  %s\n", "ID", "Task", "Section", "Prio", "Done")
	fmt.Fprintln(out, strings.Repeat("─", 82))
	for _, t := range list {
		mark := ""
		if t.IsComplete() {
			mark = " ✓"
		}
		fmt.Fprintf(out, "%-24s  %-28s  %-9s  %-6s  %d/%d%s\n",
			t.ID, t.Name, t.Section, t.Priority, t.Completed, t.DailyTarget, mark)
	}
}

func taskCounterCmd(use, short string, apply func(*app.State) func(context.Context, string) (tasks.Task, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, false, func(ctx context.Context, st *app.State) error {
				t, err := apply(st)(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d\n", t.Name, t.Completed, t.DailyTarget)
				return nil
			})
		},
	}
}

var tasksResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero every task counter for a fresh day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			if err := st.ResetTaskCounters(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task counters reset.")
			return nil
		})
	},
}

func init() {
	tasksListCmd.Flags().String("filter", "all", "all, high, medium, low, speaking, writing, reading or listening")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(taskCounterCmd("inc", "Count one completed item",
		func(st *app.State) func(context.Context, string) (tasks.Task, error) { return st.IncrementTask }))
	tasksCmd.AddCommand(taskCounterCmd("dec", "Remove one completed item",
		func(st *app.State) func(context.Context, string) (tasks.Task, error) { return st.DecrementTask }))
	tasksCmd.AddCommand(tasksResetCmd)
}
