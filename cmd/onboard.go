package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/spf13/cobra"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create or replace the study profile",
	Long: "Create the study profile without the interactive app. Replacing an existing\n" +
		"profile restarts the 30-day plan and regenerates today's tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := profile.Defaults()
		target, _ := cmd.Flags().GetInt("target")
		hours, _ := cmd.Flags().GetInt("hours")
		levelName, _ := cmd.Flags().GetString("level")
		if levelName == "" {
			levelName = string(d.CurrentLevel)
		}
		level, err := profile.ParseLevel(levelName)
		if err != nil {
			return err
		}

		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			p, err := st.Onboard(ctx, profile.Input{TargetScore: target, DailyHours: hours, Level: level})
			if err != nil {
				return err
			}
			completed, total := st.Board().Totals()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile saved: target %d, %d h/day, %s level.\n", p.TargetScore, p.DailyHours, p.CurrentLevel.Label())
			fmt.Fprintf(out, "Day 1 starts now with %d tasks (%d/%d items).\n", len(st.Board().Tasks), completed, total)
			return nil
		})
	},
}

func init() {
	d := profile.Defaults()
	onboardCmd.Flags().Int("target", d.TargetScore, "Target PTE score (65, 70 or 75 in the app)")
	onboardCmd.Flags().Int("hours", d.DailyHours, "Study hours per day")
	onboardCmd.Flags().String("level", "", "Current level: beginner, intermediate or advanced")
}
