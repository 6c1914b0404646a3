package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary deck statistics",
}

var vocabStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learned and remaining words per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(_ context.Context, st *app.State) error {
			d := st.Deck()
			out := cmd.OutOrStdout()
			s := d.Stats()
			fmt.Fprintf(out, "Words:    %d\n", s.Total)
			fmt.Fprintf(out, "Learned:  %d\n", s.Learned)
			fmt.Fprintf(out, "To learn: %d\n\n", s.ToLearn)

			type tally struct{ learned, total int }
			byCat := map[string]*tally{}
			for _, w := range d.Words() {
				t := byCat[w.Category]
				if t == nil {
					t = &tally{}
					byCat[w.Category] = t
				}
				t.total++
				if w.Learned {
					t.learned++
				}
			}
			for _, c := range d.Categories() {
				if t := byCat[c]; t != nil {
					fmt.Fprintf(out, "  %-16s %d/%d\n", c, t.learned, t.total)
				}
			}
			return nil
		})
	},
}

var vocabResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the starter word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, false, func(ctx context.Context, st *app.State) error {
			if err := st.Deck().Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Vocabulary reset to %d words.\n", st.Deck().Stats().Total)
			return nil
		})
	},
}

func init() {
	vocabCmd.AddCommand(vocabStatsCmd)
	vocabCmd.AddCommand(vocabResetCmd)
}
