package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/pteprep/internal/reference"
	"github.com/spf13/cobra"
)

var refCmd = &cobra.Command{
	Use:       "ref [templates|timing|phrases|symbols]",
	Short:     "Print the quick reference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"templates", "timing", "phrases", "symbols"},
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := "templates"
		if len(args) == 1 {
			topic = args[0]
		}
		out := cmd.OutOrStdout()
		switch topic {
		case "templates":
			printTemplates(out)
		case "timing":
			for _, r := range reference.TimingGuide() {
				fmt.Fprintf(out, "%-28s  prep %-6s  answer %-8s  %s\n", r.Task, r.Preparation, r.Response, r.Tip)
			}
		case "phrases":
			for _, g := range reference.Phrases() {
				fmt.Fprintln(out, g.Name)
				for _, p := range g.Phrases {
					fmt.Fprintf(out, "  • %s\n", p)
				}
			}
		case "symbols":
			for _, s := range reference.Symbols() {
				fmt.Fprintf(out, "  %-4s %s\n", s.Symbol, s.Meaning)
			}
		default:
			return fmt.Errorf("unknown topic %q (want templates, timing, phrases or symbols)", topic)
		}
		return nil
	},
}

func printTemplates(out io.Writer) {
	for i, t := range reference.Templates() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "## %s\n%s\n", t.Title, t.Body)
	}
}
