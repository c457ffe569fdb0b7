package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// componentPreview caps how many words of a component are printed.
const componentPreview = 8

func newStatsCommand(ro *rootOptions) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded dictionary and its connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lx, err := ro.loadLexicon()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words: %d\n", lx.Len())
			for _, n := range lx.Lengths() {
				fmt.Fprintf(out, "  length %d: %d\n", n, len(lx.WordsOfLength(n)))
			}

			comps := lx.Components()
			fmt.Fprintf(out, "components: %d\n", len(comps))
			for i, c := range comps {
				if i >= top {
					break
				}
				preview := c
				suffix := ""
				if len(preview) > componentPreview {
					preview, suffix = preview[:componentPreview], " ..."
				}
				fmt.Fprintf(out, "  #%d (%d): %s%s\n", i+1, len(c), strings.Join(preview, " "), suffix)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 3, "number of largest components to list")
	return cmd
}
