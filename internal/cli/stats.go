package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grfixtures/grgen/pkg/gr"
)

// statsCommand creates the stats command, which parses a .gr file and
// prints its counts. This is an informal report, not a validator: the only
// failure mode is a file the grammar can't parse at all.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.gr>",
		Short: "Print node and edge counts for a .gr file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gr.ReadFile(args[0])
			if err != nil {
				return err
			}

			printKeyValue("file", args[0])
			printKeyValue("nodes", fmt.Sprintf("%d", g.NumNodes))
			printKeyValue("edges", fmt.Sprintf("%d", len(g.Edges)))
			if g.Declared != len(g.Edges) {
				printDetail("problem line declares %d edges", g.Declared)
			}
			if min, max := g.WeightRange(); max > 0 {
				printKeyValue("weights", fmt.Sprintf("%d–%d", min, max))
			}
			return nil
		},
	}
}
