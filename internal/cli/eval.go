package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arrange/pkg/arrange"
)

func newEvalCmd(a *app) *cobra.Command {
	var last int

	cmd := &cobra.Command{
		Use:   "eval a b c d e",
		Short: "Evaluate the counter for explicit slot counts",
		Long: `Evaluate the counter for the colours in each slot (a holds colours with one
unit left, e with five) and the marker of the previously placed colour.`,
		Args: cobra.ExactArgs(arrange.Slots),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := parseCounts(args)
			if err != nil {
				return err
			}
			marker := arrange.Marker(last)

			counter := arrange.NewCounter(
				arrange.WithBound(counts.Total()),
				arrange.WithLogger(a.logger),
			)
			result, err := counter.Count(counts, marker)
			if err != nil {
				return err
			}
			return printCount(cmd.OutOrStdout(), a.jsonOutput(), counts, marker, result)
		},
	}

	cmd.Flags().IntVar(&last, "last", int(arrange.MarkerNone), "marker of the previously placed colour (1 to 6)")
	return cmd
}

// parseCounts converts the five positional arguments into slot counts.
func parseCounts(args []string) (arrange.Counts, error) {
	var counts arrange.Counts
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return arrange.Counts{}, fmt.Errorf("slot %c: %w: %q", 'a'+i, arrange.ErrBadToken, s)
		}
		counts[i] = v
	}
	return counts, nil
}
