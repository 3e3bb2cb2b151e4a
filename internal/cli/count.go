package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/arrange/pkg/arrange"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file]",
		Short: "Count arrangements of the items read from a file or stdin",
		Long: `Read an item count n followed by n category codes (2 to 6) and print the
number of valid arrangements modulo 1000000007. Code 2 is a colour with one
unit, code 6 a colour with five.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			return a.count(cmd.OutOrStdout(), in)
		},
	}
}

// count runs the whole pipeline: parse, tally, count, print.
func (a *app) count(out io.Writer, in io.Reader) error {
	codes, err := arrange.ParseInput(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tally, err := arrange.TallyCodes(codes)
	if err != nil {
		return fmt.Errorf("tally input: %w", err)
	}
	counts := tally.Counts()
	a.logger.Debug("input tallied",
		zap.Int("items", len(codes)),
		zap.Stringer("counts", counts),
	)

	counter := arrange.NewCounter(
		arrange.WithBound(counts.Total()),
		arrange.WithLogger(a.logger),
	)
	result, err := counter.Arrangements(counts)
	if err != nil {
		return err
	}

	return printCount(out, a.jsonOutput(), counts, arrange.MarkerNone, result)
}
