package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/arrange/pkg/arrange"
)

const flagMaxItems = "max-items"

// errVerifyFailed is returned when the counter disagrees with brute force.
var errVerifyFailed = errors.New("counter disagrees with brute force")

// verifyReport is the JSON record printed by verify.
type verifyReport struct {
	RunID      string   `json:"run_id"`
	MaxItems   int      `json:"max_items"`
	Checked    int      `json:"checked"`
	Mismatches []string `json:"mismatches"`
}

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the counter against exhaustive enumeration",
		Long: `Compare the memoized counter with a brute-force enumeration for every slot
combination up to the given number of units and every marker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			maxItems := a.cfg.GetInt(cfgKeyVerifyMaxItems)
			if maxItems < 0 {
				return fmt.Errorf("%s must not be negative, got %d", flagMaxItems, maxItems)
			}
			if maxItems > arrange.MaxBruteForceItems {
				return fmt.Errorf("%s: %w: %d exceeds %d", flagMaxItems, arrange.ErrTooLarge, maxItems, arrange.MaxBruteForceItems)
			}

			counter := arrange.NewCounter(
				arrange.WithBound(maxItems),
				arrange.WithLogger(a.logger),
			)
			report := verifyReport{RunID: newRunID(), MaxItems: maxItems, Mismatches: []string{}}
			checked, err := arrange.Verify(counter, maxItems, func(m arrange.Mismatch) {
				a.logger.Warn("mismatch", zap.Stringer("state", m))
				report.Mismatches = append(report.Mismatches, m.String())
			})
			if err != nil {
				return err
			}
			report.Checked = checked
			a.logger.Debug("verify finished",
				zap.Int("checked", checked),
				zap.Int("hits", counter.Stats().Hits),
				zap.Int("misses", counter.Stats().Misses),
			)

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				for _, m := range report.Mismatches {
					fmt.Fprintln(out, "MISMATCH", m)
				}
				fmt.Fprintf(out, "checked %d states up to %d units, %d mismatches\n",
					checked, maxItems, len(report.Mismatches))
			}

			if len(report.Mismatches) > 0 {
				return fmt.Errorf("%w: %d of %d states", errVerifyFailed, len(report.Mismatches), checked)
			}
			return nil
		},
	}

	cmd.Flags().Int(flagMaxItems, defaultVerifyMaxItems, "largest number of units to enumerate")
	return cmd
}
