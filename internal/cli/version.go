package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arrange/pkg/arrange"
)

const modulePath = "github.com/mesh-intelligence/arrange"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the arrange version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "arrange v%s\nmodule: %s\n", arrange.Version, modulePath)
			return nil
		},
	}
}
