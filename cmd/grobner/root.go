package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand assembles the grobner command tree, grounded on
// roach88-nysm's NewRootCommand (one constructor per subcommand, wired
// in via AddCommand).
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grobner",
		Short: "Saturate a system of Boolean polynomial equations",
		Long: `grobner reads a system of polynomial equations over GF(2) and
runs superposition saturation to a fixed point, reporting the resulting
basis or a conflict witness.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSolveCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
