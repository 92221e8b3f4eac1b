package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the grobner release tag. Unlike the teacher's
// solver.Version(), which reports the SAT solver's own version, there
// is no upstream release process here yet — kept as a literal until one
// exists.
const version = "0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the grobner version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "grobner %s\n", version)
			return nil
		},
	}
}
