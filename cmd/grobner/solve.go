package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tahina-pro/z3/config"
	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/encoding"
	"github.com/tahina-pro/z3/engine"
	"github.com/tahina-pro/z3/poly"
)

type solveOptions struct {
	configPath string
}

func newSolveCommand() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:           "solve <equations-file>",
		Short:         "Saturate the equation system read from a file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML engine config file")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *solveOptions, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("grobner: %w", err)
	}
	defer f.Close()

	parsed, err := encoding.Parse(f)
	if err != nil {
		return fmt.Errorf("grobner: %w", err)
	}
	if len(parsed) == 0 {
		return fmt.Errorf("grobner: %s contains no equations", path)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("grobner: %w", err)
	}

	// Variables are registered in order of first appearance in the file,
	// so the topmost (first-eliminated) variable is whichever the input
	// mentions first — the caller controls elimination order by how the
	// equations are written, the same way the teacher lets CNF clause
	// order drive decision order.
	mgr := poly.NewManager(variableOrder(parsed)...)
	eng := engine.New(mgr, cfg)
	for _, eq := range parsed {
		eng.Add(toPoly(mgr, eq), dep.New())
	}

	tStart := time.Now()
	if err := eng.Saturate(cmd.Context()); err != nil {
		return fmt.Errorf("grobner: %w", err)
	}
	elapsed := time.Since(tStart)

	if conflict := eng.Conflict(); conflict != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "UNSAT")
		if derr := eng.DisplayEquation(cmd.OutOrStdout(), conflict); derr != nil {
			return derr
		}
		displayStats(cmd, eng, elapsed)
		return &exitCodeError{code: 3, err: fmt.Errorf("conflict found")}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "SAT")
	if derr := eng.Display(cmd.OutOrStdout()); derr != nil {
		return derr
	}
	displayStats(cmd, eng, elapsed)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.New(), nil
	}
	return config.Load(path)
}

func variableOrder(parsed []encoding.Equation) []string {
	seen := make(map[string]bool)
	var order []string
	for _, eq := range parsed {
		for _, vars := range eq.Monomials {
			for _, name := range vars {
				if !seen[name] {
					seen[name] = true
					order = append(order, name)
				}
			}
		}
	}
	return order
}

func toPoly(mgr *poly.Manager, eq encoding.Equation) poly.Poly {
	out := mgr.Zero()
	for _, vars := range eq.Monomials {
		if len(vars) == 0 {
			out = out.Add(mgr.One())
			continue
		}
		term := mgr.VarPoly(mgr.Var(vars[0]))
		for _, name := range vars[1:] {
			term = term.Mul(mgr.VarPoly(mgr.Var(name)))
		}
		out = out.Add(term)
	}
	return out
}

// displayStats prints the saturation run's counters to stderr, the same
// split the teacher's displayStats uses so stdout stays clean for the
// basis itself.
func displayStats(cmd *cobra.Command, eng *engine.Engine, elapsed time.Duration) {
	stats := eng.CollectStatistics()
	w := cmd.ErrOrStderr()
	fmt.Fprint(w, "\n")
	fmt.Fprintf(w, "Time Taken:  %fs\n", elapsed.Seconds())
	fmt.Fprintf(w, "Steps:       %d\n", stats.Steps)
	fmt.Fprintf(w, "Simplified:  %d\n", stats.Simplified)
	fmt.Fprintf(w, "Superposed:  %d\n", stats.Superposed)
	fmt.Fprintf(w, "Too complex: %d\n", stats.TooComplex)
	fmt.Fprintf(w, "Max degree:  %d\n", stats.MaxDegree)
	fmt.Fprintf(w, "Max size:    %d\n", stats.MaxSize)
	fmt.Fprint(w, "\n")
}
