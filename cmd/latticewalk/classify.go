package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
	"github.com/katalvlaran/latticewalk/solver"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <grid> <steps>",
	Short: "Show the lattice regularities and the strategy for <steps>",
	Args:  cobra.ExactArgs(2),
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := readLattice(args[0])
	if err != nil {
		return err
	}
	budget, err := parseBudget(args[1])
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions(newLogger(cfg))
	if err != nil {
		return err
	}

	// Reach inside the start tile only, without wrapping.
	deepest := 0
	home, err := distance.Build(l, l.Start(), distance.WithOnVisit(func(_ lattice.Coord, d int) error {
		deepest = max(deepest, d)
		return nil
	}))
	if err != nil {
		return err
	}
	comps := l.Components()
	open := 0
	for _, c := range comps {
		open += len(c)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-12s %d×%d\n", "size", l.Rows(), l.Cols())
	fmt.Fprintf(out, "  %-12s %v\n", "start", l.Start())
	fmt.Fprintf(out, "  %-12s %t\n", "open border", l.HasOpenBorder())
	fmt.Fprintf(out, "  %-12s %t\n", "open cross", l.HasOpenCross())
	fmt.Fprintf(out, "  %-12s %d rows, %d cols\n", "open lines", l.OpenRows().Size(), l.OpenCols().Size())
	fmt.Fprintf(out, "  %-12s %d\n", "regions", len(comps))
	fmt.Fprintf(out, "  %-12s %d of %d open cells, %d within %d steps, deepest %d\n",
		"tile reach", home.Reached(), open, home.Within(budget), budget, deepest)
	fmt.Fprintf(out, "  %-12s %v\n", "strategy", solver.New(opts...).Strategy(l, budget))
	return nil
}
