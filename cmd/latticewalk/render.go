package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/latticewalk/config"
	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
	"github.com/katalvlaran/latticewalk/render"
)

var flagTiles bool

var renderCmd = &cobra.Command{
	Use:   "render <grid> <steps>",
	Short: "Draw the cells reachable in exactly <steps> steps",
	Long: `Draws the (2·steps+1)² window around the start: 'S' start, 'O' reachable
in exactly <steps> steps, ',' reached with the other parity.`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&flagTiles, "tiles", false, "Highlight tile boundaries")
}

func runRender(cmd *cobra.Command, args []string) error {
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

	out, err := draw(l, budget, cfg, colorEnabled(cfg.Render.Color))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// draw renders the exact reachable set for budget within the configured window limit.
func draw(l *lattice.Lattice, budget int, cfg config.Config, color bool) (string, error) {
	if side := 2*budget + 1; side > cfg.Render.MaxWindow {
		return "", fmt.Errorf("%w: %d steps need a %d-wide window, limit is %d", render.ErrWindowTooLarge, budget, side, cfg.Render.MaxWindow)
	}
	f, err := distance.Build(l, l.Start(), distance.WithWindow(budget), distance.WithToroidal(), distance.WithMaxDepth(budget))
	if err != nil {
		return "", err
	}
	styles := render.PlainStyles()
	if color {
		styles = render.DefaultStyles()
	}
	return render.Render(l, f, budget, render.Options{Styles: styles, MaxWindow: cfg.Render.MaxWindow, Tiles: flagTiles})
}

// colorEnabled resolves the configured colour mode against the terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
