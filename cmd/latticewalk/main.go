// latticewalk counts the cells reachable in an exact number of steps on an
// infinitely tiled grid.
//
// Usage:
//
//	latticewalk count <grid> <steps>      - Count reachable cells
//	latticewalk classify <grid> <steps>   - Show the strategy that would be used
//	latticewalk render <grid> <steps>     - Draw the reachable cells
//	latticewalk explore <grid>            - Step through budgets interactively
//
// Global flags:
//
//	--config <path>      - Configuration file (default: search order, then embedded)
//	--strategy <name>    - auto, exact, quadratic, border or cross
//	--log-level <level>  - debug, info, warn or error
//
// <grid> is a file path, or "-" for standard input.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/config"
	"github.com/katalvlaran/latticewalk/lattice"
)

var (
	// Global flags
	flagConfig   string
	flagStrategy string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "latticewalk",
	Short: "Count cells reachable in exactly N steps on a tiled grid",
	Long: `latticewalk reads a grid of open ('.') and blocked ('#') cells with one
start ('S'), repeats it without bound in every direction, and counts the
cells reachable in exactly the given number of unit steps.

Examples:
  latticewalk count map.txt 64
  latticewalk count map.txt 26501365 --strategy cross
  latticewalk classify map.txt 26501365
  latticewalk render map.txt 30
  latticewalk explore map.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagStrategy, "strategy", "", "Counting strategy (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exploreCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagStrategy != "" {
		cfg.Strategy = flagStrategy
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the stderr logger for cfg.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "latticewalk",
	})
	logger.SetLevel(cfg.Level())
	return logger
}

// readLattice parses the grid at path, or standard input for "-".
func readLattice(path string) (*lattice.Lattice, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read grid %s: %w", path, err)
	}
	return lattice.Parse(string(data))
}

// parseBudget parses a non-negative step count.
func parseBudget(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid step count %q: want a non-negative integer", arg)
	}
	return n, nil
}
