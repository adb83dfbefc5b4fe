package main

import (
	"github.com/spf13/cobra"
)

// tablesDir is shared by every subcommand that touches the pruning
// tables (gen-tables writes it, solve and serve read it).
var tablesDir string

var rootCmd = &cobra.Command{
	Use:   "kociemba",
	Short: "Two-phase Kociemba Rubik's Cube solver",
	Long: `kociemba builds and serves a two-phase (Kociemba-style) IDA* solver
for the 3x3x3 Rubik's Cube.

Typical workflow:
  kociemba gen-tables              # build the pruning tables once
  kociemba solve "R U R' U'"       # solve a scramble from the CLI
  kociemba serve --addr :8080      # or expose solving over HTTP`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables-dir", "solver_tables",
		"directory holding the pruning-table files")
}
