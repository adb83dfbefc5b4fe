package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeforge/kociemba/solver"
)

var solveVerbose bool

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scramble and print the solution",
	Long: `solve loads the pruning tables from --tables-dir and runs the
two-phase search on the given scramble, printing the solution (or an
empty line if the cube is already solved).

--verbose additionally prints the move count and elapsed search time.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := strings.Join(args, " ")

		s, err := solver.NewFromDir(tablesDir)
		if err != nil {
			return fmt.Errorf("loading tables from %s: %w", tablesDir, err)
		}

		start := time.Now()
		solution, err := s.Solve(scramble)
		elapsed := time.Since(start)
		if err != nil {
			return err
		}
		fmt.Println(solution)
		if solveVerbose {
			fmt.Printf("moves: %d\n", len(strings.Fields(solution)))
			fmt.Printf("elapsed: %s\n", elapsed)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVar(&solveVerbose, "verbose", false, "print move count and elapsed search time")
	rootCmd.AddCommand(solveCmd)
}
