package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubeforge/kociemba/tables"
)

var genTablesCmd = &cobra.Command{
	Use:   "gen-tables",
	Short: "Build the pruning tables and write them to --tables-dir",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := tables.GenerateOptions{
			Progress: func(e tables.ProgressEvent) {
				fmt.Printf("%s: %d/%d coordinates visited\n", e.Table, e.Visited, e.Total)
			},
		}

		fmt.Println("generating pruning tables...")
		t, err := tables.GenerateAll(opts)
		if err != nil {
			return fmt.Errorf("generating tables: %w", err)
		}

		if err := tables.Save(tablesDir, t); err != nil {
			return fmt.Errorf("saving tables to %s: %w", tablesDir, err)
		}
		fmt.Printf("tables written to %s\n", tablesDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genTablesCmd)
}
