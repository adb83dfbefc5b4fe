package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/cubeforge/kociemba/httpapi"
	"github.com/cubeforge/kociemba/solver"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `serve loads the pruning tables from --tables-dir and exposes
GET /solve?scramble=<moves> on --addr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := solver.NewFromDir(tablesDir)
		if err != nil {
			return fmt.Errorf("loading tables from %s: %w", tablesDir, err)
		}

		srv := httpapi.NewServer(s)
		log.Printf("serving on %s (tables: %s)", serveAddr, tablesDir)
		return http.ListenAndServe(serveAddr, srv)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}
