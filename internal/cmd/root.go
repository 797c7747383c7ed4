package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Belle Croissant Back Office - bakery shop management API",
	Long: `Belle Croissant Back Office serves the bakery's internal data:
customers and their loyalty programs, the product catalog, ingredient
inventory, and orders.

Run the HTTP server, create the database schema, or load sample data
via the subcommands.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
