package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio server with an admin area and test tracking",
	Long: `Folio is a self-hosted personal portfolio site.

It serves public project and testimonial pages, a cookie-authenticated
admin area for managing content and manual test cases, and the HotSeat
camera endpoints for seat-occupancy checks.

Quick start:
  folio hash       # Derive the admin password digest for the config
  folio serve      # Start the server`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "folio.yaml", "config file path")
}
