package main

import (
	"fmt"
	"os"

	"github.com/bryanCE/dnsgen/internal/cli"

	"github.com/spf13/cobra"
)

var version = "dev" // Will be set by ldflags during build

func main() {
	rootCmd := &cobra.Command{
		Use:   "dnsgen",
		Short: "Synthetic DNS record dataset generator",
		Long: `Generate plausible-looking DNS resource records for tests, demos and fixtures.
Datasets can be written as JSON, YAML, CSV, zone files or tables, and checked back with validate.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.NewGenerateCommand())
	rootCmd.AddCommand(cli.NewValidateCommand())
	rootCmd.AddCommand(cli.NewStatsCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
