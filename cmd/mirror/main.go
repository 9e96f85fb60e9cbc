// Package main provides the CLI entrypoint for mirror.
//
// mirror inspects the inputs of the reflective engine:
//   - directives lists the //mirror: source directives of Go packages
//   - config prints the effective engine configuration
//   - version prints build information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mirror",
		Short:         "Reflective member query and graph clone engine tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./mirror.yaml)")

	// Add subcommands
	rootCmd.AddCommand(newDirectivesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
