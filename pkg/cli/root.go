// Package cli implements the vmsctl command tree: operator helpers for
// minting development tokens and seeding accounts.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vmsctl",
		Short:         "Volunteer management service CLI",
		Long:          "Operator command-line interface for the volunteer management service.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newSeedCmd())
	return rootCmd
}
