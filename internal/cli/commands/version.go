package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display pinelint version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pinelint v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Static checker for Pine Script indicators")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s, built %s, %s\n", commit, buildDate, runtime.Version())
		},
	}
}
