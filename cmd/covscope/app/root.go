package app

import (
	"github.com/spf13/cobra"
)

// NewCovscopeCommand creates the root command for the covscope tool.
func NewCovscopeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covscope",
		Short: "Scope a coverage export to configured source paths.",
		Long: `Covscope post-processes an llvm-cov JSON coverage export, keeps only the
files whose paths match the configured inclusion substrings, recomputes the
aggregate totals for that subset, and writes a schema-compatible export plus
a human-readable summary.`,
	}

	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewTestCommand())

	return cmd
}
