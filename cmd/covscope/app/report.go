package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjy-dev/covscope/internal/logger"
)

// NewReportCommand creates the "report" subcommand.
func NewReportCommand() *cobra.Command {
	var (
		exportPath  string
		outputPath  string
		include     []string
		category    string
		markdownDir string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Filter an existing coverage export and recompute its totals.",
		Long: `Filter an existing llvm-cov JSON coverage export down to the configured
source paths and recompute the aggregate totals for that subset.

The filtered export keeps the original document's type and version, contains
exactly one data section, and is pretty-printed with a stable key order so
successive runs diff cleanly.

Configuration:
  Default values are loaded from configs/covscope.yaml when present.
  Command line flags override the config file values.

Examples:
  # Scope an export to production sources
  covscope report --export .build/debug/codecov/default.json --include Sources/

  # Write the filtered document to a file and show region coverage
  covscope report --export default.json --include Sources/Core --category regions --output scoped.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrDefaults()
			if err != nil {
				return err
			}

			// Config values are defaults; flags win when set.
			if cmd.Flags().Changed("export") {
				cfg.ExportPath = exportPath
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputPath = outputPath
			}
			if cmd.Flags().Changed("include") {
				cfg.IncludedPaths = include
			}
			if cmd.Flags().Changed("category") {
				cfg.Category = category
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			logger.SetLevel(cfg.LogLevel)

			if cfg.ExportPath == "" {
				return fmt.Errorf("no coverage export given: set --export or export_path in the config")
			}

			data, err := os.ReadFile(cfg.ExportPath)
			if err != nil {
				return fmt.Errorf("failed to read coverage export %s: %w", cfg.ExportPath, err)
			}

			return runPipeline(cfg, data, markdownDir)
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Path to the llvm-cov JSON export to filter")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the filtered export here instead of stdout")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Path substring to include (repeatable)")
	cmd.Flags().StringVar(&category, "category", "lines", "Summary category: branches, functions, instantiations, lines, regions")
	cmd.Flags().StringVar(&markdownDir, "markdown-dir", "", "Also write a markdown report into this directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}
