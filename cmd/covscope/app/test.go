package app

import (
	"github.com/spf13/cobra"

	"github.com/zjy-dev/covscope/internal/exec"
	"github.com/zjy-dev/covscope/internal/logger"
	"github.com/zjy-dev/covscope/internal/runner"
)

// NewTestCommand creates the "test" subcommand.
func NewTestCommand() *cobra.Command {
	var (
		workDir     string
		outputPath  string
		include     []string
		category    string
		markdownDir string
		logLevel    string
		keep        bool
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the instrumented test suite, then filter its coverage export.",
		Long: `Run the configured test command with coverage instrumentation enabled,
locate the coverage export it produces, and run the same filtering pipeline
as "covscope report" on the result.

This command:
  1. Runs the configured test command (e.g. swift test --enable-code-coverage)
  2. Resolves the export path (export_path, or the discovery command's output)
  3. Filters the export to the included paths and recomputes totals
  4. Writes the filtered document and prints the category summary
  5. Removes the coverage build directory unless told to keep it

Configuration:
  test_command, codecov_path_command, and build_dir come from
  configs/covscope.yaml; the remaining flags mirror "covscope report".

Examples:
  # Test and report in one step
  covscope test --include Sources/

  # Keep the .build directory for later inspection
  covscope test --include Sources/ --keep-artifacts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrDefaults()
			if err != nil {
				return err
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
			if cmd.Flags().Changed("keep-artifacts") {
				cfg.KeepArtifacts = keep
			}
			logger.SetLevel(cfg.LogLevel)

			r := runner.New(exec.NewCommandExecutor(), workDir)

			if err := r.RunTests(cfg.TestCommand); err != nil {
				return err
			}

			exportPath, err := r.ExportPath(cfg.ExportPath, cfg.CodecovPathCommand)
			if err != nil {
				return err
			}

			data, err := r.ReadExport(exportPath)
			if err != nil {
				return err
			}

			if err := runPipeline(cfg, data, markdownDir); err != nil {
				return err
			}

			if !cfg.KeepArtifacts {
				if err := r.CleanArtifacts(cfg.BuildDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workDir, "work-dir", "", "Directory to run the test command in (default: current directory)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the filtered export here instead of stdout")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Path substring to include (repeatable)")
	cmd.Flags().StringVar(&category, "category", "lines", "Summary category: branches, functions, instantiations, lines, regions")
	cmd.Flags().StringVar(&markdownDir, "markdown-dir", "", "Also write a markdown report into this directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&keep, "keep-artifacts", false, "Keep the coverage build directory after the run")

	return cmd
}
