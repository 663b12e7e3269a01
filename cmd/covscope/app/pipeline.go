package app

import (
	"fmt"
	"os"

	"github.com/zjy-dev/covscope/internal/config"
	"github.com/zjy-dev/covscope/internal/coverage"
	"github.com/zjy-dev/covscope/internal/logger"
	"github.com/zjy-dev/covscope/internal/report"
)

// loadConfigOrDefaults loads the covscope config file. A missing file is not
// an error because every setting can come from flags; anything else (bad
// yaml, unreadable file) is fatal.
func loadConfigOrDefaults() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		if !config.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}
	return cfg, nil
}

// runPipeline runs the core transformation on in-memory export bytes: load,
// filter to the included paths, recompute totals, and hand the result to the
// output sinks. No output is written if any stage fails.
func runPipeline(cfg *config.Config, exportData []byte, markdownDir string) error {
	category, err := coverage.ParseCategory(cfg.Category)
	if err != nil {
		return err
	}

	export, err := coverage.Load(exportData)
	if err != nil {
		return err
	}

	scoped, err := coverage.Scope(export, cfg.IncludedPaths)
	if err != nil {
		return err
	}

	encoded, err := scoped.Encode()
	if err != nil {
		return err
	}

	summary := report.Summary(category, scoped.Data[0].Totals.Category(category))

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, append(encoded, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write filtered export to %s: %w", cfg.OutputPath, err)
		}
		logger.Info("wrote filtered export to %s", cfg.OutputPath)
		fmt.Println(summary)
	} else {
		// The document owns stdout; the summary goes to the log on stderr.
		fmt.Println(string(encoded))
		logger.Info("%s", summary)
	}

	if markdownDir != "" {
		if err := report.NewMarkdownReporter(markdownDir).Save(scoped, category); err != nil {
			return err
		}
		logger.Info("wrote markdown report to %s", markdownDir)
	}

	return nil
}
