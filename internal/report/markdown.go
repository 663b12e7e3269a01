package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjy-dev/covscope/internal/coverage"
)

// MarkdownReporter writes a scoped coverage summary as a markdown file, one
// row per included file plus the recomputed totals.
type MarkdownReporter struct {
	outputDir string
}

// NewMarkdownReporter creates a new MarkdownReporter.
func NewMarkdownReporter(outputDir string) *MarkdownReporter {
	return &MarkdownReporter{
		outputDir: outputDir,
	}
}

// Save renders the first data section of export for the selected category
// and writes it to scoped_coverage.md in the output directory.
func (r *MarkdownReporter) Save(export *coverage.Export, category coverage.Category) error {
	if len(export.Data) == 0 {
		return fmt.Errorf("coverage export has no data sections")
	}
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	section := export.Data[0]

	var content string
	content += fmt.Sprintf("# Scoped Coverage Report (%s)\n\n", category)
	content += fmt.Sprintf("**Total:** %s\n\n", Summary(category, section.Totals.Category(category)))
	content += "| File | Covered | Total | Percent |\n"
	content += "|------|---------|-------|---------|\n"
	for _, f := range section.Files {
		c := f.Summary.Category(category)
		content += fmt.Sprintf("| %s | %d | %d | %.2f%% |\n", f.Filename, c.Covered, c.Count, c.Percent)
	}
	content += fmt.Sprintf("\n%d files, %d functions in scope.\n", len(section.Files), len(section.Functions))

	reportPath := filepath.Join(r.outputDir, "scoped_coverage.md")
	return os.WriteFile(reportPath, []byte(content), 0644)
}
