package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjy-dev/covscope/internal/coverage"
)

func TestSummary(t *testing.T) {
	line := Summary(coverage.CategoryLines, coverage.Counts{Count: 10, Covered: 8, Percent: 80})
	assert.Equal(t, "lines: 8/10 (80.00%)", line)

	empty := Summary(coverage.CategoryBranches, coverage.Counts{})
	assert.Equal(t, "branches: 0/0 (0.00%)", empty)
}

func TestMarkdownReporter_Save(t *testing.T) {
	export := &coverage.Export{
		Type:    "llvm.coverage.json.export",
		Version: "2.0.1",
		Data: []coverage.DataSection{{
			Files: []coverage.File{
				{
					Filename: "/repo/Sources/A.swift",
					Summary:  coverage.Summary{Lines: coverage.Counts{Count: 10, Covered: 8, Percent: 80}},
				},
				{
					Filename: "/repo/Sources/B.swift",
					Summary:  coverage.Summary{Lines: coverage.Counts{Count: 4, Covered: 4, Percent: 100}},
				},
			},
			Functions: []coverage.Function{
				{Name: "a()", Count: 1, Filenames: []string{"/repo/Sources/A.swift"}},
			},
			Totals: coverage.Summary{Lines: coverage.Counts{Count: 14, Covered: 12, Percent: 85.714285714}},
		}},
	}

	t.Run("should write the scoped summary table", func(t *testing.T) {
		dir := t.TempDir()
		reporter := NewMarkdownReporter(dir)
		require.NoError(t, reporter.Save(export, coverage.CategoryLines))

		content, err := os.ReadFile(filepath.Join(dir, "scoped_coverage.md"))
		require.NoError(t, err)

		text := string(content)
		assert.Contains(t, text, "# Scoped Coverage Report (lines)")
		assert.Contains(t, text, "**Total:** lines: 12/14 (85.71%)")
		assert.Contains(t, text, "| /repo/Sources/A.swift | 8 | 10 | 80.00% |")
		assert.Contains(t, text, "| /repo/Sources/B.swift | 4 | 4 | 100.00% |")
		assert.Contains(t, text, "2 files, 1 functions in scope.")
	})

	t.Run("should create the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "reports")
		reporter := NewMarkdownReporter(dir)
		require.NoError(t, reporter.Save(export, coverage.CategoryLines))

		_, err := os.Stat(filepath.Join(dir, "scoped_coverage.md"))
		assert.NoError(t, err)
	})

	t.Run("should fail on an export without data sections", func(t *testing.T) {
		reporter := NewMarkdownReporter(t.TempDir())
		err := reporter.Save(&coverage.Export{}, coverage.CategoryLines)
		require.Error(t, err)
	})
}
