package report

import (
	"fmt"

	"github.com/zjy-dev/covscope/internal/coverage"
)

// Summary returns the one-line human-readable view of a category tally,
// e.g. "lines: 8/10 (80.00%)".
func Summary(category coverage.Category, c coverage.Counts) string {
	return fmt.Sprintf("%s: %d/%d (%.2f%%)", category, c.Covered, c.Count, c.Percent)
}
