package coverage

import (
	"encoding/json"
	"fmt"
)

// Export mirrors the llvm-cov JSON export document ("llvm.coverage.json.export").
// Type and Version are opaque toolchain metadata; covscope copies them into
// derived exports verbatim and never interprets them.
type Export struct {
	Type    string        `json:"type"`
	Version string        `json:"version"`
	Data    []DataSection `json:"data"`
}

// DataSection is one export section. The format allows several per document,
// but covscope only ever reads and emits the first.
type DataSection struct {
	Files     []File     `json:"files"`
	Functions []Function `json:"functions"`
	Totals    Summary    `json:"totals"`
}

// File is the per-source-file coverage record.
type File struct {
	Filename string  `json:"filename"`
	Summary  Summary `json:"summary"`
}

// Function is the per-function coverage record. Filenames lists every file
// the function's code spans; an inlined function may span more than one.
type Function struct {
	Name      string   `json:"name"`
	Count     int64    `json:"count"`
	Filenames []string `json:"filenames"`
}

// Summary holds the five fixed coverage categories.
type Summary struct {
	Branches       Counts `json:"branches"`
	Functions      Counts `json:"functions"`
	Instantiations Counts `json:"instantiations"`
	Lines          Counts `json:"lines"`
	Regions        Counts `json:"regions"`
}

// Counts is the tally for a single category. NotCovered only exists for the
// branches and regions categories (they track a third outcome besides
// covered/uncovered); it stays nil elsewhere so it is omitted from serialized
// output. Percent is derived: the aggregator always recomputes it and never
// trusts the value found in upstream data.
type Counts struct {
	Count      int64   `json:"count"`
	Covered    int64   `json:"covered"`
	NotCovered *int64  `json:"notcovered,omitempty"`
	Percent    float64 `json:"percent"`
}

// Category names one of the five fixed coverage categories.
type Category string

const (
	CategoryBranches       Category = "branches"
	CategoryFunctions      Category = "functions"
	CategoryInstantiations Category = "instantiations"
	CategoryLines          Category = "lines"
	CategoryRegions        Category = "regions"
)

// ParseCategory validates a category name coming from flags or configuration.
func ParseCategory(name string) (Category, error) {
	switch c := Category(name); c {
	case CategoryBranches, CategoryFunctions, CategoryInstantiations, CategoryLines, CategoryRegions:
		return c, nil
	}
	return "", fmt.Errorf("unknown coverage category %q (expected one of: branches, functions, instantiations, lines, regions)", name)
}

// Category returns the tally for the named category. Callers are expected to
// hold a value produced by ParseCategory; anything else yields a zero tally.
func (s Summary) Category(c Category) Counts {
	switch c {
	case CategoryBranches:
		return s.Branches
	case CategoryFunctions:
		return s.Functions
	case CategoryInstantiations:
		return s.Instantiations
	case CategoryLines:
		return s.Lines
	case CategoryRegions:
		return s.Regions
	}
	return Counts{}
}

// Encode renders the export as pretty-printed JSON. Key order follows the
// struct definitions, so equal exports always encode to identical bytes.
func (e *Export) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode coverage export: %w", err)
	}
	return data, nil
}
