package coverage

import (
	"fmt"
	"strings"
)

// Filter selects the files and functions scoped to includedPaths.
//
// A file is kept when its path contains any of the configured substrings
// (case-sensitive, no globbing, no path normalization). A function is kept
// when any of its filenames matches; a function with no matching filename is
// dropped entirely. Input ordering is preserved. An empty include set keeps
// nothing, which is valid and yields empty output.
func Filter(section DataSection, includedPaths []string) ([]File, []Function, error) {
	files := make([]File, 0, len(section.Files))
	for i, f := range section.Files {
		if f.Filename == "" {
			return nil, nil, fmt.Errorf("file entry %d has no filename: %+v", i, f)
		}
		if matchesAny(f.Filename, includedPaths) {
			files = append(files, f)
		}
	}

	functions := make([]Function, 0, len(section.Functions))
	for i, fn := range section.Functions {
		if len(fn.Filenames) == 0 {
			return nil, nil, fmt.Errorf("function entry %d (%q) has no filenames: %+v", i, fn.Name, fn)
		}
		for _, name := range fn.Filenames {
			if matchesAny(name, includedPaths) {
				functions = append(functions, fn)
				break
			}
		}
	}

	return files, functions, nil
}

func matchesAny(path string, includedPaths []string) bool {
	for _, p := range includedPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
