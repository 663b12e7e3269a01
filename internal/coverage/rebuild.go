package coverage

import "fmt"

// Rebuild assembles a new export from filtered data. Type and Version are
// copied from the original document unchanged; files, functions, and totals
// are replaced. The result always carries exactly one data section — any
// extra sections or top-level fields in the original are deliberately
// dropped, since downstream consumers only read the single-section form.
func Rebuild(original *Export, files []File, functions []Function, totals Summary) *Export {
	return &Export{
		Type:    original.Type,
		Version: original.Version,
		Data: []DataSection{{
			Files:     files,
			Functions: functions,
			Totals:    totals,
		}},
	}
}

// Scope runs the full filter/aggregate/rebuild pipeline against the first
// data section of export, producing a new export restricted to the files
// whose paths contain any of includedPaths.
func Scope(export *Export, includedPaths []string) (*Export, error) {
	if len(export.Data) == 0 {
		return nil, fmt.Errorf("coverage export has no data sections")
	}

	files, functions, err := Filter(export.Data[0], includedPaths)
	if err != nil {
		return nil, err
	}

	return Rebuild(export, files, functions, Aggregate(files)), nil
}
