package coverage

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MalformedEntryError reports an export entry that lacks a required field.
// Raw carries the offending entry verbatim so the failure can be diagnosed
// from the error message alone, without re-running the toolchain.
type MalformedEntryError struct {
	Kind  string // "file" or "function"
	Index int
	Field string
	Raw   string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("%s entry %d has no %q field: %s", e.Kind, e.Index, e.Field, e.Raw)
}

// Load parses raw llvm-cov export bytes into a validated Export.
//
// Unknown fields (segments, expansions, per-function regions, ...) are
// ignored. Validation happens here, up front: a file entry without a
// filename, or a function entry without filenames, is fatal. Later pipeline
// stages can therefore assume a well-formed document. Only the first data
// section is read.
func Load(data []byte) (*Export, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("coverage export is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	section := root.Get("data.0")
	if !section.Exists() {
		return nil, fmt.Errorf("coverage export has no data sections")
	}

	out := DataSection{
		Files:     make([]File, 0, int(section.Get("files.#").Int())),
		Functions: make([]Function, 0, int(section.Get("functions.#").Int())),
	}

	for i, entry := range section.Get("files").Array() {
		var f File
		if err := json.Unmarshal([]byte(entry.Raw), &f); err != nil {
			return nil, fmt.Errorf("failed to decode file entry %d: %w", i, err)
		}
		if f.Filename == "" {
			return nil, &MalformedEntryError{Kind: "file", Index: i, Field: "filename", Raw: entry.Raw}
		}
		out.Files = append(out.Files, f)
	}

	for i, entry := range section.Get("functions").Array() {
		var fn Function
		if err := json.Unmarshal([]byte(entry.Raw), &fn); err != nil {
			return nil, fmt.Errorf("failed to decode function entry %d: %w", i, err)
		}
		if len(fn.Filenames) == 0 {
			return nil, &MalformedEntryError{Kind: "function", Index: i, Field: "filenames", Raw: entry.Raw}
		}
		out.Functions = append(out.Functions, fn)
	}

	if totals := section.Get("totals"); totals.Exists() {
		if err := json.Unmarshal([]byte(totals.Raw), &out.Totals); err != nil {
			return nil, fmt.Errorf("failed to decode totals: %w", err)
		}
	}

	return &Export{
		Type:    root.Get("type").String(),
		Version: root.Get("version").String(),
		Data:    []DataSection{out},
	}, nil
}
