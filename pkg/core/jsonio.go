package core

import (
	"encoding/json"
	"io"
)

// MarshalSummary pretty-prints a project summary as JSON for humans or
// pipelines.
func MarshalSummary(w io.Writer, s ProjectSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// UnmarshalSummary decodes summary JSON, useful for ingestion tests.
func UnmarshalSummary(r io.Reader) (ProjectSummary, error) {
	var s ProjectSummary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return ProjectSummary{}, err
	}
	return s, nil
}
