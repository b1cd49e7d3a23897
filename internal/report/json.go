package report

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v (a Result or ProjectSummary) as indented JSON,
// matching the scan_results.json layout consumers already parse.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
