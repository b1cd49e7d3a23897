package analyze

import (
	"regexp"
	"strings"
)

// Features is the fixed-size metric vector computed over a whole blob.
// It feeds the confidence heuristic only; it never changes which findings
// the line matcher produces.
type Features struct {
	Lines        int
	Conditionals int
	Loops        int
	TryBlocks    int
	Functions    int
	Constants    int
	Imports      int
	LongFile     int // 1 if the blob exceeds 1000 bytes
	ManyLines    int // 1 if the blob exceeds 300 lines
	TODOs        int
}

// Uppercase-only word tokens approximate constant identifiers. The word
// boundaries keep this from firing inside mixed-case names.
var reConstToken = regexp.MustCompile(`\b[A-Z_]+\b`)

const (
	longFileBytes = 1000
	manyLinesOver = 300
)

// Extract computes the feature vector for a blob. Counts are raw substring
// occurrences over the full text, matching the coarse granularity this
// heuristic was defined with; the blob is never parsed.
func Extract(blob []byte) Features {
	if len(blob) == 0 {
		return Features{}
	}
	code := string(blob)
	f := Features{
		Lines:        strings.Count(code, "\n") + 1,
		Conditionals: strings.Count(code, "if"),
		Loops:        strings.Count(code, "for") + strings.Count(code, "while"),
		TryBlocks:    strings.Count(code, "try"),
		Functions:    strings.Count(code, "def") + strings.Count(code, "function"),
		Constants:    len(reConstToken.FindAllString(code, -1)),
		Imports:      strings.Count(code, "import") + strings.Count(code, "require"),
		TODOs:        strings.Count(code, "# TODO") + strings.Count(code, "// TODO"),
	}
	if len(code) > longFileBytes {
		f.LongFile = 1
	}
	if strings.Count(code, "\n") > manyLinesOver {
		f.ManyLines = 1
	}
	return f
}

// Vector returns the features in their canonical order.
func (f Features) Vector() [10]int {
	return [10]int{
		f.Lines, f.Conditionals, f.Loops, f.TryBlocks, f.Functions,
		f.Constants, f.Imports, f.LongFile, f.ManyLines, f.TODOs,
	}
}
