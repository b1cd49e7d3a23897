package rules

import (
	"regexp"

	"github.com/bugsniff/bugsniff/internal/types"
)

// Rule is one entry of the detection table: a line-local pattern with the
// severity and message attached to every match. Rules are immutable; a
// rule's identity is its position in the table.
type Rule struct {
	ID       string
	Pattern  *regexp.Regexp
	Severity types.Severity
	Message  string
}

// All patterns are case-insensitive and match within a single line.
// The blob is plain text to us; nothing here assumes a parseable language.
var (
	reNoneCompare   = regexp.MustCompile(`(?i)==\s*None`)
	reBareExcept    = regexp.MustCompile(`(?i)except\s*:`)
	reEvalCall      = regexp.MustCompile(`(?i)eval\s*\(`)
	reExecCall      = regexp.MustCompile(`(?i)exec\s*\(`)
	reVarDecl       = regexp.MustCompile(`(?i)var\s+\w+\s*=`)
	reConsoleLog    = regexp.MustCompile(`(?i)console\.log\(`)
	reTodoMarker    = regexp.MustCompile(`(?i)TODO|FIXME|HACK`)
	rePasswordLit   = regexp.MustCompile(`(?i)password\s*=\s*["']`)
	reAPIKeyLit     = regexp.MustCompile(`(?i)api[_-]?key\s*=\s*["']`)
	reInnerHTMLSet  = regexp.MustCompile(`(?i)\.innerHTML\s*=`)
)

// table is built once at init and never mutated afterwards, so it is safe
// to share across concurrent scans without locking.
var table = []Rule{
	{ID: "none_comparison", Pattern: reNoneCompare, Severity: types.SevMed, Message: `Use "is None" instead of "== None"`},
	{ID: "bare_except", Pattern: reBareExcept, Severity: types.SevHigh, Message: "Bare except clause - specify exception type"},
	{ID: "eval_call", Pattern: reEvalCall, Severity: types.SevCritical, Message: "Use of eval() is dangerous - security risk"},
	{ID: "exec_call", Pattern: reExecCall, Severity: types.SevCritical, Message: "Use of exec() is dangerous - security risk"},
	{ID: "var_declaration", Pattern: reVarDecl, Severity: types.SevLow, Message: "Use let or const instead of var in JavaScript"},
	{ID: "console_log", Pattern: reConsoleLog, Severity: types.SevLow, Message: "Remove console.log before production"},
	{ID: "todo_marker", Pattern: reTodoMarker, Severity: types.SevMed, Message: "Unresolved TODO/FIXME comment"},
	{ID: "hardcoded_password", Pattern: rePasswordLit, Severity: types.SevCritical, Message: "Hardcoded password detected - security risk"},
	{ID: "hardcoded_api_key", Pattern: reAPIKeyLit, Severity: types.SevCritical, Message: "Hardcoded API key detected - security risk"},
	{ID: "unsafe_innerhtml", Pattern: reInnerHTMLSet, Severity: types.SevHigh, Message: "Potential XSS vulnerability with innerHTML"},
}

// Default returns the built-in rule table in evaluation order. Callers
// must treat the returned slice as read-only.
func Default() []Rule {
	return table
}

// IDs returns the rule IDs in table order.
func IDs() []string {
	out := make([]string, len(table))
	for i, r := range table {
		out[i] = r.ID
	}
	return out
}

// ByID returns the rule with the given ID, or false if no rule has it.
func ByID(id string) (Rule, bool) {
	for _, r := range table {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
