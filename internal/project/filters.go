package project

import "strings"

// defaultExtensions are the source kinds scanned when no explicit list is
// configured. Detection is lexical, so the list is about signal-to-noise,
// not language support.
var defaultExtensions = []string{".py", ".js", ".ts", ".jsx", ".tsx"}

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
	".tox":         true,
	".mypy_cache":  true,
}

// suffixes that are formally in-scope by extension but carry no useful
// signal (bundled or generated output)
var defaultExcludeFileSuffixes = []string{
	".min.js", ".bundle.js", ".map",
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

func isDefaultFileExcluded(lowerRel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	if strings.Contains(lowerRel, ".gen.") {
		return true
	}
	return false
}

// extensionList parses the comma-separated extension config, defaulting
// when empty. Entries are normalized to a leading dot and lower case.
func extensionList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return defaultExtensions
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, ".") {
			p = "." + p
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return defaultExtensions
	}
	return out
}

func hasScannedExtension(lowerRel string, exts []string) bool {
	for _, e := range exts {
		if strings.HasSuffix(lowerRel, e) {
			return true
		}
	}
	return false
}
