package project

import (
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/bugsniff/bugsniff/internal/ignore"
)

// listTargets walks the tree under cfg.Root and returns the relative
// paths eligible for scanning, in lexical walk order. Only cheap checks
// happen here (extension, globs, ignore file, size); file contents are
// read later by the scan workers.
func listTargets(cfg Config, ign ignore.Matcher) ([]string, error) {
	exts := extensionList(cfg.Extensions)
	var targets []string
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		lower := strings.ToLower(strings.ReplaceAll(rel, "\\", "/"))
		if !hasScannedExtension(lower, exts) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(lower) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		targets = append(targets, rel)
		return nil
	})
	return targets, err
}

// CountTargets returns how many files a scan with cfg would visit. Used
// for progress reporting; mirrors the selection logic of listTargets.
func CountTargets(cfg Config) (int, error) {
	ign, err := ignore.Load(filepath.Join(cfg.Root, IgnoreFileName))
	if err != nil {
		return 0, err
	}
	targets, err := listTargets(cfg, ign)
	return len(targets), err
}

// looksBinary reports whether the content prefix contains NUL bytes,
// the cheap proxy for "not text".
func looksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// allowedByGlobs applies the include/exclude glob configuration. Include
// globs, when present, act as a positive filter; excludes are subtracted
// last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
