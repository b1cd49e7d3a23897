package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestScanEmptyTree(t *testing.T) {
	s, err := Scan(Config{Root: t.TempDir(), NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalFiles)
	assert.Equal(t, 0.0, s.Confidence)
}

func TestScanProjectSums(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.py", "eval(x)\nexcept:\n")
	writeFile(t, root, "ui.js", "console.log('hi')\nel.innerHTML = html\n")
	writeFile(t, root, "notes.txt", "eval(x)") // not a scanned extension
	writeFile(t, root, "sub/conf.py", `password = "letmein"`)

	res, err := ScanWithStats(Config{Root: root, NoCache: true})
	require.NoError(t, err)
	s := res.Summary

	assert.Equal(t, 3, s.TotalFiles)
	assert.Equal(t, 3, res.FilesScanned)
	assert.Equal(t, 3, s.FilesWithBugs)
	assert.Equal(t, 5, s.TotalIssues)
	assert.Equal(t, 2, s.Breakdown.Critical) // eval + password
	assert.Equal(t, 2, s.Breakdown.High)     // except + innerHTML
	assert.Equal(t, 1, s.Breakdown.Low)      // console.log
	assert.Equal(t, s.TotalIssues, s.Breakdown.Total())

	// mean of per-file confidences
	var sum float64
	for _, f := range s.Files {
		sum += f.Confidence
	}
	assert.InDelta(t, sum/3, s.Confidence, 1e-9)
}

func TestScanOrderIsDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"b.py", "a.py", "c/d.py", "c/a.py"} {
		writeFile(t, root, rel, "eval(x)\n")
	}
	first, err := Scan(Config{Root: root, NoCache: true, Threads: 4})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Scan(Config{Root: root, NoCache: true, Threads: 4})
		require.NoError(t, err)
		require.True(t, reflect.DeepEqual(first, again), "scan output must be deterministic")
	}
	// lexical walk order, not completion order
	var paths []string
	for _, f := range first.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"a.py", "b.py", filepath.Join("c", "a.py"), filepath.Join("c", "d.py")}, paths)
}

func TestScanSkipsUnreadableFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "good.py", "eval(x)\n")
	writeFile(t, root, "bad.py", "exec(x)\n")
	require.NoError(t, os.Chmod(filepath.Join(root, "bad.py"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(root, "bad.py"), 0o644) })
	if os.Getuid() == 0 {
		t.Skip("chmod-based unreadable file does not apply to root")
	}

	s, err := Scan(Config{Root: root, NoCache: true})
	require.NoError(t, err, "one unreadable file must not abort the scan")
	assert.Equal(t, 1, s.TotalFiles)
	assert.Contains(t, s.Skipped, "bad.py")
	assert.Equal(t, 1, s.TotalIssues)
}

func TestScanRespectsIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".bugsniffignore", "skipme.py\n")
	writeFile(t, root, "skipme.py", "eval(x)\n")
	writeFile(t, root, "keep.py", "eval(x)\n")

	s, err := Scan(Config{Root: root, NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalFiles)
	assert.Equal(t, "keep.py", s.Files[0].Path)
}

func TestScanDefaultExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/dep/index.js", "eval(x)\n")
	writeFile(t, root, "venv/lib/site.py", "eval(x)\n")
	writeFile(t, root, "main.py", "eval(x)\n")

	s, err := Scan(Config{Root: root, NoCache: true, DefaultExcludes: true})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalFiles)
	assert.Equal(t, "main.py", s.Files[0].Path)
}

func TestScanGlobFilters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "eval(x)\n")
	writeFile(t, root, "b.js", "eval(x)\n")

	s, err := Scan(Config{Root: root, NoCache: true, IncludeGlobs: "**/*.py"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalFiles)

	s, err = Scan(Config{Root: root, NoCache: true, ExcludeGlobs: "*.js"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalFiles)
	assert.Equal(t, "a.py", s.Files[0].Path)
}

func TestScanMaxBytes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.py", "eval(x)\n")
	writeFile(t, root, "large.py", string(make([]byte, 4096)))

	s, err := Scan(Config{Root: root, NoCache: true, MaxBytes: 1024})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalFiles)
	assert.Equal(t, "small.py", s.Files[0].Path)
}

func TestScanBinarySniffSkips(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "weird.py", "ok\x00binary")
	writeFile(t, root, "plain.py", "eval(x)\n")

	s, err := Scan(Config{Root: root, NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalFiles)
	assert.Contains(t, s.Skipped, "weird.py")
}

func TestScanUsesCache(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "eval(x)\n")

	first, err := Scan(Config{Root: root})
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root, ".bugsniffcache.json"))

	second, err := Scan(Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, first, second, "cached rescan must reproduce the summary")

	// content change invalidates the entry
	writeFile(t, root, "a.py", "nothing here\n")
	third, err := Scan(Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 0, third.TotalIssues)
}

func TestScanProgressCallback(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "x = 1\n")
	writeFile(t, root, "b.py", "y = 2\n")

	var mu = make(chan struct{}, 16)
	_, err := Scan(Config{Root: root, NoCache: true, Progress: func() { mu <- struct{}{} }})
	require.NoError(t, err)
	assert.Equal(t, 2, len(mu))
}

func TestCountTargets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "x")
	writeFile(t, root, "b.rb", "x")
	n, err := CountTargets(Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExtensionListCustom(t *testing.T) {
	exts := extensionList("go, RB,.java")
	assert.Equal(t, []string{".go", ".rb", ".java"}, exts)
	assert.Equal(t, defaultExtensions, extensionList(" "))
}
