package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".bugsniffignore")
	content := "node_modules/\n*.min.js\n# comment\n\ngenerated.py\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js": true,
		"dist/app.min.js":           true,
		"generated.py":              true,
		"sub/node_modules/x.js":     true,
		"src/app.go":                false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), ".bugsniffignore"))
	if err != nil {
		t.Fatalf("missing ignore file should not error: %v", err)
	}
	if m.Match("anything.py") {
		t.Fatal("empty matcher must match nothing")
	}
}
