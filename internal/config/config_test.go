package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bugsniff/bugsniff/internal/analyze"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "bugsniff.yaml", "threads: 4\nmax_bytes: 123\nextensions: .py,.go\nfail_on: high\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("expected threads=4, got %#v", cfg.Threads)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Extensions == nil || *cfg.Extensions != ".py,.go" {
		t.Fatalf("expected extensions, got %#v", cfg.Extensions)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "high" {
		t.Fatalf("expected fail_on=high, got %#v", cfg.FailOn)
	}
}

func TestLoadFile_Tuning(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "bugsniff.yaml", "tuning:\n  threshold: 0.5\n  line_weight: 0.002\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	tn := cfg.GetTuning()
	if tn.Threshold != 0.5 {
		t.Fatalf("Threshold=%v want 0.5", tn.Threshold)
	}
	if tn.LineWeight != 0.002 {
		t.Fatalf("LineWeight=%v want 0.002", tn.LineWeight)
	}
	// unset fields keep defaults
	def := analyze.DefaultTuning()
	if tn.ComplexityWeight != def.ComplexityWeight || tn.Cap != def.Cap {
		t.Fatalf("unset tuning fields must default: %+v", tn)
	}
}

func TestGetTuning_NoBlock(t *testing.T) {
	var cfg FileConfig
	if cfg.GetTuning() != analyze.DefaultTuning() {
		t.Fatal("nil tuning block must yield defaults")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "bugsniff.yaml", "threads: 1\n")
	writeTemp(t, dir, ".bugsniff.yaml", "threads: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 7 {
		t.Fatalf("expected threads=7 from .bugsniff.yaml, got %#v", cfg.Threads)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "bugsniff")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yml"), []byte("threads: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 9 {
		t.Fatalf("expected threads=9 from global config, got %#v", cfg.Threads)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}
