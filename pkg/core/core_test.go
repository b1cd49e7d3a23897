package core

import (
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	cfg := Config{
		Root:            t.TempDir(),
		DefaultExcludes: true,
	}
	summary, err := Scan(cfg)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if summary.TotalFiles != 0 {
		t.Fatalf("expected empty dir to scan 0 files, got %d", summary.TotalFiles)
	}
	ids := RuleIDs()
	if len(ids) == 0 {
		t.Fatal("expected non-empty rule IDs")
	}
}

func TestAnalyze_Facade(t *testing.T) {
	res, err := Analyze([]byte("password = \"hunter2\"\n"))
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if !res.HasBugs {
		t.Fatal("expected a hardcoded password to be flagged")
	}
	if res.Breakdown.Critical == 0 {
		t.Fatal("expected a critical finding")
	}
}
