package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bugsniff/bugsniff/internal/types"
)

// ScanRecord is one line of the scan history log.
type ScanRecord struct {
	Timestamp     time.Time       `json:"timestamp"`
	ScanID        string          `json:"scan_id"`
	Root          string          `json:"root"`
	TotalFiles    int             `json:"total_files"`
	FilesWithBugs int             `json:"files_with_bugs"`
	TotalIssues   int             `json:"total_issues"`
	Breakdown     types.Breakdown `json:"severity_breakdown"`
	Confidence    float64         `json:"confidence"`
	SkippedFiles  int             `json:"skipped_files"`
	Duration      string          `json:"duration"`
}

// AuditLog appends scan records to a JSONL file next to (or inside) the
// scanned repo.
type AuditLog struct {
	logPath string
}

func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".bugsniff_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "bugsniff_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

// LoadHistory returns past scan records, most recent first. Malformed
// lines are skipped.
func (a *AuditLog) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record ScanRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogScan appends one record to the history.
func (a *AuditLog) LogScan(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// CreateScanRecord builds a record from a finished project scan.
func CreateScanRecord(root string, s types.ProjectSummary, duration time.Duration) ScanRecord {
	return ScanRecord{
		Timestamp:     time.Now(),
		Root:          root,
		TotalFiles:    s.TotalFiles,
		FilesWithBugs: s.FilesWithBugs,
		TotalIssues:   s.TotalIssues,
		Breakdown:     s.Breakdown,
		Confidence:    s.Confidence,
		SkippedFiles:  len(s.Skipped),
		Duration:      duration.String(),
	}
}
