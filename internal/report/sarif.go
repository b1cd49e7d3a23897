package report

import (
	"encoding/json"
	"io"

	"github.com/bugsniff/bugsniff/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// SARIF has three levels; critical and high both map to error.
func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevCritical, types.SevHigh:
		return "error"
	case types.SevMed:
		return "warning"
	default:
		return "note"
	}
}

// FileFindings pairs a path with the findings produced for its blob,
// for exports that need path context the core result does not carry.
type FileFindings struct {
	Path     string
	Findings []types.Finding
}

// WriteSARIF writes per-file findings as SARIF 2.1.0.
func WriteSARIF(w io.Writer, version string, files []FileFindings) error {
	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: "bugsniff", Version: version}},
		Results: []sarifResult{},
	}
	for _, ff := range files {
		for _, f := range ff.Findings {
			run.Results = append(run.Results, sarifResult{
				RuleID:  f.Kind,
				Level:   sevToLevel(f.Severity),
				Message: sarifMessage{Text: f.Message},
				Locations: []sarifLoc{{
					PhysicalLocation: sarifPhys{
						ArtifactLocation: sarifArt{URI: ff.Path},
						Region:           sarifRegion{StartLine: f.Line},
					},
				}},
			})
		}
	}
	doc := sarif{Version: "2.1.0", Runs: []sarifRun{run}}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
