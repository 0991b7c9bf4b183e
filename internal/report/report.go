// Package report assembles scan findings from one or more files into a
// single output envelope with a run identity and summary counts.
package report

import (
	"github.com/google/uuid"

	"github.com/tomlshield/tomlshield/internal/scan"
)

// FileFindings groups the findings detected in a single input file.
type FileFindings struct {
	Path     string         `json:"path"`
	Findings []scan.Finding `json:"findings"`
}

// Summary provides an overview of findings across all files.
type Summary struct {
	Total    int            `json:"total"`
	ByReason map[string]int `json:"byReason,omitempty"`
}

// Report is the top-level output structure.
type Report struct {
	Tool    string         `json:"tool"`
	Version string         `json:"version"`
	RunID   string         `json:"runId"`
	Files   []FileFindings `json:"files"`
	Summary Summary        `json:"summary"`
}

// New returns an empty report stamped with a fresh run ID.
func New(version string) *Report {
	return &Report{
		Tool:    "tomlshield",
		Version: version,
		RunID:   uuid.NewString(),
	}
}

// Add records the findings for one input file, in the order scanned.
func (r *Report) Add(path string, findings []scan.Finding) {
	r.Files = append(r.Files, FileFindings{Path: path, Findings: findings})
	r.Summary.Total += len(findings)
	for _, f := range findings {
		if r.Summary.ByReason == nil {
			r.Summary.ByReason = make(map[string]int)
		}
		r.Summary.ByReason[string(f.Reason)]++
	}
}

// HasFindings reports whether any file produced findings.
func (r *Report) HasFindings() bool {
	return r.Summary.Total > 0
}
