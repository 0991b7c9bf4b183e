package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tomlshield/tomlshield/internal/report"
	"github.com/tomlshield/tomlshield/internal/scan"
)

// SARIFWriter outputs findings in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, rep *report.Report) error {
	sarif := buildSARIF(rep)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
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
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

func buildSARIF(rep *report.Report) sarifLog {
	rulesMap := make(map[string]sarifRule)
	var results []sarifResult

	for _, ff := range rep.Files {
		for _, f := range ff.Findings {
			ruleID := ruleIDFor(f.Reason)

			if _, ok := rulesMap[ruleID]; !ok {
				rulesMap[ruleID] = sarifRule{
					ID:               ruleID,
					Name:             ruleID,
					ShortDescription: sarifMessage{Text: ruleDescription(f.Reason)},
					DefaultConfig:    sarifDefaultConfig{Level: "warning"},
				}
			}

			results = append(results, sarifResult{
				RuleID:  ruleID,
				Level:   "warning",
				Message: sarifMessage{Text: findingMessage(f)},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: ff.Path},
						Region: sarifRegion{
							StartLine: f.Line,
							EndLine:   f.Line,
						},
					},
				}},
			})
		}
	}

	var rules []sarifRule
	for _, r := range rulesMap {
		rules = append(rules, r)
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           rep.Tool,
					Version:        rep.Version,
					InformationURI: "https://github.com/tomlshield/tomlshield",
					Rules:          rules,
				},
			},
			Results: results,
		}},
	}
}

func ruleIDFor(r scan.Reason) string {
	switch r {
	case scan.ReasonKeyName:
		return "sensitive-key-name"
	case scan.ReasonValuePattern:
		return "secret-shaped-value"
	default:
		return "sensitive-data"
	}
}

func ruleDescription(r scan.Reason) string {
	switch r {
	case scan.ReasonKeyName:
		return "Key name indicates a secret"
	case scan.ReasonValuePattern:
		return "Value matches a known secret shape"
	default:
		return "Sensitive configuration value"
	}
}

func findingMessage(f scan.Finding) string {
	if f.Section != "" {
		return fmt.Sprintf("Sensitive value for key %q in section [%s]", f.Key, f.Section)
	}
	return fmt.Sprintf("Sensitive value for key %q", f.Key)
}
