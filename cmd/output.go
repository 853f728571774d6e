package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

// writeYAML encodes v as a YAML document on w.
func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return encoder.Close()
}

// ruleDocument is the YAML shape of a catalog rule.
type ruleDocument struct {
	ID         string     `yaml:"id"`
	Domain     m.Domain   `yaml:"domain"`
	Severity   m.Severity `yaml:"severity"`
	Category   string     `yaml:"category"`
	Message    string     `yaml:"message"`
	ExternalID string     `yaml:"external_id,omitempty"`
	Contexts   []string   `yaml:"contexts,omitempty"`
	Pattern    string     `yaml:"pattern"`
}

func ruleDocuments(catalogs []rules.Catalog) []ruleDocument {
	var docs []ruleDocument

	for _, c := range catalogs {
		for _, r := range c.Rules() {
			docs = append(docs, ruleDocument{
				ID:         r.ID,
				Domain:     c.Domain(),
				Severity:   r.Severity,
				Category:   r.Category,
				Message:    r.Message,
				ExternalID: r.ExternalID,
				Contexts:   r.Contexts,
				Pattern:    r.Pattern,
			})
		}
	}

	return docs
}

// fileDocument is the YAML shape of a file result.
type fileDocument struct {
	m.FileScanResult `yaml:",inline"`
	Findings         []m.Finding `yaml:"findings"`
}

// summaryDocument is the YAML shape of a workspace scan.
type summaryDocument struct {
	RunID             string           `yaml:"run_id"`
	Roots             []m.Path         `yaml:"roots"`
	FilesDiscovered   int              `yaml:"files_discovered"`
	FilesScanned      int              `yaml:"files_scanned"`
	FilesSkipped      int              `yaml:"files_skipped"`
	FilesWithFindings int              `yaml:"files_with_findings"`
	Counts            map[m.Domain]int `yaml:"counts"`
	Severity          m.Severity       `yaml:"severity"`
	Outcome           string           `yaml:"outcome"`
	Duration          string           `yaml:"duration"`
	Results           []fileDocument   `yaml:"results"`
}

func newSummaryDocument(summary m.WorkspaceSummary) summaryDocument {
	doc := summaryDocument{
		RunID:             summary.RunID,
		Roots:             summary.Roots,
		FilesDiscovered:   summary.FilesDiscovered,
		FilesScanned:      summary.FilesScanned,
		FilesSkipped:      summary.FilesSkipped,
		FilesWithFindings: summary.FilesWithFindings,
		Counts:            summary.Counts,
		Severity:          summary.Severity,
		Outcome:           summary.Outcome.String(),
		Duration:          summary.Duration.String(),
		Results:           make([]fileDocument, 0, len(summary.Results)),
	}

	for _, r := range summary.Results {
		doc.Results = append(doc.Results, fileDocument{FileScanResult: r, Findings: r.Findings})
	}

	return doc
}
