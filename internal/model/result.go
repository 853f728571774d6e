package model

import "slices"

// Category groups the findings of one rule category, e.g. "sql-injection".
type Category struct {
	Name     string    `json:"name" yaml:"name"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// ScanResult is the output of one scanner invocation over one text buffer.
// It is never mutated after construction. Scanners hand out clones so the
// cached copy stays intact.
type ScanResult struct {
	Domain          Domain     `json:"domain" yaml:"domain"`
	Context         string     `json:"context,omitempty" yaml:"context,omitempty"`
	Findings        []Finding  `json:"findings" yaml:"findings"`
	Categories      []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	OverallSeverity Severity   `json:"overallSeverity" yaml:"overall_severity"`

	// Score is only populated by the quality scanner (0-100).
	Score *int `json:"score,omitempty" yaml:"score,omitempty"`
}

// Empty reports whether the result carries no findings.
func (r ScanResult) Empty() bool {
	return len(r.Findings) == 0
}

// Clone returns a deep copy of r. Callers and the scanner cache never share
// slices or the score.
func (r ScanResult) Clone() ScanResult {
	out := r
	out.Findings = slices.Clone(r.Findings)

	if r.Categories != nil {
		out.Categories = make([]Category, len(r.Categories))
		for i, c := range r.Categories {
			out.Categories[i] = Category{Name: c.Name, Findings: slices.Clone(c.Findings)}
		}
	}

	if r.Score != nil {
		score := *r.Score
		out.Score = &score
	}

	return out
}

// Bucket returns the findings filed under the named category.
func (r ScanResult) Bucket(name string) []Finding {
	for _, c := range r.Categories {
		if c.Name == name {
			return c.Findings
		}
	}

	return nil
}

// CombinedResult holds one ScanResult per domain together with the
// classifier verdict across all of them.
type CombinedResult struct {
	Context  string                `json:"context,omitempty" yaml:"context,omitempty"`
	Results  map[Domain]ScanResult `json:"results" yaml:"results"`
	Severity Severity              `json:"severity" yaml:"severity"`
}

// AllFindings flattens the findings of every domain in AllDomains order.
func (c CombinedResult) AllFindings() []Finding {
	var out []Finding

	for _, d := range AllDomains {
		if r, ok := c.Results[d]; ok {
			out = append(out, r.Findings...)
		}
	}

	return out
}
