package domain

import (
	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

const maxQualityScore = 100

var qualityPenalty = map[m.Severity]int{
	m.SeverityLow:      1,
	m.SeverityMedium:   3,
	m.SeverityHigh:     5,
	m.SeverityCritical: 10,
}

// NewQualityScanner returns the code quality scanner. Its results carry a
// 0-100 score.
func NewQualityScanner() Scanner {
	return newPatternScanner(rules.MustFor(m.DomainQuality), DefaultCacheSize, nil, scoreQuality)
}

func scoreQuality(r *m.ScanResult) {
	score := QualityScore(r.Findings)
	r.Score = &score
}

// QualityScore is 100 minus a per-finding penalty weighted by severity,
// floored at zero.
func QualityScore(findings []m.Finding) int {
	score := maxQualityScore
	for _, f := range findings {
		score -= qualityPenalty[f.Severity]
	}

	return max(score, 0)
}
