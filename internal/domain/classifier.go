package domain

import m "codeguard.dev/pkg/codeguard/internal/model"

// Classifier derives one severity tier from a set of findings.
//
// Any critical finding makes the verdict critical. Otherwise any high
// finding, or more vulnerabilities or secrets than their thresholds, makes it
// high. Otherwise any finding at all, or more quality issues than
// QualityThreshold, makes it medium. An empty set is low.
type Classifier struct {
	VulnerabilityThreshold int
	SecretThreshold        int
	QualityThreshold       int
}

// DefaultClassifier uses the thresholds of the combined scan.
var DefaultClassifier = Classifier{
	VulnerabilityThreshold: 3,
	SecretThreshold:        2,
	QualityThreshold:       5,
}

// Classify returns the verdict for findings. The result depends only on the
// multiset of severities and domains, never on order.
func (c Classifier) Classify(findings []m.Finding) m.Severity {
	var vulnerabilities, secrets, quality int

	hasHigh := false

	for _, f := range findings {
		if f.Severity == m.SeverityCritical {
			return m.SeverityCritical
		}

		if f.Severity == m.SeverityHigh {
			hasHigh = true
		}

		switch f.Domain {
		case m.DomainSecrets:
			secrets++
		case m.DomainQuality:
			quality++
		default:
			vulnerabilities++
		}
	}

	if hasHigh || vulnerabilities > c.VulnerabilityThreshold || secrets > c.SecretThreshold {
		return m.SeverityHigh
	}

	if len(findings) > 0 || quality > c.QualityThreshold {
		return m.SeverityMedium
	}

	return m.SeverityLow
}

// ClassifyFiles aggregates per-file results with the same precedence.
func (c Classifier) ClassifyFiles(results []m.FileScanResult) m.Severity {
	var all []m.Finding
	for _, r := range results {
		all = append(all, r.Findings...)
	}

	return c.Classify(all)
}

// Classify uses DefaultClassifier.
func Classify(findings []m.Finding) m.Severity {
	return DefaultClassifier.Classify(findings)
}
