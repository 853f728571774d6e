package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeguard.dev/pkg/codeguard/internal/domain"
	m "codeguard.dev/pkg/codeguard/internal/model"
)

func findings(d m.Domain, s m.Severity, n int) []m.Finding {
	out := make([]m.Finding, n)
	for i := range out {
		out[i] = m.Finding{Domain: d, Severity: s}
	}

	return out
}

func concat(lists ...[]m.Finding) []m.Finding {
	var out []m.Finding
	for _, l := range lists {
		out = append(out, l...)
	}

	return out
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		findings []m.Finding
		want     m.Severity
	}{
		{name: "empty", findings: nil, want: m.SeverityLow},
		{name: "single low", findings: findings(m.DomainQuality, m.SeverityLow, 1), want: m.SeverityMedium},
		{name: "critical wins", findings: concat(findings(m.DomainQuality, m.SeverityLow, 3), findings(m.DomainSecrets, m.SeverityCritical, 1)), want: m.SeverityCritical},
		{name: "any high", findings: concat(findings(m.DomainQuality, m.SeverityLow, 1), findings(m.DomainSecurity, m.SeverityHigh, 1)), want: m.SeverityHigh},
		{name: "vulnerabilities at threshold", findings: findings(m.DomainSecurity, m.SeverityMedium, 3), want: m.SeverityMedium},
		{name: "vulnerabilities over threshold", findings: findings(m.DomainSecurity, m.SeverityMedium, 4), want: m.SeverityHigh},
		{name: "infrastructure counts as vulnerability", findings: findings(m.DomainDevOps, m.SeverityLow, 4), want: m.SeverityHigh},
		{name: "secrets at threshold", findings: findings(m.DomainSecrets, m.SeverityLow, 2), want: m.SeverityMedium},
		{name: "secrets over threshold", findings: findings(m.DomainSecrets, m.SeverityLow, 3), want: m.SeverityHigh},
		{name: "many quality issues", findings: findings(m.DomainQuality, m.SeverityLow, 6), want: m.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.findings))
		})
	}
}

func TestClassifier_OrderIndependent(t *testing.T) {
	base := concat(
		findings(m.DomainSecurity, m.SeverityMedium, 2),
		findings(m.DomainSecrets, m.SeverityLow, 1),
		findings(m.DomainQuality, m.SeverityHigh, 1),
		findings(m.DomainSecurity, m.SeverityLow, 2),
	)

	want := domain.Classify(base)

	reversed := make([]m.Finding, len(base))
	for i, f := range base {
		reversed[len(base)-1-i] = f
	}

	rotated := append(append([]m.Finding{}, base[2:]...), base[:2]...)

	assert.Equal(t, want, domain.Classify(reversed))
	assert.Equal(t, want, domain.Classify(rotated))
}

func TestClassifier_ClassifyFiles(t *testing.T) {
	files := []m.FileScanResult{
		{FilePath: "/ws/a.js", Findings: findings(m.DomainSecrets, m.SeverityMedium, 2)},
		{FilePath: "/ws/b.js", Findings: findings(m.DomainSecrets, m.SeverityMedium, 1)},
	}

	assert.Equal(t, m.SeverityHigh, domain.DefaultClassifier.ClassifyFiles(files))
	assert.Equal(t, m.SeverityLow, domain.DefaultClassifier.ClassifyFiles(nil))
}

func TestClassifier_CustomThresholds(t *testing.T) {
	strict := domain.Classifier{VulnerabilityThreshold: 0, SecretThreshold: 0, QualityThreshold: 0}

	assert.Equal(t, m.SeverityHigh, strict.Classify(findings(m.DomainSecurity, m.SeverityLow, 1)))
	assert.Equal(t, m.SeverityMedium, strict.Classify(findings(m.DomainQuality, m.SeverityLow, 1)))
}
