package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

func TestPatternScanner_SkipsFailingRule(t *testing.T) {
	catalog := rules.Compile(m.DomainSecurity, []rules.Definition{
		{ID: "T001", Pattern: `eval\(`, Message: "eval", Severity: m.SeverityHigh, Category: "code-injection"},
		{ID: "T002", Pattern: `exec\(`, Message: "exec", Severity: m.SeverityMedium, Category: "command-injection"},
	})

	scanner := newPatternScanner(catalog, 10, func(f *m.Finding, rule rules.Rule, _ string, _ []int) {
		if rule.ID == "T001" {
			panic("broken rule")
		}
	}, nil)

	var result m.ScanResult

	require.NotPanics(t, func() {
		result = scanner.Scan("eval(a); exec(b)", "")
	})

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "T002", result.Findings[0].SourceLabel)
	assert.Equal(t, m.SeverityMedium, result.OverallSeverity)
}

func TestLineColumn(t *testing.T) {
	text := "first\nsecond é line\nthird"

	line, column := lineColumn(text, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, column)

	// "line" on the second row, after a two-byte rune.
	line, column = lineColumn(text, len("first\nsecond é "))
	assert.Equal(t, 2, line)
	assert.Equal(t, 10, column)
}
