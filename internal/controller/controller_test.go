package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

func sampleSummary() m.WorkspaceSummary {
	return m.WorkspaceSummary{
		RunID:             "run-1",
		Roots:             []m.Path{"/ws"},
		FilesDiscovered:   3,
		FilesScanned:      3,
		FilesWithFindings: 2,
		Counts:            map[m.Domain]int{m.DomainSecurity: 1, m.DomainSecrets: 1},
		Severity:          m.SeverityCritical,
		Outcome:           m.StateCompleted,
		Duration:          1500 * time.Millisecond,
		Results: []m.FileScanResult{
			{
				FilePath:        "/ws/src/app.js",
				Vulnerabilities: []string{"[HIGH] Potential code injection risk (1 occurrence(s)) (line 1)"},
				Severity:        m.SeverityHigh,
				Findings: []m.Finding{
					{Domain: m.DomainSecurity, Severity: m.SeverityHigh, Description: "Potential code injection risk (1 occurrence(s))", SourceLabel: "SEC001", Line: 1, Column: 11},
				},
			},
			{
				FilePath: "/ws/config.js",
				Secrets:  []string{"[CRITICAL] AWS access key ID (1 occurrence(s)): AKIA************MPLE (line 2)"},
				Severity: m.SeverityCritical,
				Findings: []m.Finding{
					{Domain: m.DomainSecrets, Severity: m.SeverityCritical, Description: "AWS access key ID (1 occurrence(s))", SourceLabel: "SCR001", Line: 2, Column: 9, Evidence: "AKIA************MPLE"},
				},
			},
		},
	}
}

func sampleCombined() m.CombinedResult {
	score := 99

	return m.CombinedResult{
		Severity: m.SeverityHigh,
		Results: map[m.Domain]m.ScanResult{
			m.DomainSecurity: {
				Domain:          m.DomainSecurity,
				OverallSeverity: m.SeverityHigh,
				Findings: []m.Finding{
					{Domain: m.DomainSecurity, Type: "code-injection", Severity: m.SeverityHigh, Description: "Potential code injection risk (1 occurrence(s))", SourceLabel: "SEC001", Line: 1, Column: 11},
				},
				Categories: []m.Category{{Name: "code-injection", Findings: []m.Finding{
					{Domain: m.DomainSecurity, Type: "code-injection", Severity: m.SeverityHigh, Description: "Potential code injection risk (1 occurrence(s))", SourceLabel: "SEC001", Line: 1, Column: 11},
				}}},
			},
			m.DomainQuality: {Domain: m.DomainQuality, Findings: []m.Finding{}, Score: &score},
		},
	}
}

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayWorkspaceSummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayWorkspaceSummary(context.Background(), sampleSummary()))

	output := buf.String()
	for _, want := range []string{"src/app.js", "config.js", "CRITICAL", "AKIA************MPLE", "3 discovered", "completed", "security: 1"} {
		assert.Contains(t, output, want)
	}

	assert.Contains(t, strings.ToLower(output), "total files 2")

	// Critical files are listed before high ones.
	assert.Less(t, strings.Index(output, "config.js ["), strings.Index(output, "src/app.js ["))
}

func TestSimpleUI_DisplayWorkspaceSummary_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayWorkspaceSummary(context.Background(), m.WorkspaceSummary{Outcome: m.StateCompleted}))

	assert.Contains(t, buf.String(), noFindingsLabel)
}

func TestSimpleUI_DisplayScanResult(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayScanResult(context.Background(), "app.js", sampleCombined()))

	output := buf.String()
	for _, want := range []string{"app.js", "SEC001", "HIGH", "1:11", "Overall severity: HIGH", "Quality score: 99/100"} {
		assert.Contains(t, output, want)
	}
}

func TestSimpleUI_DisplayScanResult_Clean(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayScanResult(context.Background(), "stdin", m.CombinedResult{Results: map[m.Domain]m.ScanResult{}}))

	assert.Contains(t, buf.String(), "No issues found in stdin")
}

func TestSimpleUI_DisplayRules(t *testing.T) {
	ui, buf := newTestSimpleUI()

	catalog := rules.MustFor(m.DomainDatabase)
	require.NoError(t, ui.DisplayRules(context.Background(), []rules.Catalog{catalog}))

	output := buf.String()
	assert.Contains(t, output, "DB007")
	assert.Contains(t, output, "mysql")
	assert.Contains(t, strings.ToLower(output), "total rules")
}

func TestSimpleUI_DisplayFileUpdate(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx := context.Background()

	ui.DisplayFileUpdate(ctx, "/ws/app.js", []m.Diagnostic{{
		Range:    m.Range{Start: m.Position{Line: 0, Character: 10}},
		Message:  "Potential code injection risk",
		Severity: m.DiagnosticError,
		Code:     "SEC001",
	}})
	ui.DisplayFileUpdate(ctx, "/ws/clean.js", nil)

	output := buf.String()
	assert.Contains(t, output, "/ws/app.js: 1 issue(s)")
	assert.Contains(t, output, "1:11 error Potential code injection risk [SEC001]")
	assert.Contains(t, output, "/ws/clean.js: clean")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, ui.Start(ctx))
	assert.Error(t, ui.DisplayWorkspaceSummary(ctx, sampleSummary()))
	ui.DisplayScanStarted(ctx, []m.Path{"/ws"})
	assert.Empty(t, buf.String())
}

func TestTUI_DisplayWorkspaceSummary(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(context.Background(), WithScanMode()))
	require.NoError(t, tui.DisplayWorkspaceSummary(context.Background(), sampleSummary()))

	output := buf.String()
	for _, want := range []string{"Workspace scan", "src/app.js", "SEC001", "AKIA************MPLE", "[CRITICAL]", "2 with findings"} {
		assert.Contains(t, output, want)
	}
}

func TestTUI_DisplayScanResult(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayScanResult(context.Background(), "app.js", sampleCombined()))

	output := buf.String()
	for _, want := range []string{"app.js", "code-injection", "SEC001", "Overall severity"} {
		assert.Contains(t, output, want)
	}
}

func TestTUI_DisplayRulesAndUpdates(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx, WithWatchMode()))
	require.NoError(t, tui.DisplayRules(ctx, []rules.Catalog{rules.MustFor(m.DomainSecrets)}))
	tui.DisplayScanStarted(ctx, []m.Path{"/ws"})
	tui.DisplayFileUpdate(ctx, "/ws/app.js", []m.Diagnostic{{Message: "leak", Severity: m.DiagnosticWarning}})
	tui.DisplayFileUpdate(ctx, "/ws/clean.js", nil)

	output := buf.String()
	for _, want := range []string{"SCR001", "Total rules", "scanning /ws", "/ws/app.js", "1 issue(s)", "leak", "/ws/clean.js"} {
		assert.Contains(t, output, want)
	}
}

func TestPagerModel_Quit(t *testing.T) {
	model := newPagerModel(strings.Repeat("line\n", 100), 80, 20)

	_, cmd := model.Update(teaKey("q"))
	require.NotNil(t, cmd)

	updated, _ := model.Update(teaKey("G"))
	assert.InDelta(t, 1.0, updated.(pagerModel).viewport.ScrollPercent(), 0.001)
	assert.Contains(t, updated.View(), "q: quit")
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestDisplayPath(t *testing.T) {
	roots := []m.Path{"/ws", "/other"}

	assert.Equal(t, "src/app.js", displayPath("/ws/src/app.js", roots))
	assert.Equal(t, "x.js", displayPath("/other/x.js", roots))
	assert.Equal(t, "/elsewhere/y.js", displayPath("/elsewhere/y.js", roots))
}
