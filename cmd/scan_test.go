package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codeguard.dev/pkg/codeguard/internal/domain"
	domainmocks "codeguard.dev/pkg/codeguard/internal/domain/mocks"
	m "codeguard.dev/pkg/codeguard/internal/model"
)

func summaryWithFindings(root string, severity m.Severity) m.WorkspaceSummary {
	path := m.Path(filepath.Join(root, "app.js"))

	return m.WorkspaceSummary{
		RunID:             "run-1",
		Roots:             []m.Path{m.Path(root)},
		FilesDiscovered:   2,
		FilesScanned:      2,
		FilesWithFindings: 1,
		Counts:            map[m.Domain]int{m.DomainSecurity: 1},
		Severity:          severity,
		Outcome:           m.StateCompleted,
		Results: []m.FileScanResult{{
			FilePath:        path,
			Vulnerabilities: []string{"[HIGH] Potential code injection risk (1 occurrence(s)) (line 1)"},
			Severity:        severity,
			Findings: []m.Finding{{
				Domain:      m.DomainSecurity,
				Severity:    m.SeverityHigh,
				Description: "Potential code injection risk (1 occurrence(s))",
				SourceLabel: "SEC001",
				Line:        1,
				Column:      16,
				Count:       1,
			}},
		}},
	}
}

func withMockOrchestrator(t *testing.T) *domainmocks.MockWorkspaceOrchestrator {
	t.Helper()

	mockOrchestrator := domainmocks.NewMockWorkspaceOrchestrator(t)

	originalOrchestrator := orchestrator
	orchestrator = mockOrchestrator
	t.Cleanup(func() { orchestrator = originalOrchestrator })

	return mockOrchestrator
}

func TestScanCmd_PassesOptions(t *testing.T) {
	mockOrchestrator := withMockOrchestrator(t)
	dir := t.TempDir()

	mockOrchestrator.EXPECT().
		ScanWorkspace(mock.Anything, mock.MatchedBy(func(opts m.WorkspaceScanOptions) bool {
			return len(opts.Roots) == 1 &&
				opts.Roots[0] == m.Path(dir) &&
				opts.ScanDepth == 2 &&
				opts.MaxFileSizeBytes == 4096 &&
				slices.Contains(opts.ExcludePatterns, "**/gen/**") &&
				slices.Equal(opts.IncludePatterns, domain.DefaultIncludePatterns)
		})).
		Return(nil, nil)
	mockOrchestrator.EXPECT().Summary().Return(summaryWithFindings(dir, m.SeverityHigh))

	output, err := executeCommand(t, newScanCmd(), "scan", dir, "--depth", "2", "--max-file-size", "4096", "-x", "**/gen/**")
	require.NoError(t, err)

	assert.Contains(t, output, "Scanning 1 folder(s)")
	assert.Contains(t, output, "app.js")
	assert.Contains(t, output, "Potential code injection risk")
	assert.Contains(t, output, "Outcome: completed")
}

func TestScanCmd_FailOn(t *testing.T) {
	tests := []struct {
		name    string
		failOn  string
		wantErr bool
	}{
		{"gate reached", "high", true},
		{"gate not reached", "critical", false},
		{"gate disabled", "none", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrchestrator := withMockOrchestrator(t)
			dir := t.TempDir()

			mockOrchestrator.EXPECT().ScanWorkspace(mock.Anything, mock.Anything).Return(nil, nil)
			mockOrchestrator.EXPECT().Summary().Return(summaryWithFindings(dir, m.SeverityHigh))

			_, err := executeCommand(t, newScanCmd(), "scan", dir, "--fail-on", tt.failOn)
			if tt.wantErr {
				require.ErrorIs(t, err, errThresholdExceeded)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestScanCmd_YAMLOutput(t *testing.T) {
	mockOrchestrator := withMockOrchestrator(t)
	dir := t.TempDir()

	mockOrchestrator.EXPECT().ScanWorkspace(mock.Anything, mock.Anything).Return(nil, nil)
	mockOrchestrator.EXPECT().Summary().Return(summaryWithFindings(dir, m.SeverityHigh))

	output, err := executeCommand(t, newScanCmd(), "scan", dir, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, output, "run_id: run-1")
	assert.Contains(t, output, "files_with_findings: 1")
	assert.Contains(t, output, "severity: high")
	assert.Contains(t, output, "source_label: SEC001")
	assert.Contains(t, output, "outcome: completed")
	assert.NotContains(t, output, "Scanning")
}

func TestScanCmd_ScanError(t *testing.T) {
	mockOrchestrator := withMockOrchestrator(t)

	mockOrchestrator.EXPECT().ScanWorkspace(mock.Anything, mock.Anything).Return(nil, domain.ErrNoWorkspace)

	_, err := executeCommand(t, newScanCmd(), "scan", t.TempDir())
	require.ErrorIs(t, err, domain.ErrNoWorkspace)
}

func TestScanCmd_InvalidFormat(t *testing.T) {
	withMockOrchestrator(t)

	_, err := executeCommand(t, newScanCmd(), "scan", t.TempDir(), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestScanCmd_Workspace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app.js"), []byte("const result = eval(userInput);\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "total.js"), []byte("const total = items.length;\nexport default total;\n"), 0o644))

	output, err := executeCommand(t, newScanCmd(), "scan", dir, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, output, "files_discovered: 2")
	assert.Contains(t, output, "files_with_findings: 1")
	assert.Contains(t, output, "source_label: SEC001")
	assert.Contains(t, output, "app.js")
	assert.NotContains(t, output, "total.js")
}
