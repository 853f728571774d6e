package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

// SimpleUI implements UI using plain text and tables on the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayScanStarted announces the folders about to be scanned.
func (s *SimpleUI) DisplayScanStarted(ctx context.Context, roots []m.Path) {
	if ctx.Err() != nil {
		return
	}

	names := make([]string, 0, len(roots))
	for _, r := range roots {
		names = append(names, string(r))
	}

	s.printf("Scanning %d folder(s): %s\n", len(roots), strings.Join(names, ", "))
}

// DisplayWorkspaceSummary prints one table row per file with findings, the
// findings themselves and a summary line.
func (s *SimpleUI) DisplayWorkspaceSummary(ctx context.Context, summary m.WorkspaceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summary.Results) == 0 {
		s.printf("%s\n%s\n", noFindingsLabel, summaryLine(summary))
		return nil
	}

	results := sortedResults(summary.Results)

	s.printf("\n%s\n", renderFilesTable(results, summary.Roots))

	for _, r := range results {
		s.printf("%s [%s]\n", displayPath(r.FilePath, summary.Roots), r.Severity.Tier())

		for _, group := range [][]string{r.Vulnerabilities, r.Secrets, r.QualityIssues} {
			for _, line := range group {
				s.printf("  %s\n", line)
			}
		}
	}

	s.printf("\n%s\n", summaryLine(summary))

	if counts := domainCounts(summary); counts != "" {
		s.printf("Findings by domain: %s\n", counts)
	}

	return nil
}

func renderFilesTable(results []m.FileScanResult, roots []m.Path) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Severity", "Vulnerabilities", "Secrets", "Quality"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, r := range results {
		table.Append([]string{
			displayPath(r.FilePath, roots),
			r.Severity.Tier(),
			fmt.Sprintf("%d", len(r.Vulnerabilities)),
			fmt.Sprintf("%d", len(r.Secrets)),
			fmt.Sprintf("%d", len(r.QualityIssues)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(results)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayScanResult prints the findings of a single buffer scan.
func (s *SimpleUI) DisplayScanResult(ctx context.Context, source string, result m.CombinedResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	findings := result.AllFindings()
	if len(findings) == 0 {
		s.printf("%s in %s\n", noFindingsLabel, source)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Domain", "Rule", "Severity", "Location", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, f := range findings {
		table.Append([]string{string(f.Domain), f.SourceLabel, f.Severity.Tier(), findingLocation(f), findingMessage(f)})
	}

	table.Render()

	s.printf("%s\n%s", source, tableBuffer.String())
	s.printf("Overall severity: %s\n", result.Severity.Tier())

	if q, ok := result.Results[m.DomainQuality]; ok && q.Score != nil {
		s.printf("Quality score: %d/100\n", *q.Score)
	}

	return nil
}

// DisplayRules prints the rule catalogs.
func (s *SimpleUI) DisplayRules(ctx context.Context, catalogs []rules.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Domain", "ID", "Severity", "Category", "Contexts", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	total := 0

	for _, c := range catalogs {
		for _, r := range c.Rules() {
			table.Append([]string{string(c.Domain()), r.ID, r.Severity.Tier(), r.Category, contextsLabel(r.Contexts), r.Message})
			total++
		}
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Rules %d", total), "", "", "", ""})
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayFileUpdate prints the diagnostics of a rescanned or removed file.
func (s *SimpleUI) DisplayFileUpdate(ctx context.Context, path m.Path, diagnostics []m.Diagnostic) {
	if ctx.Err() != nil {
		return
	}

	if len(diagnostics) == 0 {
		s.printf("%s: clean\n", path)
		return
	}

	s.printf("%s: %d issue(s)\n", path, len(diagnostics))

	for _, d := range diagnostics {
		s.printf("  %d:%d %s %s [%s]\n", d.Range.Start.Line+1, d.Range.Start.Character+1, d.Severity, d.Message, d.Code)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
