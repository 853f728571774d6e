package controller

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

const noFindingsLabel = "No issues found"

// displayPath shortens path relative to the first root containing it.
func displayPath(path m.Path, roots []m.Path) string {
	for _, root := range roots {
		rel, err := filepath.Rel(string(root), string(path))
		if err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return string(path)
}

// sortedResults orders files by severity, highest first, then by path.
func sortedResults(results []m.FileScanResult) []m.FileScanResult {
	out := append([]m.FileScanResult(nil), results...)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity > out[j].Severity
		}

		return out[i].FilePath < out[j].FilePath
	})

	return out
}

func summaryLine(summary m.WorkspaceSummary) string {
	return fmt.Sprintf("Files: %d discovered, %d scanned, %d skipped, %d with findings | Severity: %s | Outcome: %s | %s",
		summary.FilesDiscovered,
		summary.FilesScanned,
		summary.FilesSkipped,
		summary.FilesWithFindings,
		summary.Severity.Tier(),
		summary.Outcome,
		summary.Duration.Round(time.Millisecond))
}

func domainCounts(summary m.WorkspaceSummary) string {
	parts := make([]string, 0, len(m.AllDomains))

	for _, d := range m.AllDomains {
		if n := summary.Counts[d]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", d, n))
		}
	}

	return strings.Join(parts, ", ")
}

func findingLocation(f m.Finding) string {
	if f.Line == 0 {
		return "-"
	}

	return fmt.Sprintf("%d:%d", f.Line, f.Column)
}

func findingMessage(f m.Finding) string {
	if f.Evidence == "" {
		return f.Description
	}

	return f.Description + ": " + f.Evidence
}

func contextsLabel(contexts []string) string {
	if len(contexts) == 0 {
		return "*"
	}

	return strings.Join(contexts, ",")
}
