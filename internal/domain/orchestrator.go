package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"codeguard.dev/pkg/codeguard/internal/adapter"
	m "codeguard.dev/pkg/codeguard/internal/model"
)

// ErrNoWorkspace is returned when a workspace scan has no root folder.
var ErrNoWorkspace = errors.New("no workspace folder to scan")

// DiagnosticSource is the source label attached to published diagnostics.
const DiagnosticSource = "codeguard"

// WorkspaceOrchestrator scans workspace folders with bounded concurrency,
// keeps one result per file and publishes diagnostics for files with
// findings.
type WorkspaceOrchestrator interface {
	// ScanWorkspace scans every root in opts. While a scan is running a
	// second call returns the current results without scanning. A cancelled
	// ctx stops the scan early and returns what was collected.
	ScanWorkspace(ctx context.Context, opts m.WorkspaceScanOptions) ([]m.FileScanResult, error)
	// ScanFile rescans one file and replaces its stored result.
	ScanFile(ctx context.Context, path m.Path) (m.FileScanResult, error)
	// HandleEvent applies a watcher or editor event to the stored results.
	HandleEvent(ctx context.Context, event m.FileEvent) error
	// Configure replaces the options used by HandleEvent without scanning.
	Configure(opts m.WorkspaceScanOptions)
	Results() []m.FileScanResult
	Summary() m.WorkspaceSummary
	State() m.ScanState
	ClearCaches()
}

type orchestrator struct {
	fsAdapter  adapter.SourceFSAdapter
	store      adapter.ResultStore
	publisher  adapter.DiagnosticsPublisher
	scanners   Scanners
	classifier Classifier

	mu      sync.Mutex
	state   m.ScanState
	opts    m.WorkspaceScanOptions
	summary m.WorkspaceSummary
}

// NewWorkspaceOrchestrator constructs a WorkspaceOrchestrator. Missing
// security, secrets or quality scanners are created on demand.
func NewWorkspaceOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ResultStore,
	publisher adapter.DiagnosticsPublisher,
	scanners Scanners,
) WorkspaceOrchestrator {
	if scanners == nil {
		scanners = Scanners{}
	}

	for _, d := range fileDomains {
		if _, ok := scanners[d]; !ok {
			s, _ := NewScannerFor(d)
			scanners[d] = s
		}
	}

	return &orchestrator{
		fsAdapter:  fsAdapter,
		store:      store,
		publisher:  publisher,
		scanners:   scanners,
		classifier: DefaultClassifier,
		opts:       normalizeOptions(m.WorkspaceScanOptions{}),
	}
}

// fileDomains are the domains run against every workspace file.
var fileDomains = []m.Domain{m.DomainSecurity, m.DomainSecrets, m.DomainQuality}

type scanStats struct {
	discovered atomic.Int64
	scanned    atomic.Int64
	skipped    atomic.Int64
}

func (o *orchestrator) ScanWorkspace(ctx context.Context, opts m.WorkspaceScanOptions) ([]m.FileScanResult, error) {
	o.mu.Lock()
	if o.state == m.StateScanning {
		o.mu.Unlock()
		slog.Info("Workspace scan already in progress")

		return o.store.List(), nil
	}

	opts = normalizeOptions(opts)
	o.state = m.StateScanning
	o.opts = opts
	o.mu.Unlock()

	start := time.Now()
	runID := uuid.NewString()
	log := slog.With("run", runID)

	if len(opts.Roots) == 0 {
		log.Error("Workspace scan failed", "error", ErrNoWorkspace)
		o.finish(m.WorkspaceSummary{RunID: runID, Outcome: m.StateFailed, Duration: time.Since(start)})

		return nil, ErrNoWorkspace
	}

	log.Info("Workspace scan started", "roots", opts.Roots)

	o.store.Clear()

	if err := o.publisher.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Warn("Failed to clear diagnostics", "error", err)
	}

	var (
		stats    scanStats
		errMu    sync.Mutex
		rootErrs []error
	)

	var group errgroup.Group
	group.SetLimit(opts.FolderConcurrency)

	for _, root := range opts.Roots {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := o.scanFolder(ctx, root, opts, &stats); err != nil {
				errMu.Lock()
				rootErrs = append(rootErrs, err)
				errMu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	summary := m.WorkspaceSummary{
		RunID:           runID,
		Roots:           opts.Roots,
		FilesDiscovered: int(stats.discovered.Load()),
		FilesScanned:    int(stats.scanned.Load()),
		FilesSkipped:    int(stats.skipped.Load()),
	}

	if len(rootErrs) == len(opts.Roots) {
		err := fmt.Errorf("discover workspace: %w", errors.Join(rootErrs...))
		log.Error("Workspace scan failed", "error", err)

		summary.Outcome = m.StateFailed
		summary.Duration = time.Since(start)
		o.finish(summary)

		return nil, err
	}

	summary.Outcome = m.StateCompleted
	if ctx.Err() != nil {
		summary.Outcome = m.StateCancelled
	}

	results := o.store.List()
	o.publishBatches(context.WithoutCancel(ctx), results, opts.BatchSize, opts.Yield)

	summary.Results = results
	summary.FilesWithFindings = len(results)
	summary.Counts = countByDomain(results)
	summary.Severity = o.classifier.ClassifyFiles(results)
	summary.Duration = time.Since(start)

	log.Info("Workspace scan finished",
		"outcome", summary.Outcome,
		"scanned", summary.FilesScanned,
		"skipped", summary.FilesSkipped,
		"withFindings", summary.FilesWithFindings,
		"severity", summary.Severity,
		"duration", summary.Duration)

	o.finish(summary)

	return results, nil
}

func (o *orchestrator) finish(summary m.WorkspaceSummary) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.summary = summary
	o.state = m.StateIdle
}

// scanFolder scans the files of one root sequentially. It only returns an
// error when discovery fails for a reason other than cancellation.
func (o *orchestrator) scanFolder(ctx context.Context, root m.Path, opts m.WorkspaceScanOptions, stats *scanStats) error {
	if ctx.Err() != nil {
		return nil
	}

	files, err := o.fsAdapter.Discover(ctx, root, filterFor(opts))
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		slog.Error("Failed to discover workspace folder", "root", root, "error", err)

		return fmt.Errorf("%s: %w", root, err)
	}

	stats.discovered.Add(int64(len(files)))
	slog.Debug("Discovered files", "root", root, "count", len(files))

	for i, path := range files {
		if ctx.Err() != nil {
			return nil
		}

		if i > 0 {
			if err := Yield(ctx, opts.Yield); err != nil {
				return nil
			}
		}

		result, err := o.scanPath(ctx, path)
		if err != nil {
			stats.skipped.Add(1)
			slog.Warn("Skipping file", "path", path, "error", err)

			continue
		}

		stats.scanned.Add(1)

		if result.HasFindings() {
			o.store.Put(result)
		}
	}

	return nil
}

// scanPath reads path and runs the file domains over it concurrently.
func (o *orchestrator) scanPath(ctx context.Context, path m.Path) (m.FileScanResult, error) {
	data, err := o.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return m.FileScanResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	results := make([]m.ScanResult, len(fileDomains))

	var group errgroup.Group

	for i, d := range fileDomains {
		scanner := o.scanners[d]

		group.Go(func() error {
			results[i] = scanner.Scan(text, "")
			return nil
		})
	}

	_ = group.Wait()

	return MergeFileResult(o.classifier, path, results...), nil
}

// MergeFileResult assembles the per-file result from domain scan results.
// Security and other non-secret, non-quality findings are reported as
// vulnerabilities.
func MergeFileResult(classifier Classifier, path m.Path, results ...m.ScanResult) m.FileScanResult {
	out := m.FileScanResult{
		FilePath:        path,
		Vulnerabilities: []string{},
		Secrets:         []string{},
		QualityIssues:   []string{},
	}

	for _, r := range results {
		for _, f := range r.Findings {
			out.Findings = append(out.Findings, f)

			switch f.Domain {
			case m.DomainSecrets:
				out.Secrets = append(out.Secrets, FormatFinding(f))
			case m.DomainQuality:
				out.QualityIssues = append(out.QualityIssues, FormatFinding(f))
			default:
				out.Vulnerabilities = append(out.Vulnerabilities, FormatFinding(f))
			}
		}
	}

	out.Severity = classifier.Classify(out.Findings)

	return out
}

// FormatFinding renders a finding as a single line.
func FormatFinding(f m.Finding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", f.Severity.Tier(), f.Description)

	if f.Evidence != "" {
		fmt.Fprintf(&b, ": %s", f.Evidence)
	}

	if f.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", f.Line)
	}

	return b.String()
}

// DiagnosticsFor maps every finding of result to a zero-width diagnostic at
// the finding's position.
func DiagnosticsFor(result m.FileScanResult) []m.Diagnostic {
	out := make([]m.Diagnostic, 0, len(result.Findings))

	for _, f := range result.Findings {
		pos := m.Position{Line: max(f.Line-1, 0), Character: max(f.Column-1, 0)}
		message := f.Description

		if f.Evidence != "" {
			message += ": " + f.Evidence
		}

		out = append(out, m.Diagnostic{
			Range:    m.Range{Start: pos, End: pos},
			Message:  message,
			Severity: m.DiagnosticSeverityFor(f.Severity),
			Source:   DiagnosticSource,
			Code:     f.SourceLabel,
		})
	}

	return out
}

func (o *orchestrator) publishBatches(ctx context.Context, results []m.FileScanResult, batchSize int, yield time.Duration) {
	for start := 0; start < len(results); start += batchSize {
		if start > 0 {
			_ = Yield(ctx, yield)
		}

		end := min(start+batchSize, len(results))
		for _, r := range results[start:end] {
			o.publish(ctx, r)
		}
	}
}

func (o *orchestrator) publish(ctx context.Context, result m.FileScanResult) {
	if err := o.publisher.Publish(ctx, result.FilePath, DiagnosticsFor(result)); err != nil {
		slog.Warn("Failed to publish diagnostics", "path", result.FilePath, "error", err)
	}
}

func (o *orchestrator) forget(ctx context.Context, path m.Path) {
	o.store.Delete(path)

	if err := o.publisher.Delete(ctx, path); err != nil {
		slog.Warn("Failed to delete diagnostics", "path", path, "error", err)
	}
}

// forgetTree drops path and, when path was a directory, every result stored
// below it. The watcher cannot stat a removed path, so both cases look alike.
func (o *orchestrator) forgetTree(ctx context.Context, path m.Path) {
	removed := o.store.DeleteTree(path)
	if !slices.Contains(removed, path) {
		removed = append(removed, path)
	}

	for _, p := range removed {
		if err := o.publisher.Delete(ctx, p); err != nil {
			slog.Warn("Failed to delete diagnostics", "path", p, "error", err)
		}
	}
}

func (o *orchestrator) ScanFile(ctx context.Context, path m.Path) (m.FileScanResult, error) {
	if err := ctx.Err(); err != nil {
		return m.FileScanResult{}, err
	}

	result, err := o.scanPath(ctx, path)
	if err != nil {
		slog.Warn("Failed to scan file", "path", path, "error", err)
		return m.FileScanResult{}, err
	}

	if !result.HasFindings() {
		o.forget(ctx, path)
		return result, nil
	}

	o.store.Put(result)
	o.publish(ctx, result)

	return result, nil
}

func (o *orchestrator) HandleEvent(ctx context.Context, event m.FileEvent) error {
	opts := o.options()
	path := m.Path(filepath.Clean(string(event.Path)))

	switch event.Op {
	case m.FileDeleted:
		o.forgetTree(ctx, path)
		return nil
	case m.FileCreated, m.FileChanged:
		if !opts.AutoScan {
			return nil
		}
	case m.FileSaved:
		if !opts.ScanOnSave {
			return nil
		}
	default:
		return nil
	}

	ok, err := o.inWorkspace(ctx, path, opts)
	if err != nil {
		return err
	}

	if !ok {
		slog.Debug("Ignoring event outside scan scope", "path", path, "op", event.Op)
		o.forget(ctx, path)

		return nil
	}

	slog.Debug("Rescanning file", "path", path, "op", event.Op)

	_, err = o.ScanFile(ctx, path)

	return err
}

// inWorkspace reports whether path lies under a configured root and passes
// the discovery filter.
func (o *orchestrator) inWorkspace(ctx context.Context, path m.Path, opts m.WorkspaceScanOptions) (bool, error) {
	filter := filterFor(opts)

	for _, root := range opts.Roots {
		ok, err := o.fsAdapter.Matches(ctx, root, path, filter)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

func (o *orchestrator) Configure(opts m.WorkspaceScanOptions) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.opts = normalizeOptions(opts)
}

func (o *orchestrator) options() m.WorkspaceScanOptions {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.opts
}

func (o *orchestrator) Results() []m.FileScanResult {
	return o.store.List()
}

func (o *orchestrator) Summary() m.WorkspaceSummary {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.summary
}

func (o *orchestrator) State() m.ScanState {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state
}

func (o *orchestrator) ClearCaches() {
	o.scanners.ClearCaches()
	slog.Info("Scanner caches cleared")
}

func filterFor(opts m.WorkspaceScanOptions) adapter.FileFilter {
	return adapter.FileFilter{
		Include:     opts.IncludePatterns,
		Exclude:     opts.ExcludePatterns,
		MaxFileSize: opts.MaxFileSizeBytes,
		MaxDepth:    opts.ScanDepth,
	}
}

func countByDomain(results []m.FileScanResult) map[m.Domain]int {
	counts := map[m.Domain]int{}

	for _, r := range results {
		for _, f := range r.Findings {
			counts[f.Domain]++
		}
	}

	return counts
}
