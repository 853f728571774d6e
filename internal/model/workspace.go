package model

import "time"

// Path represents a file system path.
type Path string

// FileScanResult is the merged security, secret and quality outcome for one
// workspace file.
type FileScanResult struct {
	FilePath        Path      `json:"filePath" yaml:"file_path"`
	Vulnerabilities []string  `json:"vulnerabilities" yaml:"vulnerabilities"`
	Secrets         []string  `json:"secrets" yaml:"secrets"`
	QualityIssues   []string  `json:"qualityIssues" yaml:"quality_issues"`
	Severity        Severity  `json:"severity" yaml:"severity"`
	Findings        []Finding `json:"-" yaml:"-"`
}

// HasFindings reports whether any of the three lists is non-empty.
func (r FileScanResult) HasFindings() bool {
	return len(r.Vulnerabilities)+len(r.Secrets)+len(r.QualityIssues) > 0
}

// WorkspaceScanOptions configures a workspace traversal.
type WorkspaceScanOptions struct {
	Roots            []Path
	IncludePatterns  []string
	ExcludePatterns  []string
	MaxFileSizeBytes int64
	// ScanDepth limits directory depth below each root; 0 means unlimited.
	ScanDepth int

	// FolderConcurrency caps concurrent root folder scans.
	FolderConcurrency int
	// BatchSize is the number of files published per diagnostics batch.
	BatchSize int
	// Yield is the pause inserted between files and between batches.
	Yield time.Duration

	AutoScan   bool
	ScanOnSave bool
}

// ScanState is the workspace orchestrator state.
type ScanState int

// Orchestrator states.
const (
	StateIdle ScanState = iota
	StateScanning
	StateCompleted
	StateCancelled
	StateFailed
)

func (s ScanState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s ScanState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// WorkspaceSummary describes the last full workspace scan.
type WorkspaceSummary struct {
	RunID             string           `json:"runId" yaml:"run_id"`
	Roots             []Path           `json:"roots" yaml:"roots"`
	FilesDiscovered   int              `json:"filesDiscovered" yaml:"files_discovered"`
	FilesScanned      int              `json:"filesScanned" yaml:"files_scanned"`
	FilesSkipped      int              `json:"filesSkipped" yaml:"files_skipped"`
	FilesWithFindings int              `json:"filesWithFindings" yaml:"files_with_findings"`
	Counts            map[Domain]int   `json:"counts" yaml:"counts"`
	Severity          Severity         `json:"severity" yaml:"severity"`
	Outcome           ScanState        `json:"outcome" yaml:"outcome"`
	Duration          time.Duration    `json:"duration" yaml:"duration"`
	Results           []FileScanResult `json:"results" yaml:"results"`
}

// FileEventOp identifies the kind of filesystem or editor event.
type FileEventOp int

// File event kinds.
const (
	FileCreated FileEventOp = iota
	FileChanged
	FileDeleted
	FileSaved
)

func (op FileEventOp) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileChanged:
		return "changed"
	case FileDeleted:
		return "deleted"
	case FileSaved:
		return "saved"
	}

	return "unknown"
}

// FileEvent is a create/change/delete notification from a watcher or a save
// notification from an editor.
type FileEvent struct {
	Path Path
	Op   FileEventOp
}
