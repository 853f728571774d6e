// Package adapter contains the infrastructure adapters used by the scanning
// domain: filesystem discovery, result storage, diagnostics publication and
// filesystem watching.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// FileFilter selects which workspace files reach the scanners. Patterns are
// doublestar globs matched against the slash-separated path relative to the
// workspace root.
type FileFilter struct {
	Include     []string
	Exclude     []string
	MaxFileSize int64
	// MaxDepth stops descent into directories nested deeper than this many
	// levels below the root. Zero means unlimited.
	MaxDepth int
}

// SourceFSAdapter abstracts filesystem operations that the orchestrator
// relies on when scanning a workspace. It hides direct `os` access so the
// orchestration logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover lists the files under root accepted by filter, in walk order.
	Discover(ctx context.Context, root m.Path, filter FileFilter) ([]m.Path, error)

	// Matches reports whether path, located under root, is accepted by filter.
	Matches(ctx context.Context, root, path m.Path, filter FileFilter) (bool, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)
}

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the orchestrator.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover walks root and returns every regular file accepted by filter.
// Excluded directories are pruned rather than walked.
func (a *LocalSourceFSAdapter) Discover(ctx context.Context, root m.Path, filter FileFilter) ([]m.Path, error) {
	rootStr := filepath.Clean(string(root))

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, fmt.Errorf("stat workspace root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", rootStr)
	}

	matcher := newGlobMatcher(filter)

	var files []m.Path

	err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			slog.Warn("Skipping unreadable path", "path", path, "error", walkErr)

			if d != nil && d.IsDir() && path != rootStr {
				return filepath.SkipDir
			}

			return nil
		}

		if path == rootStr {
			return nil
		}

		rel := relSlash(rootStr, path)

		if d.IsDir() {
			if matcher.excludedDir(rel) || matcher.tooDeep(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || !matcher.accepts(rel) {
			return nil
		}

		if filter.MaxFileSize > 0 {
			fileInfo, err := d.Info()
			if err != nil {
				slog.Warn("Failed to stat file", "path", path, "error", err)
				return nil
			}

			if fileInfo.Size() > filter.MaxFileSize {
				slog.Debug("Skipping oversized file", "path", path, "size", fileInfo.Size(), "limit", filter.MaxFileSize)
				return nil
			}
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return files, fmt.Errorf("walk %s: %w", rootStr, err)
	}

	return files, nil
}

// Matches applies the same rules as Discover to a single path.
func (a *LocalSourceFSAdapter) Matches(ctx context.Context, root, path m.Path, filter FileFilter) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	rootStr := filepath.Clean(string(root))
	pathStr := filepath.Clean(string(path))

	rel, err := filepath.Rel(rootStr, pathStr)
	if err != nil || rel == "." || outsideRoot(rel) {
		return false, nil
	}

	rel = filepath.ToSlash(rel)
	matcher := newGlobMatcher(filter)

	if dir := filepathDir(rel); dir != "" && (matcher.excludedDir(dir) || matcher.tooDeep(dir)) {
		return false, nil
	}

	if !matcher.accepts(rel) {
		return false, nil
	}

	info, err := os.Stat(pathStr)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	if filter.MaxFileSize > 0 && info.Size() > filter.MaxFileSize {
		return false, nil
	}

	return true, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from workspace discovery
	return os.ReadFile(string(path))
}

type globMatcher struct {
	include  []string
	exclude  []string
	maxDepth int
}

func newGlobMatcher(filter FileFilter) globMatcher {
	return globMatcher{
		include:  validPatterns(filter.Include),
		exclude:  validPatterns(filter.Exclude),
		maxDepth: filter.MaxDepth,
	}
}

func validPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))

	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}

		if !doublestar.ValidatePattern(p) {
			slog.Warn("Ignoring invalid glob pattern", "pattern", p)
			continue
		}

		out = append(out, p)
	}

	return out
}

// accepts reports whether a file path is included and not excluded. An empty
// include list accepts every file.
func (g globMatcher) accepts(rel string) bool {
	if len(g.include) > 0 && !matchAny(g.include, rel) {
		return false
	}

	return !matchAny(g.exclude, rel)
}

func (g globMatcher) excludedDir(rel string) bool {
	return matchAny(g.exclude, rel) || matchAny(g.exclude, rel+"/")
}

func (g globMatcher) tooDeep(relDir string) bool {
	if g.maxDepth <= 0 {
		return false
	}

	return strings.Count(relDir, "/")+1 > g.maxDepth
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}

	return false
}

// outsideRoot reports whether rel, as returned by filepath.Rel, climbs out
// of its root. Names that merely start with "..", like "..cache", stay inside.
func outsideRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}

func filepathDir(rel string) string {
	idx := strings.LastIndex(rel, "/")
	if idx < 0 {
		return ""
	}

	return rel[:idx]
}
