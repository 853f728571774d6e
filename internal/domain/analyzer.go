package domain

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// Scanners holds one scanner per domain.
type Scanners map[m.Domain]Scanner

// NewScanners builds a scanner for every domain in m.AllDomains.
func NewScanners() Scanners {
	out := make(Scanners, len(m.AllDomains))
	for _, d := range m.AllDomains {
		s, _ := NewScannerFor(d)
		out[d] = s
	}

	return out
}

// ClearCaches empties every scanner cache.
func (s Scanners) ClearCaches() {
	for _, scanner := range s {
		scanner.ClearCache()
	}
}

// Analyzer runs several domain scanners over the same buffer and classifies
// the combined findings.
type Analyzer struct {
	scanners   Scanners
	classifier Classifier
}

// NewAnalyzer returns an Analyzer over scanners using DefaultClassifier.
func NewAnalyzer(scanners Scanners) *Analyzer {
	return &Analyzer{scanners: scanners, classifier: DefaultClassifier}
}

// Analyze scans text with the given domains concurrently, or with every
// domain when none are given. The context string is forwarded to each
// scanner; scanners without context-specific rules ignore it.
func (a *Analyzer) Analyze(ctx context.Context, text, scanContext string, domains ...m.Domain) (m.CombinedResult, error) {
	if len(domains) == 0 {
		domains = m.AllDomains
	}

	selected := make([]Scanner, 0, len(domains))

	for _, d := range domains {
		s, ok := a.scanners[d]
		if !ok {
			return m.CombinedResult{}, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
		}

		selected = append(selected, s)
	}

	var (
		mu      sync.Mutex
		results = make(map[m.Domain]m.ScanResult, len(selected))
	)

	group, groupCtx := errgroup.WithContext(ctx)

	for _, s := range selected {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			r := s.Scan(text, scanContext)

			mu.Lock()
			results[s.Domain()] = r
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.CombinedResult{}, err
	}

	combined := m.CombinedResult{Context: scanContext, Results: results}
	combined.Severity = a.classifier.Classify(combined.AllFindings())

	return combined, nil
}
