// Package domain contains the scanning engine: the per-domain pattern
// scanners, the severity classifier, the combined analyzer and the workspace
// orchestrator that drives them over a set of files.
package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
	"codeguard.dev/pkg/codeguard/pkg"
)

// ErrUnknownDomain is returned when a domain name has no scanner.
var ErrUnknownDomain = errors.New("unknown analysis domain")

// Cache sizes per scanner.
const (
	DefaultCacheSize    = 100
	ContextualCacheSize = 50
)

// Scanner evaluates one domain's rule catalog against a text buffer.
// Scan never fails: a rule that cannot be evaluated is logged and skipped.
type Scanner interface {
	Domain() m.Domain
	Scan(text, context string) m.ScanResult
	// ClearCache drops every memoized result.
	ClearCache()
	CacheLen() int
}

// findingBuilder decorates the finding produced for a rule. match holds the
// submatch indices of the first occurrence.
type findingBuilder func(f *m.Finding, rule rules.Rule, text string, match []int)

// resultFinalizer runs once per computed result, before it is cached.
type resultFinalizer func(r *m.ScanResult)

type patternScanner struct {
	catalog    rules.Catalog
	cache      pkg.Cache[string, m.ScanResult]
	contextual bool
	build      findingBuilder
	finalize   resultFinalizer
}

// NewPatternScanner returns a Scanner over catalog with a FIFO result cache
// of cacheSize entries.
func NewPatternScanner(catalog rules.Catalog, cacheSize int) Scanner {
	return newPatternScanner(catalog, cacheSize, nil, nil)
}

func newPatternScanner(catalog rules.Catalog, cacheSize int, build findingBuilder, finalize resultFinalizer) *patternScanner {
	return &patternScanner{
		catalog:    catalog,
		cache:      pkg.NewFIFOCache[string, m.ScanResult](cacheSize),
		contextual: catalog.ContextSensitive(),
		build:      build,
		finalize:   finalize,
	}
}

// NewSecurityScanner returns the vulnerability scanner.
func NewSecurityScanner() Scanner {
	return newPatternScanner(rules.MustFor(m.DomainSecurity), DefaultCacheSize, nil, nil)
}

// NewDevOpsScanner returns the infrastructure scanner. Its context selects
// docker, kubernetes, terraform or github-actions rules.
func NewDevOpsScanner() Scanner {
	return newPatternScanner(rules.MustFor(m.DomainDevOps), ContextualCacheSize, nil, nil)
}

// NewDatabaseScanner returns the database scanner. Its context is the
// database engine.
func NewDatabaseScanner() Scanner {
	return newPatternScanner(rules.MustFor(m.DomainDatabase), ContextualCacheSize, nil, nil)
}

// NewFullStackScanner returns the web framework scanner.
func NewFullStackScanner() Scanner {
	return newPatternScanner(rules.MustFor(m.DomainFullStack), ContextualCacheSize, nil, nil)
}

// NewScannerFor returns a fresh scanner for domain.
func NewScannerFor(domain m.Domain) (Scanner, error) {
	switch domain {
	case m.DomainSecurity:
		return NewSecurityScanner(), nil
	case m.DomainSecrets:
		return NewSecretScanner(), nil
	case m.DomainQuality:
		return NewQualityScanner(), nil
	case m.DomainDevOps:
		return NewDevOpsScanner(), nil
	case m.DomainDatabase:
		return NewDatabaseScanner(), nil
	case m.DomainFullStack:
		return NewFullStackScanner(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}

func (s *patternScanner) Domain() m.Domain {
	return s.catalog.Domain()
}

func (s *patternScanner) ClearCache() {
	s.cache.Clear()
}

func (s *patternScanner) CacheLen() int {
	return s.cache.Len()
}

func (s *patternScanner) Scan(text, context string) m.ScanResult {
	context = rules.NormalizeContext(context)

	if strings.TrimSpace(text) == "" {
		return s.emptyResult(context)
	}

	discriminator := ""
	if s.contextual {
		discriminator = context
	}

	key := pkg.ContentKey(text, discriminator)
	if cached, ok := s.cache.Get(key); ok {
		return cached.Clone()
	}

	result := s.evaluate(text, context)
	s.cache.Put(key, result.Clone())

	return result
}

func (s *patternScanner) emptyResult(context string) m.ScanResult {
	result := m.ScanResult{
		Domain:          s.catalog.Domain(),
		Context:         context,
		Findings:        []m.Finding{},
		OverallSeverity: m.SeverityLow,
	}

	if s.finalize != nil {
		s.finalize(&result)
	}

	return result
}

func (s *patternScanner) evaluate(text, context string) m.ScanResult {
	result := s.emptyResult(context)
	result.Findings = make([]m.Finding, 0)

	var order []string

	buckets := map[string][]m.Finding{}

	for _, rule := range s.catalog.ForContext(context) {
		finding, ok := s.evaluateRule(rule, text)
		if !ok {
			continue
		}

		result.Findings = append(result.Findings, finding)

		if _, seen := buckets[rule.Category]; !seen {
			order = append(order, rule.Category)
		}

		buckets[rule.Category] = append(buckets[rule.Category], finding)
	}

	for _, name := range order {
		result.Categories = append(result.Categories, m.Category{Name: name, Findings: buckets[name]})
	}

	result.OverallSeverity = m.MaxSeverity(m.Severities(result.Findings)...)

	if s.finalize != nil {
		s.finalize(&result)
	}

	return result
}

// evaluateRule returns one finding for rule when it matches text at least
// once. A panicking rule is logged and reported as not matching.
func (s *patternScanner) evaluateRule(rule rules.Rule, text string) (finding m.Finding, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Rule evaluation failed", "domain", s.catalog.Domain(), "rule", rule.ID, "panic", r)

			finding, ok = m.Finding{}, false
		}
	}()

	matches := rule.Regexp().FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return m.Finding{}, false
	}

	first := matches[0]
	line, column := lineColumn(text, first[0])

	finding = m.Finding{
		Domain:      s.catalog.Domain(),
		Type:        rule.Category,
		Severity:    rule.Severity,
		Description: fmt.Sprintf("%s (%d occurrence(s))", rule.Message, len(matches)),
		SourceLabel: rule.ID,
		ExternalID:  rule.ExternalID,
		Line:        line,
		Column:      column,
		Count:       len(matches),
	}

	if s.build != nil {
		s.build(&finding, rule, text, first)
	}

	return finding, true
}

// lineColumn converts a byte offset into a 1-based line and rune column.
func lineColumn(text string, offset int) (int, int) {
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return line, utf8.RuneCountInString(before[lineStart:]) + 1
}
